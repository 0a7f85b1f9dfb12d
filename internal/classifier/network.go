package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/Veraticus/power-desk/internal/common"
)

// Layer types understood by the network loader.
const (
	LayerEmbedding     = "embedding"
	LayerGlobalAvgPool = "global_average_pooling1d"
	LayerFlatten       = "flatten"
	LayerDense         = "dense"
)

// LayerSpec is the serialized form of one network layer.
type LayerSpec struct {
	Type       string      `json:"type"`
	Activation string      `json:"activation,omitempty"`
	Weights    [][]float64 `json:"weights,omitempty"`
	Kernel     [][]float64 `json:"kernel,omitempty"`
	Bias       []float64   `json:"bias,omitempty"`
}

// NetworkSpec is the serialized form of a trained network.
type NetworkSpec struct {
	Layers      []LayerSpec `json:"layers"`
	InputLength int         `json:"input_length"`
}

// Network is a feed-forward text classifier: an embedding lookup followed by
// pooling and dense layers.
type Network struct {
	layers      []layer
	inputLength int
	outputs     int
}

// tensor holds either a sequence of vectors (one per time step) or a single
// vector stored as data[0].
type tensor struct {
	data [][]float64
	seq  bool
}

type layer interface {
	forward(in tensor) (tensor, error)
}

// LoadNetwork reads a network from a JSON file.
func LoadNetwork(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}

	var spec NetworkSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: model: %v", common.ErrInvalidArtifact, err)
	}
	return NewNetwork(spec)
}

// NewNetwork validates spec and builds the network it describes.
func NewNetwork(spec NetworkSpec) (*Network, error) {
	if spec.InputLength <= 0 {
		return nil, fmt.Errorf("%w: input_length must be positive", common.ErrInvalidArtifact)
	}
	if len(spec.Layers) == 0 || spec.Layers[0].Type != LayerEmbedding {
		return nil, fmt.Errorf("%w: first layer must be an embedding", common.ErrInvalidArtifact)
	}

	net := &Network{inputLength: spec.InputLength}
	seq := true
	steps := spec.InputLength
	width := 0

	for i, ls := range spec.Layers {
		switch ls.Type {
		case LayerEmbedding:
			if i != 0 {
				return nil, fmt.Errorf("%w: layer %d: embedding must come first", common.ErrInvalidArtifact, i)
			}
			emb, err := newEmbedding(ls)
			if err != nil {
				return nil, fmt.Errorf("layer %d: %w", i, err)
			}
			width = emb.dim
			net.layers = append(net.layers, emb)

		case LayerGlobalAvgPool:
			if !seq {
				return nil, fmt.Errorf("%w: layer %d: pooling needs a sequence input", common.ErrInvalidArtifact, i)
			}
			seq = false
			net.layers = append(net.layers, averagePool{})

		case LayerFlatten:
			if !seq {
				return nil, fmt.Errorf("%w: layer %d: flatten needs a sequence input", common.ErrInvalidArtifact, i)
			}
			seq = false
			width *= steps
			net.layers = append(net.layers, flatten{})

		case LayerDense:
			d, err := newDense(ls, width)
			if err != nil {
				return nil, fmt.Errorf("layer %d: %w", i, err)
			}
			width = len(d.bias)
			net.layers = append(net.layers, d)

		default:
			return nil, fmt.Errorf("%w: layer %d: unsupported type %q", common.ErrInvalidArtifact, i, ls.Type)
		}
	}

	if seq {
		return nil, fmt.Errorf("%w: network output is still a sequence", common.ErrInvalidArtifact)
	}
	net.outputs = width
	return net, nil
}

// InputLength is the fixed sequence length the network expects.
func (n *Network) InputLength() int {
	return n.inputLength
}

// Outputs is the width of the final layer.
func (n *Network) Outputs() int {
	return n.outputs
}

// Predict runs a forward pass over one padded token sequence.
func (n *Network) Predict(tokens []int) ([]float64, error) {
	if len(tokens) != n.inputLength {
		return nil, fmt.Errorf("expected %d tokens, got %d", n.inputLength, len(tokens))
	}

	// The embedding reads token ids from a single-row tensor.
	row := make([]float64, len(tokens))
	for i, tok := range tokens {
		row[i] = float64(tok)
	}
	t := tensor{data: [][]float64{row}}

	var err error
	for _, l := range n.layers {
		if t, err = l.forward(t); err != nil {
			return nil, err
		}
	}
	return t.data[0], nil
}

type embedding struct {
	weights [][]float64
	dim     int
}

func newEmbedding(ls LayerSpec) (embedding, error) {
	if len(ls.Weights) == 0 {
		return embedding{}, fmt.Errorf("%w: embedding has no weights", common.ErrInvalidArtifact)
	}
	dim := len(ls.Weights[0])
	if dim == 0 {
		return embedding{}, fmt.Errorf("%w: embedding has zero width", common.ErrInvalidArtifact)
	}
	for i, w := range ls.Weights {
		if len(w) != dim {
			return embedding{}, fmt.Errorf("%w: embedding row %d has width %d, want %d", common.ErrInvalidArtifact, i, len(w), dim)
		}
	}
	return embedding{weights: ls.Weights, dim: dim}, nil
}

func (e embedding) forward(in tensor) (tensor, error) {
	ids := in.data[0]
	out := make([][]float64, len(ids))
	for i, id := range ids {
		idx := int(id)
		if idx < 0 || idx >= len(e.weights) {
			return tensor{}, fmt.Errorf("token index %d outside vocabulary of %d", idx, len(e.weights))
		}
		out[i] = e.weights[idx]
	}
	return tensor{data: out, seq: true}, nil
}

type averagePool struct{}

func (averagePool) forward(in tensor) (tensor, error) {
	if len(in.data) == 0 {
		return tensor{}, fmt.Errorf("cannot pool an empty sequence")
	}
	mean := make([]float64, len(in.data[0]))
	for _, step := range in.data {
		for j, v := range step {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(len(in.data))
	}
	return tensor{data: [][]float64{mean}}, nil
}

type flatten struct{}

func (flatten) forward(in tensor) (tensor, error) {
	var flat []float64
	for _, step := range in.data {
		flat = append(flat, step...)
	}
	return tensor{data: [][]float64{flat}}, nil
}

type dense struct {
	activation func([]float64)
	kernel     [][]float64
	bias       []float64
}

func newDense(ls LayerSpec, inputs int) (dense, error) {
	if len(ls.Kernel) != inputs {
		return dense{}, fmt.Errorf("%w: dense kernel has %d rows, want %d", common.ErrInvalidArtifact, len(ls.Kernel), inputs)
	}
	units := len(ls.Bias)
	if units == 0 {
		return dense{}, fmt.Errorf("%w: dense layer has no units", common.ErrInvalidArtifact)
	}
	for i, row := range ls.Kernel {
		if len(row) != units {
			return dense{}, fmt.Errorf("%w: dense kernel row %d has %d columns, want %d", common.ErrInvalidArtifact, i, len(row), units)
		}
	}
	act, err := activationFunc(ls.Activation)
	if err != nil {
		return dense{}, err
	}
	return dense{kernel: ls.Kernel, bias: ls.Bias, activation: act}, nil
}

// Dense layers apply per time step when fed a sequence.
func (d dense) forward(in tensor) (tensor, error) {
	out := make([][]float64, len(in.data))
	for s, x := range in.data {
		y := make([]float64, len(d.bias))
		copy(y, d.bias)
		for i, xi := range x {
			if xi == 0 {
				continue
			}
			for j, w := range d.kernel[i] {
				y[j] += xi * w
			}
		}
		d.activation(y)
		out[s] = y
	}
	return tensor{data: out, seq: in.seq}, nil
}

func activationFunc(name string) (func([]float64), error) {
	switch name {
	case "", "linear":
		return func([]float64) {}, nil
	case "relu":
		return func(v []float64) {
			for i := range v {
				if v[i] < 0 {
					v[i] = 0
				}
			}
		}, nil
	case "tanh":
		return func(v []float64) {
			for i := range v {
				v[i] = math.Tanh(v[i])
			}
		}, nil
	case "sigmoid":
		return func(v []float64) {
			for i := range v {
				v[i] = 1 / (1 + math.Exp(-v[i]))
			}
		}, nil
	case "softmax":
		return softmax, nil
	default:
		return nil, fmt.Errorf("%w: unsupported activation %q", common.ErrInvalidArtifact, name)
	}
}

func softmax(v []float64) {
	if len(v) == 0 {
		return
	}
	peak := v[0]
	for _, x := range v[1:] {
		peak = math.Max(peak, x)
	}
	var sum float64
	for i := range v {
		v[i] = math.Exp(v[i] - peak)
		sum += v[i]
	}
	for i := range v {
		v[i] /= sum
	}
}
