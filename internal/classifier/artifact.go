package classifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/power-desk/internal/common"
	"github.com/Veraticus/power-desk/internal/model"
)

// DefaultMaxLen is the padded sequence length used at training time.
const DefaultMaxLen = 50

// Artifact is a loaded tokenizer and network pair. It is read-only after
// loading and safe to share.
type Artifact struct {
	tokenizer *Tokenizer
	network   *Network
	logger    *slog.Logger
	maxLen    int
}

// Paths locates the two files making up a classifier artifact.
type Paths struct {
	Model     string
	Tokenizer string
	MaxLen    int
}

// Load reads the tokenizer and network files and checks they fit together.
func Load(paths Paths, logger *slog.Logger) (*Artifact, error) {
	if paths.Model == "" || paths.Tokenizer == "" {
		return nil, fmt.Errorf("%w: model and tokenizer paths are required", common.ErrMissingConfig)
	}

	tok, err := LoadTokenizer(paths.Tokenizer)
	if err != nil {
		return nil, err
	}
	net, err := LoadNetwork(paths.Model)
	if err != nil {
		return nil, err
	}

	a, err := NewArtifact(tok, net, paths.MaxLen, logger)
	if err != nil {
		return nil, err
	}

	a.logger.Info("classifier artifact loaded",
		"model", paths.Model,
		"tokenizer", paths.Tokenizer,
		"vocabulary", tok.VocabularySize(),
		"max_len", a.maxLen)

	return a, nil
}

// NewArtifact combines an already parsed tokenizer and network. A zero
// maxLen takes the network's input length.
func NewArtifact(tok *Tokenizer, net *Network, maxLen int, logger *slog.Logger) (*Artifact, error) {
	if tok == nil || net == nil {
		return nil, common.ErrModelNotLoaded
	}
	if maxLen == 0 {
		maxLen = net.InputLength()
	}
	if maxLen != net.InputLength() {
		return nil, fmt.Errorf("%w: max length %d does not match model input length %d",
			common.ErrInvalidArtifact, maxLen, net.InputLength())
	}
	if net.Outputs() != model.LabelCount {
		return nil, fmt.Errorf("%w: model has %d outputs, want %d",
			common.ErrInvalidArtifact, net.Outputs(), model.LabelCount)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Artifact{
		tokenizer: tok,
		network:   net,
		maxLen:    maxLen,
		logger:    logger,
	}, nil
}

// Encode converts text into the fixed-length index vector fed to the network.
func (a *Artifact) Encode(text string) []int {
	return Pad(a.tokenizer.Sequence(text), a.maxLen)
}

// Predict returns the class probability distribution for an encoded query.
func (a *Artifact) Predict(encoded []int) ([]float64, error) {
	return a.network.Predict(encoded)
}

// Classify implements Classifier by taking the most probable class.
func (a *Artifact) Classify(_ context.Context, query string) (model.Label, error) {
	if a == nil || a.network == nil {
		return model.LabelUnknown, common.ErrModelNotLoaded
	}

	probs, err := a.Predict(a.Encode(query))
	if err != nil {
		return model.LabelUnknown, fmt.Errorf("%w: %v", common.ErrClassificationFailed, err)
	}

	label := model.LabelFromIndex(ArgMax(probs))
	a.logger.Debug("query classified",
		"label", label.String(),
		"probabilities", probs)

	return label, nil
}
