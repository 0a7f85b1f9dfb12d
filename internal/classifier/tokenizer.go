package classifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/power-desk/internal/common"
)

// DefaultFilters are the characters stripped from text before splitting.
const DefaultFilters = "!\"#$%&()*+,-./:;<=>?@[\\]^_`{|}~\t\n"

// Tokenizer maps words to the integer indexes the model was trained with.
// It reproduces the behaviour of a fitted Keras text tokenizer.
type Tokenizer struct {
	wordIndex map[string]int
	filters   string
	split     string
	numWords  int
	oovIndex  int
	lower     bool
	charLevel bool
}

type tokenizerConfig struct {
	NumWords  *int            `json:"num_words"`
	Filters   *string         `json:"filters"`
	Lower     *bool           `json:"lower"`
	Split     *string         `json:"split"`
	OOVToken  *string         `json:"oov_token"`
	WordIndex json.RawMessage `json:"word_index"`
	CharLevel bool            `json:"char_level"`
}

type tokenizerDocument struct {
	Config *tokenizerConfig `json:"config"`
	tokenizerConfig
}

// LoadTokenizer reads a tokenizer from a JSON file.
func LoadTokenizer(path string) (*Tokenizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tokenizer: %w", err)
	}
	return ParseTokenizer(data)
}

// ParseTokenizer decodes either the document written by Tokenizer.to_json()
// or a bare object carrying the same config keys at the top level.
func ParseTokenizer(data []byte) (*Tokenizer, error) {
	var doc tokenizerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: tokenizer: %v", common.ErrInvalidArtifact, err)
	}

	cfg := doc.tokenizerConfig
	if doc.Config != nil {
		cfg = *doc.Config
	}

	wordIndex, err := decodeWordIndex(cfg.WordIndex)
	if err != nil {
		return nil, err
	}
	if len(wordIndex) == 0 {
		return nil, fmt.Errorf("%w: tokenizer has an empty word index", common.ErrInvalidArtifact)
	}

	t := &Tokenizer{
		wordIndex: wordIndex,
		filters:   DefaultFilters,
		split:     " ",
		lower:     true,
		charLevel: cfg.CharLevel,
	}
	if cfg.Filters != nil {
		t.filters = *cfg.Filters
	}
	if cfg.Split != nil && *cfg.Split != "" {
		t.split = *cfg.Split
	}
	if cfg.Lower != nil {
		t.lower = *cfg.Lower
	}
	if cfg.NumWords != nil {
		t.numWords = *cfg.NumWords
	}
	if cfg.OOVToken != nil {
		t.oovIndex = wordIndex[*cfg.OOVToken]
	}

	return t, nil
}

// The exported document stores word_index as a JSON string holding an
// object; hand-written files usually carry the object directly.
func decodeWordIndex(raw json.RawMessage) (map[string]int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: tokenizer is missing word_index", common.ErrInvalidArtifact)
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, fmt.Errorf("%w: word_index: %v", common.ErrInvalidArtifact, err)
		}
		raw = []byte(encoded)
	}

	var index map[string]int
	if err := json.Unmarshal(raw, &index); err != nil {
		return nil, fmt.Errorf("%w: word_index: %v", common.ErrInvalidArtifact, err)
	}
	return index, nil
}

// VocabularySize is the number of indexed words.
func (t *Tokenizer) VocabularySize() int {
	return len(t.wordIndex)
}

// Words splits text the way the tokenizer was fitted: optional lowercasing,
// filter characters replaced by the split string, empty tokens dropped.
func (t *Tokenizer) Words(text string) []string {
	if t.lower {
		text = strings.ToLower(text)
	}

	if t.charLevel {
		words := make([]string, 0, len(text))
		for _, r := range text {
			words = append(words, string(r))
		}
		return words
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(t.filters, r) {
			b.WriteString(t.split)
			continue
		}
		b.WriteRune(r)
	}

	parts := strings.Split(b.String(), t.split)
	words := parts[:0]
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}

// Sequence converts text into word indexes. Unknown words map to the
// out-of-vocabulary index when one was configured and are dropped otherwise;
// so are indexes at or beyond num_words.
func (t *Tokenizer) Sequence(text string) []int {
	words := t.Words(text)
	seq := make([]int, 0, len(words))
	for _, w := range words {
		i, ok := t.wordIndex[w]
		switch {
		case ok && (t.numWords == 0 || i < t.numWords):
			seq = append(seq, i)
		case t.oovIndex > 0:
			seq = append(seq, t.oovIndex)
		}
	}
	return seq
}

// Pad left-pads seq with zeros to length n, keeping only the trailing n
// entries when seq is longer.
func Pad(seq []int, n int) []int {
	out := make([]int, n)
	if len(seq) > n {
		seq = seq[len(seq)-n:]
	}
	copy(out[n-len(seq):], seq)
	return out
}
