package testutil

import (
	"encoding/json"
	"testing"

	"github.com/Veraticus/power-desk/internal/model"
)

// TokenizerJSON is a tokenizer document as Keras writes it, with word_index
// embedded as a JSON string. Index i+1 is the i-th word of Vocabulary.
const TokenizerJSON = `{
  "class_name": "Tokenizer",
  "config": {
    "num_words": null,
    "filters": "!\"#$%&()*+,-./:;<=>?@[\\]^_` + "`" + `{|}~\t\n",
    "lower": true,
    "split": " ",
    "char_level": false,
    "oov_token": null,
    "word_index": "{\"bill\": 1, \"complaint\": 2, \"power\": 3, \"token\": 4, \"transformer\": 5, \"outage\": 6}"
  }
}`

// Vocabulary maps each tokenizer word to the label the fixture model votes
// for when it sees that word.
var Vocabulary = []struct {
	Word  string
	Label model.Label
}{
	{Word: "bill", Label: model.LabelBillingStatement},
	{Word: "complaint", Label: model.LabelComplaint},
	{Word: "power", Label: model.LabelPowerRestoration},
	{Word: "token", Label: model.LabelTokenTransaction},
	{Word: "transformer", Label: model.LabelFaultyTransformer},
	{Word: "outage", Label: model.LabelPowerRestoration},
}

// ModelJSON returns a network that embeds every vocabulary word as a
// one-hot vote for its label, averages the votes and applies softmax. The
// most frequent label in a query wins; ties go to the lower index.
func ModelJSON(t *testing.T, inputLength int) []byte {
	t.Helper()

	oneHot := func(label model.Label) []float64 {
		v := make([]float64, model.LabelCount)
		if label.Known() {
			v[label.Index()] = 1
		}
		return v
	}

	embedding := [][]float64{oneHot(model.LabelUnknown)}
	for _, w := range Vocabulary {
		embedding = append(embedding, oneHot(w.Label))
	}

	identity := make([][]float64, model.LabelCount)
	for i, label := range model.Labels() {
		identity[i] = oneHot(label)
	}

	doc := map[string]any{
		"input_length": inputLength,
		"layers": []map[string]any{
			{"type": "embedding", "weights": embedding},
			{"type": "global_average_pooling1d"},
			{"type": "dense", "activation": "softmax", "kernel": identity, "bias": make([]float64, model.LabelCount)},
		},
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to encode model: %v", err)
	}
	return data
}
