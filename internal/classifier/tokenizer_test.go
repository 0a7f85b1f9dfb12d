package classifier

import (
	"testing"

	"github.com/Veraticus/power-desk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kerasTokenizerJSON mirrors what Tokenizer.to_json() writes: word_index is
// itself a JSON-encoded string.
const kerasTokenizerJSON = `{
  "class_name": "Tokenizer",
  "config": {
    "num_words": null,
    "filters": "!\"#$%&()*+,-./:;<=>?@[\\]^_` + "`" + `{|}~\t\n",
    "lower": true,
    "split": " ",
    "char_level": false,
    "oov_token": null,
    "document_count": 3,
    "word_index": "{\"bill\": 1, \"complaint\": 2, \"power\": 3, \"token\": 4, \"transformer\": 5, \"outage\": 6}"
  }
}`

func TestParseTokenizer_KerasDocument(t *testing.T) {
	tok, err := ParseTokenizer([]byte(kerasTokenizerJSON))
	require.NoError(t, err)
	assert.Equal(t, 6, tok.VocabularySize())

	assert.Equal(t, []int{3, 6}, tok.Sequence("POWER outage!!"))
	assert.Equal(t, []int{5}, tok.Sequence("less... no: transformer"))
	assert.Equal(t, []int{3, 5}, tok.Sequence("power,transformer"))
	assert.Empty(t, tok.Sequence("hello there"))
}

func TestParseTokenizer_BareObject(t *testing.T) {
	tok, err := ParseTokenizer([]byte(`{"word_index": {"<OOV>": 1, "token": 2, "bill": 3}, "oov_token": "<OOV>", "num_words": 3}`))
	require.NoError(t, err)

	// bill has index 3 which is not below num_words, so it becomes OOV.
	assert.Equal(t, []int{2, 1, 1}, tok.Sequence("token bill unknown"))
}

func TestParseTokenizer_NoLowercase(t *testing.T) {
	tok, err := ParseTokenizer([]byte(`{"word_index": {"Token": 1, "token": 2}, "lower": false}`))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, tok.Sequence("Token token"))
}

func TestParseTokenizer_CharLevel(t *testing.T) {
	tok, err := ParseTokenizer([]byte(`{"word_index": {"a": 1, "b": 2}, "char_level": true}`))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, tok.Sequence("AbXa"))
}

func TestParseTokenizer_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "tokenizer.pkl"},
		{name: "missing word index", data: `{"config": {"lower": true}}`},
		{name: "empty word index", data: `{"word_index": {}}`},
		{name: "bad embedded index", data: `{"word_index": "{not json"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTokenizer([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidArtifact)
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name string
		seq  []int
		n    int
		want []int
	}{
		{name: "pre padding", seq: []int{4, 5}, n: 5, want: []int{0, 0, 0, 4, 5}},
		{name: "exact", seq: []int{1, 2, 3}, n: 3, want: []int{1, 2, 3}},
		{name: "pre truncation", seq: []int{1, 2, 3, 4, 5}, n: 3, want: []int{3, 4, 5}},
		{name: "empty", seq: nil, n: 4, want: []int{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pad(tt.seq, tt.n))
		})
	}
}
