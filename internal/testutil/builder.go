package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// DeskFiles are the paths of a written fixture set.
type DeskFiles struct {
	Dir        string
	ConfigPath string
	ModelPath  string
	Tokenizer  string
	TweetsPath string
}

// Builder provides a fluent API for writing desk fixtures.
type Builder interface {
	WithTweets(tweets ...Tweet) Builder
	WithMaxLen(n int) Builder
	WithoutTweets() Builder
	Write() DeskFiles
}

type deskBuilder struct {
	t        *testing.T
	dir      string
	tweets   []Tweet
	maxLen   int
	noTweets bool
}

// NewDesk creates a builder that writes into dir.
func NewDesk(t *testing.T, dir string) Builder {
	t.Helper()
	return &deskBuilder{t: t, dir: dir, maxLen: 50}
}

func (b *deskBuilder) WithTweets(tweets ...Tweet) Builder {
	b.tweets = append(b.tweets, tweets...)
	return b
}

func (b *deskBuilder) WithMaxLen(n int) Builder {
	b.maxLen = n
	return b
}

func (b *deskBuilder) WithoutTweets() Builder {
	b.noTweets = true
	return b
}

// Write writes the model, tokenizer, tweet table and a config.yaml that
// names them by relative path.
func (b *deskBuilder) Write() DeskFiles {
	b.t.Helper()

	files := DeskFiles{
		Dir:        b.dir,
		ConfigPath: filepath.Join(b.dir, "config.yaml"),
		ModelPath:  filepath.Join(b.dir, "categorization_model.json"),
		Tokenizer:  filepath.Join(b.dir, "tokenizer.json"),
		TweetsPath: filepath.Join(b.dir, "combined.csv"),
	}

	b.write(files.ModelPath, ModelJSON(b.t, b.maxLen))
	b.write(files.Tokenizer, []byte(TokenizerJSON))
	if !b.noTweets {
		tweets := b.tweets
		if len(tweets) == 0 {
			tweets = DefaultTweets()
		}
		b.write(files.TweetsPath, []byte(TweetsCSV(b.t, tweets)))
	}

	config := fmt.Sprintf(`logging:
  level: error
classifier:
  backend: artifact
model:
  path: categorization_model.json
  tokenizer: tokenizer.json
  max_len: %d
sentiment:
  path: combined.csv
`, b.maxLen)
	b.write(files.ConfigPath, []byte(config))

	return files
}

func (b *deskBuilder) write(path string, data []byte) {
	b.t.Helper()
	if err := os.WriteFile(path, data, 0o600); err != nil {
		b.t.Fatalf("failed to write %s: %v", path, err)
	}
}
