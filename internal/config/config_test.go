package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/power-desk/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, BackendArtifact, cfg.Classifier.Backend)
	assert.Equal(t, "categorization_model.json", cfg.Model.Path)
	assert.Equal(t, "tokenizer.json", cfg.Model.Tokenizer)
	assert.Equal(t, 50, cfg.Model.MaxLen)
	assert.Equal(t, "combined.csv", cfg.Sentiment.Path)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
classifier:
  backend: llm
llm:
  provider: anthropic
  api_key: file-key
  timeout: 5s
model:
  path: artifacts/model.json
sentiment:
  path: /data/combined.csv
`), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, BackendLLM, cfg.Classifier.Backend)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "file-key", cfg.LLM.APIKey)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, filepath.Join(dir, "artifacts/model.json"), cfg.Model.Path)
	assert.Equal(t, "/data/combined.csv", cfg.Sentiment.Path)
}

func TestLoad_ProviderKeyFromEnvironment(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-key")

	v := viper.New()
	v.Set("classifier.backend", "llm")
	v.Set("llm.provider", "anthropic")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.LLM.APIKey)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{name: "log level", key: "logging.level", val: "verbose"},
		{name: "log format", key: "logging.format", val: "xml"},
		{name: "backend", key: "classifier.backend", val: "oracle"},
		{name: "max len", key: "model.max_len", val: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.val)
			_, err := Load(v)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}

	v := viper.New()
	v.Set("classifier.backend", "llm")
	v.Set("llm.provider", "cohere")
	_, err := Load(v)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("DESK_DATA", "/srv/desk")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "data/combined.csv"), ExpandPath("~/data/combined.csv"))
	assert.Equal(t, "/srv/desk/model.json", ExpandPath("$DESK_DATA/model.json"))
	assert.Equal(t, "relative.csv", ExpandPath("relative.csv"))
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/etc/desk/tokenizer.json", ResolvePath("/etc/desk", "tokenizer.json"))
	assert.Equal(t, "/abs/tokenizer.json", ResolvePath("/etc/desk", "/abs/tokenizer.json"))
	assert.Equal(t, "tokenizer.json", ResolvePath("", "tokenizer.json"))
	assert.Equal(t, "", ResolvePath("/etc/desk", ""))
}
