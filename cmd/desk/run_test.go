package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/Veraticus/power-desk/internal/catalog"
	"github.com/Veraticus/power-desk/internal/engine"
	"github.com/Veraticus/power-desk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command against a fixture config and returns stdout.
func execute(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

var waitingNumber = regexp.MustCompile(`waiting number is (\d{3})\.`)

func TestAsk_Artifact(t *testing.T) {
	files := testutil.NewDesk(t, t.TempDir()).Write()

	out, err := execute(t, files.ConfigPath, "ask", "faulty", "transformer", "again")
	require.NoError(t, err)
	assert.Contains(t, out, catalog.TransformerIntent)
	assert.Regexp(t, waitingNumber, out)
}

func TestAsk_BlankQuery(t *testing.T) {
	files := testutil.NewDesk(t, t.TempDir()).Write()

	out, err := execute(t, files.ConfigPath, "ask", "   ")
	require.NoError(t, err)
	assert.Contains(t, out, engine.PromptForQuery)
}

func TestAsk_MissingArtifact(t *testing.T) {
	files := testutil.NewDesk(t, t.TempDir()).Write()
	require.NoError(t, os.Remove(files.ModelPath))

	_, err := execute(t, files.ConfigPath, "ask", "token")
	assert.Error(t, err)
}

func TestBatch_WritesCSV(t *testing.T) {
	dir := t.TempDir()
	files := testutil.NewDesk(t, dir).Write()

	input := filepath.Join(dir, "queries.txt")
	require.NoError(t, os.WriteFile(input, []byte("my bill please\n\nI have a complaint\n"), 0o600))
	output := filepath.Join(dir, "answers.csv")

	_, err := execute(t, files.ConfigPath, "batch", "--input", input, "--output", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "query,response", lines[0])
	assert.Contains(t, lines[1], catalog.BillingIntent)
	assert.Contains(t, lines[2], catalog.ComplaintIntent)
}

func TestSentiment_Negative(t *testing.T) {
	files := testutil.NewDesk(t, t.TempDir()).Write()

	out, err := execute(t, files.ConfigPath, "sentiment", "negative")
	require.NoError(t, err)
	assert.Contains(t, out, "No electricity since morning")
	assert.NotContains(t, out, "Power back on")
	assert.Contains(t, out, "Number of negative tweets: 3")
}

func TestSentiment_CountOnly(t *testing.T) {
	files := testutil.NewDesk(t, t.TempDir()).Write()

	out, err := execute(t, files.ConfigPath, "sentiment", "neutral", "--count")
	require.NoError(t, err)
	assert.Equal(t, "Number of neutral tweets: 0", strings.TrimSpace(out))
}
