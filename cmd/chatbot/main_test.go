package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MODEL_PROVIDER", "none")
	t.Setenv("LOGGING_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	if !slices.Contains(args, "--config") {
		args = append(args, "--config", "")
	}
	rootCmd.SetArgs(append(args, "--env", filepath.Join(t.TempDir(), "missing.env")))
	t.Cleanup(func() {
		askPersonality, askShowSource = "", false
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestAsk(t *testing.T) {
	out, err := runCLI(t, "ask", "--source", "Machine", "Learning", "kya", "hai?")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "[heuristic]\n"))
	assert.Contains(t, out, "Machine Learning = programs jo data se seekhte hain")
}

func TestAsk_Personality(t *testing.T) {
	out, err := runCLI(t, "ask", "-p", "creative", "Tell me about react.")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "✨ "))
}

func TestAsk_RejectsBlankMessage(t *testing.T) {
	_, err := runCLI(t, "ask", "   ")
	assert.Error(t, err)
}

func TestCacheClear_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("chatbot:answer", "cached"))
	require.NoError(t, mr.Set("other:key", "keep"))

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cache:
  enabled: true
  type: redis
  redis:
    addr: `+mr.Addr()+`
    key_prefix: "chatbot:"
`), 0o644))

	out, err := runCLI(t, "cache", "clear", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Cache cleared")
	assert.False(t, mr.Exists("chatbot:answer"))
	assert.True(t, mr.Exists("other:key"))
}

func TestCacheClear_Disabled(t *testing.T) {
	out, err := runCLI(t, "cache", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cache is disabled")
}
