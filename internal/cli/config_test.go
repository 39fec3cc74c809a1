package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yildizm/AirdropSim/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "airdropsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { cfgFile = "" })

	cmd := NewRootCommand("dev", "none", "unknown")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigValidateCommand(t *testing.T) {
	path := writeConfigFile(t, config.SampleConfig())

	out, err := runRoot(t, "config", "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "API Base URL: http://localhost:8000")
	assert.Contains(t, out, "Theme: default")
}

func TestConfigValidateCommand_Invalid(t *testing.T) {
	path := writeConfigFile(t, "version: \"1.0\"\napi:\n  base_url: \"ftp://example.com\"\n")

	_, err := runRoot(t, "config", "validate", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestConfigShowCommand(t *testing.T) {
	path := writeConfigFile(t, "version: \"1.0\"\napi:\n  base_url: \"https://api.example.com\"\n  language: \"es\"\n")

	out, err := runRoot(t, "config", "show", "--config", path)
	require.NoError(t, err)

	var shown config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "https://api.example.com", shown.API.BaseURL)
	assert.Equal(t, "es", shown.API.Language)
	assert.Equal(t, "text", shown.Output.DefaultFormat)
}

func TestAnalyzeCommand_RequiresBaseURL(t *testing.T) {
	path := writeConfigFile(t, config.MinimalSampleConfig())
	t.Setenv("AIRDROPSIM_API_URL", "")

	_, err := runRoot(t, "analyze", "--config", path, "--api-url", "", "0xabc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base URL is required")
}
