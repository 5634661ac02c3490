package llmagent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearAgentEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "AGENT_BASE_URL", "AGENT_MODEL",
		"AGENT_MAX_ITERATIONS", "AGENT_IMAGES_DIR", "AGENT_LOG_LEVEL", "AGENT_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearAgentEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultMaxIterations, cfg.MaxIterations)
	assert.Equal(t, "generated_images", cfg.ImagesDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	clearAgentEnv(t)
	dir := t.TempDir()

	configPath := filepath.Join(dir, "agent.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("model: gpt-4o\nmax_iterations: 3\nimages_dir: out\n"), 0o644))

	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("OPENAI_API_KEY=sk-from-dotenv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("OPENAI_API_KEY") })

	t.Setenv("AGENT_MAX_ITERATIONS", "7")

	cfg, err := LoadConfig(configPath, envPath)
	require.NoError(t, err)

	assert.Equal(t, "sk-from-dotenv", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 7, cfg.MaxIterations, "environment overrides the config file")
	assert.Equal(t, "out", cfg.ImagesDir)
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearAgentEnv(t)
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	clearAgentEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)

	cfg.OpenAIAPIKey = "sk-test"
	cfg.MaxIterations = 0
	assert.Error(t, cfg.Validate())
}
