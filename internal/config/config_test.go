package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no vendor keys set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, k := range []string{"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, Default().Server, cfg.Server)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 1, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, 60*time.Second, cfg.Pipeline.StageTimeout)
	assert.Equal(t, 2000, cfg.Pipeline.Limits.MaxLetterRunes)
	assert.InDelta(t, 0.6, cfg.Pipeline.Affirmations.Temperature, 1e-9)
	assert.True(t, cfg.Store.Enabled)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("ORIKI_SERVER_PORT", "9090")
	t.Setenv("ORIKI_LLM_PROVIDER", "anthropic")
	t.Setenv("ORIKI_LLM_ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("ORIKI_PIPELINE_STAGE_TIMEOUT", "5s")
	t.Setenv("ORIKI_PIPELINE_CONCURRENT", "true")
	t.Setenv("ORIKI_SERVER_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-ant", cfg.LLM.Anthropic.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Pipeline.StageTimeout)
	assert.True(t, cfg.Pipeline.Concurrent)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "oriki.yaml"), `
server:
  port: 8123
log:
  mode: production
pipeline:
  poem:
    temperature: 0.9
`)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Log.Mode)
	assert.InDelta(t, 0.9, cfg.Pipeline.Poem.Temperature, 1e-9)
	assert.Equal(t, 1024, cfg.Pipeline.Poem.MaxTokens)
}

func TestLoad_ExplicitConfigFileMustExist(t *testing.T) {
	dir := isolate(t)

	_, err := Load(LoadOptions{ConfigFile: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "oriki.yaml"), "server:\n  port: 8123\n")
	t.Setenv("ORIKI_SERVER_PORT", "7000")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoad_FlagsBeatEnv(t *testing.T) {
	isolate(t)
	t.Setenv("ORIKI_SERVER_PORT", "7000")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("port", 8000, "")
	fs.String("log-level", "", "")
	fs.Bool("strict", false, "")
	require.NoError(t, fs.Parse([]string{"--port", "7500", "--strict"}))

	cfg, err := Load(LoadOptions{Flags: fs})
	require.NoError(t, err)

	assert.Equal(t, 7500, cfg.Server.Port)
	assert.Empty(t, cfg.Log.Level)
	assert.True(t, cfg.Pipeline.Themes.Strict)
	assert.True(t, cfg.Pipeline.Poem.Strict)
	assert.True(t, cfg.Pipeline.Affirmations.Strict)
}

func TestLoad_UnsetFlagKeepsDefault(t *testing.T) {
	isolate(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("port", 1234, "")
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(LoadOptions{Flags: fs})
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, "local.env")
	writeFile(t, envFile, "ORIKI_LOG_LEVEL=warn\n")
	t.Setenv("ORIKI_LOG_LEVEL", "")
	os.Unsetenv("ORIKI_LOG_LEVEL")

	cfg, err := Load(LoadOptions{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_VendorKeys(t *testing.T) {
	t.Run("fills selected provider", func(t *testing.T) {
		isolate(t)
		t.Setenv("OPENAI_API_KEY", "sk-openai")

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "openai", cfg.LLM.Provider)
		assert.Equal(t, "sk-openai", cfg.LLM.OpenAI.APIKey)
		assert.Equal(t, "sk-openai", cfg.LLM.SpeechKey())
	})

	t.Run("switches to a provider with a key", func(t *testing.T) {
		isolate(t)
		t.Setenv("GEMINI_API_KEY", "g-key")

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "gemini", cfg.LLM.Provider)
		assert.Equal(t, "g-key", cfg.LLM.Gemini.APIKey)
	})

	t.Run("prefixed key wins", func(t *testing.T) {
		isolate(t)
		t.Setenv("OPENAI_API_KEY", "vendor")
		t.Setenv("ORIKI_LLM_OPENAI_API_KEY", "prefixed")

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "prefixed", cfg.LLM.OpenAI.APIKey)
	})

	t.Run("mock needs no key", func(t *testing.T) {
		isolate(t)
		t.Setenv("ANTHROPIC_API_KEY", "a-key")
		t.Setenv("ORIKI_LLM_PROVIDER", "mock")

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "mock", cfg.LLM.Provider)
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		c := Default()
		c.LLM.Provider = "mock"
		return c
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"log mode", func(c *Config) { c.Log.Mode = "verbose" }, "log.mode"},
		{"missing key", func(c *Config) { c.LLM.Provider = "openai" }, "ORIKI_LLM_OPENAI_API_KEY"},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "bard" }, "unknown LLM provider"},
		{"negative timeout", func(c *Config) { c.Pipeline.StageTimeout = -time.Second }, "stage_timeout"},
		{"exporter", func(c *Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "jaeger"
		}, "telemetry.exporter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsAll(t *testing.T) {
	c := Default()
	c.LLM.Provider = "mock"
	c.Server.Port = -1
	c.Log.Mode = "loud"

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "log.mode")
}
