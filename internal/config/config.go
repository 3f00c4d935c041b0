// Package config loads service configuration from defaults, an optional
// oriki.yaml, a .env file, ORIKI_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nursen/oriki/internal/llm"
	"github.com/nursen/oriki/internal/observability"
	"github.com/nursen/oriki/internal/pipeline"
)

// EnvPrefix prefixes every environment override, e.g. ORIKI_SERVER_PORT.
const EnvPrefix = "ORIKI"

type Config struct {
	Server    ServerConfig                `mapstructure:"server"`
	LLM       llm.Config                  `mapstructure:"llm"`
	Store     StoreConfig                 `mapstructure:"store"`
	Log       LogConfig                   `mapstructure:"log"`
	Pipeline  pipeline.Config             `mapstructure:"pipeline"`
	Telemetry observability.TracingConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns host:port for net.Listen.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StoreConfig locates the LLM request event log.
type StoreConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Path is the SQLite file. Empty means store.DefaultDBPath.
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Mode  string `mapstructure:"mode"` // development or production
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:8080",
				"http://127.0.0.1:3000",
				"http://127.0.0.1:8080",
				"https://nursen.github.io",
			},
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    4 * time.Minute,
			ShutdownTimeout: 10 * time.Second,
		},
		LLM:       llm.DefaultConfig(),
		Store:     StoreConfig{Enabled: true},
		Log:       LogConfig{Mode: "development"},
		Pipeline:  pipeline.DefaultConfig(),
		Telemetry: observability.DefaultTracingConfig(),
	}
}

// LoadOptions controls where Load looks.
type LoadOptions struct {
	// ConfigFile is an explicit config path. When empty, oriki.yaml is
	// searched for in the working directory; a missing file is fine.
	ConfigFile string

	// EnvFile is loaded into the process environment before reading
	// variables. Defaults to ".env"; a missing file is fine.
	EnvFile string

	// Flags are bound over everything else when set on the command line.
	Flags *pflag.FlagSet
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"host":       "server.host",
	"port":       "server.port",
	"db":         "store.path",
	"provider":   "llm.provider",
	"log-mode":   "log.mode",
	"log-level":  "log.level",
	"concurrent": "pipeline.concurrent",
	"strict":     "pipeline.strict",
}

// Load assembles the configuration. It does not validate; call Validate
// once the caller knows which parts it needs.
func Load(opts LoadOptions) (Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("oriki")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if v.GetBool("pipeline.strict") {
		cfg.Pipeline.Themes.Strict = true
		cfg.Pipeline.Poem.Strict = true
		cfg.Pipeline.Affirmations.Strict = true
	}

	applyVendorKeys(&cfg.LLM)
	return cfg, nil
}

// vendorKeys are the API key variables each vendor's own tooling reads, in
// fallback priority order.
var vendorKeys = []struct {
	provider string
	env      string
	key      func(*llm.Config) *string
}{
	{"openai", "OPENAI_API_KEY", func(c *llm.Config) *string { return &c.OpenAI.APIKey }},
	{"anthropic", "ANTHROPIC_API_KEY", func(c *llm.Config) *string { return &c.Anthropic.APIKey }},
	{"gemini", "GEMINI_API_KEY", func(c *llm.Config) *string { return &c.Gemini.APIKey }},
	{"openrouter", "OPENROUTER_API_KEY", func(c *llm.Config) *string { return &c.OpenRouter.APIKey }},
}

// applyVendorKeys fills missing keys from the vendors' standard variables.
// If the selected provider still has no key, the first vendor with one is
// selected instead.
func applyVendorKeys(c *llm.Config) {
	for _, vk := range vendorKeys {
		if p := vk.key(c); *p == "" {
			*p = os.Getenv(vk.env)
		}
	}
	if c.HasKey() {
		return
	}
	for _, vk := range vendorKeys {
		if *vk.key(c) != "" {
			c.Provider = vk.provider
			return
		}
	}
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	switch strings.ToLower(c.Log.Mode) {
	case "dev", "development", "prod", "production":
	default:
		errs = append(errs, fmt.Errorf("log.mode must be development or production, got %q", c.Log.Mode))
	}
	if err := c.LLM.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Pipeline.StageTimeout < 0 {
		errs = append(errs, fmt.Errorf("pipeline.stage_timeout cannot be negative"))
	}
	if c.Telemetry.Enabled {
		switch c.Telemetry.Exporter {
		case "", "otlp", "zipkin", "stdout":
		default:
			errs = append(errs, fmt.Errorf("telemetry.exporter must be otlp, zipkin or stdout, got %q", c.Telemetry.Exporter))
		}
	}

	return errors.Join(errs...)
}
