package poetry

// Config holds poem composition settings.
type Config struct {
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`

	// Strict rejects poems whose line count is outside the mode's bounds.
	Strict bool `mapstructure:"strict"`
}

// DefaultConfig returns sensible defaults for poem composition.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}
