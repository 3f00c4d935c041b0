package themes

// Config holds theme extraction settings.
type Config struct {
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`

	// Strict rejects responses whose lists fall outside the requested sizes.
	Strict bool `mapstructure:"strict"`
}

// DefaultConfig returns the settings the prompt was tuned with.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}
