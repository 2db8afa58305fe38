package quiz

// Config tunes question set synthesis.
type Config struct {
	// MaxTokens bounds the generation response. Five questions with
	// explanations fit comfortably under the default.
	MaxTokens int

	// Temperature for question generation. Some variety is wanted so
	// retakes don't repeat the failed set verbatim.
	Temperature float64
}

// DefaultConfig returns the synthesis defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// ExplainConfig tunes remediation explanation generation.
type ExplainConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultExplainConfig returns the remediation defaults.
func DefaultExplainConfig() ExplainConfig {
	return ExplainConfig{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}
