package slides

import "time"

// Config holds slide generation settings.
type Config struct {
	// Timeout bounds each model call. Slide generation does not retry on
	// its own; a failed slide is retried by the learner's next navigation.
	Timeout time.Duration

	MaxTokens   int
	Temperature float64

	// QuizQuestions is the number of questions a quiz slide asks for.
	QuizQuestions int
}

// DefaultConfig returns sensible defaults for slide generation.
func DefaultConfig() Config {
	return Config{
		Timeout:       60 * time.Second,
		MaxTokens:     4096,
		Temperature:   0.4,
		QuizQuestions: 4,
	}
}
