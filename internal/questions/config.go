package questions

// Config controls the behavior of the LLMSource.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// produced question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPreviousQuestions is the maximum number of previously asked
	// questions to include in the prompt for deduplication.
	MaxPreviousQuestions int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		MaxTokens:            512,
		Temperature:          0.7,
		MaxPreviousQuestions: 10,
	}
}
