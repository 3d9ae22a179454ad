package questions

// StructuralValidator checks that required fields are present, within
// length limits, and structurally consistent.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ NextInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question exceeds 500 characters",
			Retryable: true,
		}
	}

	if !q.IsMultipleChoice() {
		if q.CorrectAnswer != "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "free-text question must not designate a correct answer",
				Retryable: true,
			}
		}
		return nil
	}

	if len(q.Options) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "multiple-choice question must have exactly 4 options",
			Retryable: true,
		}
	}

	seen := make(map[string]bool, len(q.Options))
	answerFound := false
	for _, opt := range q.Options {
		if opt == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "option text is empty",
				Retryable: true,
			}
		}
		if seen[opt] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "options contain duplicates",
				Retryable: true,
			}
		}
		seen[opt] = true
		if opt == q.CorrectAnswer {
			answerFound = true
		}
	}

	if !answerFound {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer does not match any option verbatim",
			Retryable: true,
		}
	}

	return nil
}
