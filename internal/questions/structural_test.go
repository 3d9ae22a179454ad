package questions

import (
	"strings"
	"testing"
)

func validMCQuestion() *Question {
	return &Question{
		Text: "What is the event loop in JavaScript?",
		Options: []string{
			"A mechanism that handles asynchronous operations",
			"A type of loop in JavaScript",
			"A way to handle events",
			"A debugging tool",
		},
		CorrectAnswer: "A mechanism that handles asynchronous operations",
	}
}

func TestStructural_ValidQuestion(t *testing.T) {
	v := &StructuralValidator{}
	err := v.Validate(validMCQuestion(), NextInput{})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_ValidFreeText(t *testing.T) {
	v := &StructuralValidator{}
	q := &Question{Text: "Explain how you would debug a memory leak in a browser."}
	err := v.Validate(q, NextInput{})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_EmptyQuestion(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Text = ""
	err := v.Validate(q, NextInput{})
	if err == nil {
		t.Fatal("expected error for empty question")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestStructural_QuestionTooLong(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Text = strings.Repeat("a", 501)
	err := v.Validate(q, NextInput{})
	if err == nil {
		t.Fatal("expected error for long question")
	}
}

func TestStructural_WrongOptionCount(t *testing.T) {
	v := &StructuralValidator{}
	for _, n := range []int{1, 2, 3, 5} {
		q := validMCQuestion()
		q.Options = make([]string, n)
		for i := range q.Options {
			q.Options[i] = strings.Repeat("x", i+1)
		}
		err := v.Validate(q, NextInput{})
		if err == nil {
			t.Errorf("expected error for %d options", n)
		}
	}
}

func TestStructural_DuplicateOptions(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Options[1] = q.Options[0]
	err := v.Validate(q, NextInput{})
	if err == nil {
		t.Fatal("expected error for duplicate options")
	}
}

func TestStructural_EmptyOption(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Options[2] = ""
	err := v.Validate(q, NextInput{})
	if err == nil {
		t.Fatal("expected error for empty option")
	}
}

func TestStructural_AnswerNotInOptions(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.CorrectAnswer = "Something else entirely"
	err := v.Validate(q, NextInput{})
	if err == nil {
		t.Fatal("expected error for answer not among options")
	}
}

func TestStructural_FreeTextWithAnswer(t *testing.T) {
	v := &StructuralValidator{}
	q := &Question{Text: "Explain closures.", CorrectAnswer: "stale"}
	err := v.Validate(q, NextInput{})
	if err == nil {
		t.Fatal("expected error for free-text question with a correct answer")
	}
}
