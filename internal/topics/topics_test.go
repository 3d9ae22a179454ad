package topics

import (
	"math/rand/v2"
	"testing"
)

func TestParseTopic(t *testing.T) {
	tests := []struct {
		input   string
		want    Topic
		wantErr bool
	}{
		{"React", TopicReact, false},
		{"JavaScript", TopicJavaScript, false},
		{"HTML/CSS", TopicHTMLCSS, false},
		{"Testing", TopicTesting, false},
		{"Random", TopicRandom, false},
		{"react", "", true},
		{"", "", true},
		{"Rust", "", true},
	}

	for _, tt := range tests {
		got, err := ParseTopic(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTopic(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTopic(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTopic(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{"Junior", DifficultyJunior, false},
		{"Mid", DifficultyMid, false},
		{"Senior", DifficultySenior, false},
		{"junior", "", true},
		{"Principal", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDifficulty(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDifficulty(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolveRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 50; i++ {
		got := TopicRandom.Resolve(rng)
		if got == TopicRandom {
			t.Fatal("Resolve returned TopicRandom")
		}
		if _, err := ParseTopic(string(got)); err != nil {
			t.Fatalf("Resolve returned invalid topic %q", got)
		}
	}
}

func TestResolvePassthrough(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	if got := TopicJavaScript.Resolve(rng); got != TopicJavaScript {
		t.Errorf("Resolve(JavaScript) = %q, want JavaScript", got)
	}
}

func TestDemote(t *testing.T) {
	tests := []struct {
		in   Difficulty
		want Difficulty
	}{
		{DifficultySenior, DifficultyMid},
		{DifficultyMid, DifficultyJunior},
		{DifficultyJunior, DifficultyJunior},
	}
	for _, tt := range tests {
		if got := tt.in.Demote(); got != tt.want {
			t.Errorf("%s.Demote() = %q, want %q", tt.in, got, tt.want)
		}
	}
}
