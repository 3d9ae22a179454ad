package topics

import (
	"fmt"
	"math/rand/v2"
)

// Topic is the subject-matter scope of an interview.
type Topic string

const (
	TopicReact      Topic = "React"
	TopicJavaScript Topic = "JavaScript"
	TopicHTMLCSS    Topic = "HTML/CSS"
	TopicTesting    Topic = "Testing"
	TopicRandom     Topic = "Random"
)

// DefaultTopic is the fallback used when a requested topic has no
// catalogued content.
const DefaultTopic = TopicReact

// AllTopics lists the selectable topics in display order.
func AllTopics() []Topic {
	return []Topic{TopicReact, TopicJavaScript, TopicHTMLCSS, TopicTesting, TopicRandom}
}

// ParseTopic validates a topic string from an external boundary.
func ParseTopic(s string) (Topic, error) {
	for _, t := range AllTopics() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown topic: %q", s)
}

// Resolve replaces TopicRandom with a concrete topic drawn from rng.
// Other topics pass through unchanged.
func (t Topic) Resolve(rng *rand.Rand) Topic {
	if t != TopicRandom {
		return t
	}
	concrete := []Topic{TopicReact, TopicJavaScript, TopicHTMLCSS, TopicTesting}
	if rng == nil {
		return concrete[rand.IntN(len(concrete))]
	}
	return concrete[rng.IntN(len(concrete))]
}

// Difficulty is the configured target skill level for an interview.
type Difficulty string

const (
	DifficultyJunior Difficulty = "Junior"
	DifficultyMid    Difficulty = "Mid"
	DifficultySenior Difficulty = "Senior"
)

// DefaultDifficulty is the fallback used when a requested difficulty has
// no catalogued content.
const DefaultDifficulty = DifficultyJunior

// AllDifficulties lists the selectable difficulties in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyJunior, DifficultyMid, DifficultySenior}
}

// ParseDifficulty validates a difficulty string from an external boundary.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range AllDifficulties() {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty: %q", s)
}

// Demote returns the level one step below d. Junior stays Junior.
func (d Difficulty) Demote() Difficulty {
	switch d {
	case DifficultySenior:
		return DifficultyMid
	case DifficultyMid:
		return DifficultyJunior
	default:
		return DifficultyJunior
	}
}
