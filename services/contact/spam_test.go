package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySpam_Keywords(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		message string
		spam    bool
	}{
		{"keyword in message", "Hello", "buy viagra now", true},
		{"keyword in subject", "free money inside", "just saying hi", true},
		{"keyword in name", "Casino Royale", "ordinary text here", true},
		{"keyword is case insensitive", "Hello", "CLICK HERE to win", true},
		{"ordinary message", "Project inquiry", "I saw your portfolio and would like to talk.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// first field doubles as the submitter name for the name cases
			name := "Alice"
			if tt.name == "keyword in name" {
				name = tt.subject
				tt.subject = "Hello there"
			}
			isSpam, reason := classifySpam(name, tt.subject, tt.message)
			assert.Equal(t, tt.spam, isSpam)
			if tt.spam {
				assert.NotEmpty(t, reason)
			} else {
				assert.Empty(t, reason)
			}
		})
	}
}

func TestClassifySpam_ExcessiveLinks(t *testing.T) {
	// three link mentions are fine
	isSpam, _ := classifySpam("Alice", "Links", "http://a http://b http://c")
	assert.False(t, isSpam)

	// four cross the threshold
	isSpam, reason := classifySpam("Alice", "Links", "http://a http://b http://c http://d")
	assert.True(t, isSpam)
	assert.Contains(t, reason, "links")
}

func TestClassifySpam_RepeatedCharacters(t *testing.T) {
	// ten in a row is still fine
	isSpam, _ := classifySpam("Alice", "Excited", "so cool "+strings.Repeat("a", 10))
	assert.False(t, isSpam)

	// eleven in a row is flagged
	isSpam, reason := classifySpam("Alice", "Excited", "so cool "+strings.Repeat("a", 11))
	assert.True(t, isSpam)
	assert.Contains(t, reason, "repeated")
}
