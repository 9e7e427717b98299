package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInScope(t *testing.T) {
	tests := []struct {
		name     string
		question string
		expected bool
	}{
		{name: "short starter", question: "ok", expected: true},
		{name: "greeting prefix", question: "hello there", expected: true},
		{name: "help prefix", question: "help me understand", expected: true},
		{name: "pricing fast path", question: "what does the subscription cost", expected: true},
		{name: "domain keyword", question: "how does the life blueprint work", expected: true},
		{name: "domain keyword visualization", question: "improve my visualization practice", expected: true},
		{name: "unrelated trivia", question: "who won the world cup in 1998", expected: true}, // "world" is a domain keyword
		{name: "off topic", question: "what is the capital of france", expected: false},
		{name: "programming hard block", question: "write me some python", expected: false},
		{name: "politics hard block", question: "who should win the election", expected: false},
		{name: "medical hard block", question: "what's the covid vaccine schedule", expected: false},
		{name: "crypto hard block", question: "should i buy bitcoin", expected: false},
		{name: "hard block beats domain keyword", question: "javascript for my dream career", expected: false},
		{name: "hard block beats greeting", question: "hi can you debug my sql", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsInScope(tt.question))
		})
	}
}
