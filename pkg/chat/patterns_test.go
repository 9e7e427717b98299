package chat

import (
	"testing"

	"dreamlife-be/internal/constant"

	"github.com/stretchr/testify/assert"
)

func TestMatchDirectPattern(t *testing.T) {
	tests := []struct {
		name     string
		question string
		expected string
	}{
		{name: "identity", question: "are you an ai or a human", expected: constant.ChatIdentityResponse},
		{name: "identity short form", question: "r u a bot", expected: constant.ChatIdentityResponse},
		{name: "getting started", question: "how do i start with this platform", expected: constant.ChatGettingStartedResponse},
		{name: "getting started alt", question: "where should i begin", expected: constant.ChatGettingStartedResponse},
		{name: "stuck", question: "i'm feeling stuck lately", expected: constant.ChatStuckResponse},
		{name: "overwhelmed", question: "i am overwhelmed by all of this", expected: constant.ChatStuckResponse},
		{name: "career", question: "what about my dream job", expected: constant.ChatCareerResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, ok := MatchDirectPattern(tt.question)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, answer)
		})
	}
}

func TestMatchDirectPatternNoMatch(t *testing.T) {
	_, ok := MatchDirectPattern("tell me about the life blueprint")
	assert.False(t, ok)
}

func TestMatchDirectPatternOrdering(t *testing.T) {
	// Identity is declared first and must win over later patterns.
	answer, ok := MatchDirectPattern("are you an ai coach for my career")
	assert.True(t, ok)
	assert.Equal(t, constant.ChatIdentityResponse, answer)
}

func TestMatchPricing(t *testing.T) {
	assert.True(t, MatchPricing("how much is legend?"))
	assert.True(t, MatchPricing("compare the plans"))
	assert.True(t, MatchPricing("can i get a trial"))
	assert.False(t, MatchPricing("tell me about visualization"))
}
