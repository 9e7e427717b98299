package chat

import (
	"regexp"
	"strings"
)

// Domain scope (narrow, aligned with dream life design & platform)
var scopeKeywords = []string{
	"dream", "dreams", "lucid", "blueprint", "life blueprint", "visualization", "visualisation", "vision", "identity",
	"values", "imagination", "world", "3d", "worlds", "manifest", "manifestation", "daily mission", "mission", "missions",
	"mirror", "pricing", "price", "plan", "plans", "subscription", "legend", "visionary", "explorer", "coach", "coaching",
	"avatar", "environment", "energy", "alignment", "aligned", "questionnaire",
}

// Hard rejects. These run before any topical matching and override every
// in-scope signal, including greetings and domain keywords.
var hardBlockPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(javascript|typescript|python|golang|java|c\+\+|sql|html|css|programming|coding|debugger?|compiler|kubernetes)\b`),
	regexp.MustCompile(`\b(politics|political|election|president|parliament|congress|senate)\b`),
	regexp.MustCompile(`\b(diagnos\w*|prescription|medication|dosage|vaccine|covid|symptoms?|chemotherapy)\b`),
	regexp.MustCompile(`\b(gambling|casino|poker|betting|lottery|crypto\w*|bitcoin|ethereum|forex)\b`),
}

var greetingPattern = regexp.MustCompile(`^(hi|hey|hello|help)\b`)

// Fast path: pricing / plan inquiries are always in scope.
var pricingScopePattern = regexp.MustCompile(`(price|pricing|plan|plans|subscription|cost|upgrade|downgrade|trial|legend|visionary|explorer)`)

// IsInScope decides whether a question belongs to the platform domain.
// Purely lexical; expects lower-cased input, never computes embeddings.
func IsInScope(lower string) bool {
	if matchesHardBlock(lower) {
		return false
	}
	if len(strings.TrimSpace(lower)) <= 2 {
		return true // allow very short starters
	}
	if greetingPattern.MatchString(lower) {
		return true
	}
	if pricingScopePattern.MatchString(lower) {
		return true
	}
	for _, keyword := range scopeKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func matchesHardBlock(lower string) bool {
	for _, pattern := range hardBlockPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}
