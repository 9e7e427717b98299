package chat

import (
	"regexp"

	"dreamlife-be/internal/constant"
)

// DirectPattern pairs a regex with a canned answer. Patterns are tried
// in declaration order; the first match wins.
type DirectPattern struct {
	Pattern *regexp.Regexp
	Answer  string
}

var directPatterns = []DirectPattern{
	{
		Pattern: regexp.MustCompile(`\b(are you|r u)\b.*\b(an ai|ai|a bot|bot|a robot|robot|human|real)\b`),
		Answer:  constant.ChatIdentityResponse,
	},
	{
		Pattern: regexp.MustCompile(`\b(get(ting)? started|how (do|can|should) i (start|begin)|where (do|should) i (start|begin)|new here)\b`),
		Answer:  constant.ChatGettingStartedResponse,
	},
	{
		Pattern: regexp.MustCompile(`\b(i('m| am)?( feeling| feel)? (stuck|lost|overwhelmed|unmotivated)|don'?t know where to (start|begin))\b`),
		Answer:  constant.ChatStuckResponse,
	},
	{
		Pattern: regexp.MustCompile(`\b(career|careers|dream job|profession|vocation|calling)\b`),
		Answer:  constant.ChatCareerResponse,
	},
}

// Pricing is conceptually the same mechanism but checked as a distinct,
// later step by the engine.
var pricingPattern = regexp.MustCompile(`(price|pricing|plan|plans|subscription|legend|visionary|explorer|how much|upgrade|downgrade|trial)`)

// MatchDirectPattern returns the canned answer for the first matching
// intent pattern, if any. Expects lower-cased input.
func MatchDirectPattern(lower string) (string, bool) {
	for _, p := range directPatterns {
		if p.Pattern.MatchString(lower) {
			return p.Answer, true
		}
	}
	return "", false
}

// MatchPricing reports whether the question is a pricing/plan inquiry.
func MatchPricing(lower string) bool {
	return pricingPattern.MatchString(lower)
}
