package model

import "strings"

// GradeTier is the rarity tier a free-form grade string maps to.
type GradeTier int

const (
	TierUnrecognized GradeTier = iota
	TierFactory
	TierLimited
	TierNismo
)

// DefaultGrade is used when a card or its grade is missing.
const DefaultGrade = "FACTORY"

type gradeRule struct {
	substring string
	tier      GradeTier
}

// Order matters: first match wins.
var gradeRules = []gradeRule{
	{substring: "FACTORY", tier: TierFactory},
	{substring: "LIMITED", tier: TierLimited},
	{substring: "NISMO", tier: TierNismo},
}

// ParseGradeTier maps a grade such as "limited_run" or "Limited-Edition"
// to its tier using case-insensitive substring matching.
func ParseGradeTier(grade string) GradeTier {
	upper := strings.ToUpper(grade)
	for _, rule := range gradeRules {
		if strings.Contains(upper, rule.substring) {
			return rule.tier
		}
	}
	return TierUnrecognized
}

func (t GradeTier) String() string {
	switch t {
	case TierFactory:
		return "FACTORY"
	case TierLimited:
		return "LIMITED_RUN"
	case TierNismo:
		return "NISMO"
	default:
		return "UNRECOGNIZED"
	}
}
