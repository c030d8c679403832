package config

import (
	"regexp"
	"strings"

	"github.com/Spyro1/semester-planner/utils"
)

// Matcher accepts a value when it equals one of the raw entries, or
// when an entry of the form "~expr" matches it as a regular expression.
// An empty matcher accepts everything.
type Matcher struct {
	MatchRaw utils.StringEnum
}

func (m *Matcher) Match(text string) bool {
	if len(m.MatchRaw) == 0 {
		return true
	}

	for _, s := range m.MatchRaw {
		if s == text {
			return true
		} else if strings.HasPrefix(s, "~") && regexp.MustCompile(s[1:]).MatchString(text) {
			return true
		}
	}

	return false
}
