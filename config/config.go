package config

// ParserConfig carries the catalog filters shared by all sources.
type ParserConfig struct {
	SubjectMatcher Matcher //Subject code or full name
	CourseMatcher  Matcher //Section code
	DayMatcher     Matcher //Slot day code
}

// MatchSubject accepts a subject by its code or by its full name.
func (cfg *ParserConfig) MatchSubject(code, name string) bool {
	return cfg.SubjectMatcher.Match(code) || cfg.SubjectMatcher.Match(name)
}
