package utils

import "regexp"

var spaceRE = regexp.MustCompile(`\s+`)

// RemoveSpaces collapses repeated whitespace into single spaces.
func RemoveSpaces(s string) string {
	return spaceRE.ReplaceAllString(s, " ")
}

// GetOrString returns the i-th element of the slice, or the fallback
// when the slice is too short.
func GetOrString(slice []string, i int, or string) string {
	if len(slice)-1 >= i {
		return slice[i]
	}
	return or
}
