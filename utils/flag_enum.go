package utils

import "strings"

// StringEnum collects the values of a repeatable command line flag.
type StringEnum []string

func (i *StringEnum) String() string {
	return strings.Join(*i, ",")
}

func (i *StringEnum) Set(value string) error {
	*i = append(*i, value)
	return nil
}
