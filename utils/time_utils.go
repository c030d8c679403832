package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts a "HH:MM" clock value to minutes since midnight.
func ParseClock(str string) (int, error) {
	hourRaw, minuteRaw, found := strings.Cut(strings.TrimSpace(str), ":")
	if !found {
		return 0, fmt.Errorf("%q is not a HH:MM clock value", str)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hourRaw))
	if err != nil {
		return 0, fmt.Errorf("%q is not a HH:MM clock value", str)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(minuteRaw))
	if err != nil {
		return 0, fmt.Errorf("%q is not a HH:MM clock value", str)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock value %q is outside 00:00-23:59", str)
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
