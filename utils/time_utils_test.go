package utils

import "testing"

func TestParseClock(t *testing.T) {
	cases := map[string]int{
		"00:00":  0,
		"08:15":  8*60 + 15,
		"23:59":  23*60 + 59,
		" 9:05 ": 9*60 + 5,
	}
	for raw, want := range cases {
		got, err := ParseClock(raw)
		if err != nil {
			t.Errorf("ParseClock(%q) returned error %v", raw, err)
			continue
		}
		if got != want {
			t.Errorf("ParseClock(%q) = %d, want %d", raw, got, want)
		}
	}

	for _, raw := range []string{"", "10", "24:00", "10:60", "aa:bb"} {
		if _, err := ParseClock(raw); err == nil {
			t.Errorf("ParseClock(%q) = nil error, want failure", raw)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(9*60 + 5); got != "09:05" {
		t.Errorf(`FormatClock(545) = %q, want "09:05"`, got)
	}
	if got := FormatClock(0); got != "00:00" {
		t.Errorf(`FormatClock(0) = %q, want "00:00"`, got)
	}
}
