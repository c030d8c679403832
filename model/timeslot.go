package model

import (
	"fmt"
	"strings"

	"github.com/Spyro1/semester-planner/utils"
)

// Day codes of the teaching week, Monday to Friday.
const (
	Monday    = "H"
	Tuesday   = "K"
	Wednesday = "SZE"
	Thursday  = "CS"
	Friday    = "P"
)

// DaysOfWeek lists the day codes in week order.
var DaysOfWeek = []string{Monday, Tuesday, Wednesday, Thursday, Friday}

// DayIndex returns the position of a day code within the teaching week,
// or -1 for an unknown code.
func DayIndex(day string) int {
	for i, d := range DaysOfWeek {
		if d == day {
			return i
		}
	}
	return -1
}

// TimeSlot is one weekly occurrence of a course section.
type TimeSlot struct {
	Day      string `json:"day"`       //Day code (H, K, SZE, CS, P)
	StartMin int    `json:"start_min"` //Start, minutes since midnight
	EndMin   int    `json:"end_min"`   //End, minutes since midnight
}

// ParseTimeSlot parses the wire format "DAY:HH:MM-HH:MM",
// e.g. "CS:10:15-12:00". The slot must start before it ends.
func ParseTimeSlot(raw string) (TimeSlot, error) {
	day, hours, found := strings.Cut(strings.TrimSpace(raw), ":")
	if !found {
		return TimeSlot{}, fmt.Errorf("%q is not a DAY:HH:MM-HH:MM time string", raw)
	}
	if DayIndex(day) < 0 {
		return TimeSlot{}, fmt.Errorf("unknown day code %q in time string %q", day, raw)
	}

	startRaw, endRaw, found := strings.Cut(hours, "-")
	if !found {
		return TimeSlot{}, fmt.Errorf("time string %q has no HH:MM-HH:MM part", raw)
	}

	start, err := utils.ParseClock(startRaw)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("time string %q: %w", raw, err)
	}
	end, err := utils.ParseClock(endRaw)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("time string %q: %w", raw, err)
	}
	if start >= end {
		return TimeSlot{}, fmt.Errorf("time string %q starts at or after its end", raw)
	}

	return TimeSlot{Day: day, StartMin: start, EndMin: end}, nil
}

// String renders the slot back into the wire format.
func (t TimeSlot) String() string {
	return fmt.Sprintf("%s:%s-%s", t.Day, utils.FormatClock(t.StartMin), utils.FormatClock(t.EndMin))
}
