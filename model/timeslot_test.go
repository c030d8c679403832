package model

import "testing"

func TestParseTimeSlot(t *testing.T) {
	slot, err := ParseTimeSlot("CS:10:15-12:00")
	if err != nil {
		t.Fatalf(`ParseTimeSlot("CS:10:15-12:00") returned error %v`, err)
	}
	if slot.Day != Thursday {
		t.Errorf("slot.Day = %q, want %q", slot.Day, Thursday)
	}
	if slot.StartMin != 10*60+15 {
		t.Errorf("slot.StartMin = %d, want %d", slot.StartMin, 10*60+15)
	}
	if slot.EndMin != 12*60 {
		t.Errorf("slot.EndMin = %d, want %d", slot.EndMin, 12*60)
	}
	if slot.String() != "CS:10:15-12:00" {
		t.Errorf(`slot.String() = %q, want "CS:10:15-12:00"`, slot.String())
	}
}

func TestParseTimeSlotRejectsBadInput(t *testing.T) {
	bad := []string{
		"X:10:00-11:00",   // unknown day code
		"CS:10:00",        // no end time
		"CS:banana-11:00", // not a clock value
		"CS:25:00-26:00",  // out of range
		"H:12:00-12:00",   // zero length
		"H:14:00-12:00",   // ends before it starts
		"just nonsense",
	}
	for _, raw := range bad {
		if _, err := ParseTimeSlot(raw); err == nil {
			t.Errorf("ParseTimeSlot(%q) = nil error, want failure", raw)
		}
	}
}

func TestDayIndex(t *testing.T) {
	for i, day := range DaysOfWeek {
		if got := DayIndex(day); got != i {
			t.Errorf("DayIndex(%q) = %d, want %d", day, got, i)
		}
	}
	if got := DayIndex("SZO"); got != -1 {
		t.Errorf(`DayIndex("SZO") = %d, want -1`, got)
	}
}

func TestCourseSlotsString(t *testing.T) {
	course := Course{
		Code: "L01",
		Slots: []TimeSlot{
			{Day: Monday, StartMin: 8 * 60, EndMin: 10 * 60},
			{Day: Wednesday, StartMin: 8 * 60, EndMin: 10 * 60},
		},
	}
	want := "H:08:00-10:00;SZE:08:00-10:00"
	if got := course.SlotsString(); got != want {
		t.Errorf("course.SlotsString() = %q, want %q", got, want)
	}
}
