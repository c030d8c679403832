package layout

import (
	"testing"

	"github.com/Spyro1/semester-planner/model"
)

func semesterWithSlots(slots ...model.TimeSlot) model.Semester {
	return model.Semester{{
		Name:    "Analysis",
		Code:    "MA1",
		Credits: 6,
		Courses: []model.Course{{Code: "L01", Slots: slots}},
	}}
}

func TestBounds(t *testing.T) {
	semester := semesterWithSlots(
		model.TimeSlot{Day: model.Monday, StartMin: 9*60 + 15, EndMin: 11 * 60},
		model.TimeSlot{Day: model.Thursday, StartMin: 10 * 60, EndMin: 11*60 + 45},
	)
	start, end := Bounds(semester)
	if start != 9*60 {
		t.Errorf("start = %d, want %d (09:15 padded down to the hour)", start, 9*60)
	}
	if end != 12*60 {
		t.Errorf("end = %d, want %d (11:45 padded up to the hour)", end, 12*60)
	}
}

func TestBoundsClamps(t *testing.T) {
	semester := semesterWithSlots(
		model.TimeSlot{Day: model.Monday, StartMin: 5 * 60, EndMin: 23 * 60},
	)
	start, end := Bounds(semester)
	if start != EarliestStartMin {
		t.Errorf("start = %d, want clamp %d", start, EarliestStartMin)
	}
	if end != LatestEndMin {
		t.Errorf("end = %d, want clamp %d", end, LatestEndMin)
	}
}

func TestBoundsEmptySemester(t *testing.T) {
	start, end := Bounds(model.Semester{})
	if start != DefaultStartMin || end != DefaultEndMin {
		t.Errorf("Bounds(empty) = %d..%d, want %d..%d", start, end, DefaultStartMin, DefaultEndMin)
	}
}

func TestAssignLanesSeparatesOverlaps(t *testing.T) {
	spans := []Span{
		{StartMin: 10 * 60, EndMin: 12 * 60},
		{StartMin: 11 * 60, EndMin: 13 * 60},
	}
	placements := AssignLanes(spans)
	if placements[0].Lane == placements[1].Lane {
		t.Errorf("overlapping spans share lane %d", placements[0].Lane)
	}
	for i, p := range placements {
		if p.Lanes != 2 {
			t.Errorf("placements[%d].Lanes = %d, want 2", i, p.Lanes)
		}
	}
}

func TestAssignLanesReusesFreeLanes(t *testing.T) {
	spans := []Span{
		{StartMin: 8 * 60, EndMin: 10 * 60},
		{StartMin: 10 * 60, EndMin: 12 * 60}, // back to back, same lane
		{StartMin: 9 * 60, EndMin: 11 * 60},  // overlaps both
	}
	placements := AssignLanes(spans)
	if placements[0].Lane != 0 || placements[1].Lane != 0 {
		t.Errorf("back to back spans got lanes %d and %d, want 0 and 0",
			placements[0].Lane, placements[1].Lane)
	}
	if placements[2].Lane != 1 {
		t.Errorf("overlapping span got lane %d, want 1", placements[2].Lane)
	}
	if placements[0].Lanes != 2 {
		t.Errorf("lane count = %d, want 2", placements[0].Lanes)
	}
}

func TestAssignLanesEmpty(t *testing.T) {
	if got := AssignLanes(nil); len(got) != 0 {
		t.Errorf("AssignLanes(nil) returned %d placements, want 0", len(got))
	}
}
