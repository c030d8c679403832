package model

import "strings"

// Course is one schedulable section of a subject.
type Course struct {
	Code  string     `json:"code"`  //Section code
	Slots []TimeSlot `json:"slots"` //Weekly occurrences
}

// SlotsString renders the section slots in the wire format, several
// slots joined with ";".
func (c Course) SlotsString() string {
	parts := make([]string, 0, len(c.Slots))
	for _, slot := range c.Slots {
		parts = append(parts, slot.String())
	}
	return strings.Join(parts, ";")
}

// Subject is a course unit with its candidate sections.
type Subject struct {
	Name    string   `json:"name"`    //Full subject name
	Code    string   `json:"code"`    //Subject code
	Credits int      `json:"credits"` //Credit count
	Courses []Course `json:"courses"` //Candidate sections, input order
}

// Semester is the whole parsed catalog.
type Semester []Subject

// Slots returns every time slot of every section in the semester.
func (s Semester) Slots() []TimeSlot {
	var slots []TimeSlot
	for _, subject := range s {
		for _, course := range subject.Courses {
			slots = append(slots, course.Slots...)
		}
	}
	return slots
}
