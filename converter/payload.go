package converter

import (
	"fmt"
	"sort"

	"github.com/Spyro1/semester-planner/layout"
	"github.com/Spyro1/semester-planner/model"
)

// Subject colors, stable across runs.
var palette = []string{
	"#4E79A7",
	"#F28E2B",
	"#E15759",
	"#76B7B2",
	"#59A14F",
	"#EDC948",
	"#B07AA1",
	"#FF9DA7",
	"#9C755F",
	"#BAB0AC",
}

// courseEntry is one flattened section occurrence, one per time slot.
type courseEntry struct {
	ID             string `json:"id"`
	SubjectCode    string `json:"subjectCode"`
	SubjectName    string `json:"subjectName"`
	SubjectCredits int    `json:"subjectCredits"`
	CourseCode     string `json:"courseCode"`
	Day            string `json:"day"`
	StartMin       int    `json:"startMin"`
	EndMin         int    `json:"endMin"`
	TimeStr        string `json:"timeStr"`
}

type subjectEntry struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
	Color   string `json:"color"`
}

type dayEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type payloadMeta struct {
	Source   string     `json:"source"`
	StartMin int        `json:"startMin"`
	EndMin   int        `json:"endMin"`
	Days     []dayEntry `json:"days"`
}

type payload struct {
	Meta     payloadMeta             `json:"meta"`
	Subjects map[string]subjectEntry `json:"subjects"`
	Courses  []courseEntry           `json:"courses"`
}

// buildPayload flattens the semester for the renderers: subjects keyed
// by code with a stable palette color, section occurrences sorted by
// day, time and codes so the output is deterministic.
func buildPayload(semester model.Semester, sourceName string) payload {
	subjects := make(map[string]subjectEntry, len(semester))
	var courses []courseEntry

	for i, subject := range semester {
		subjects[subject.Code] = subjectEntry{
			Code:    subject.Code,
			Name:    subject.Name,
			Credits: subject.Credits,
			Color:   palette[i%len(palette)],
		}

		n := 0
		for _, course := range subject.Courses {
			for _, slot := range course.Slots {
				courses = append(courses, courseEntry{
					ID:             fmt.Sprintf("%s__%s__%d", subject.Code, course.Code, n),
					SubjectCode:    subject.Code,
					SubjectName:    subject.Name,
					SubjectCredits: subject.Credits,
					CourseCode:     course.Code,
					Day:            slot.Day,
					StartMin:       slot.StartMin,
					EndMin:         slot.EndMin,
					TimeStr:        slot.String(),
				})
				n++
			}
		}
	}

	sort.SliceStable(courses, func(a, b int) bool {
		ca, cb := courses[a], courses[b]
		if da, db := model.DayIndex(ca.Day), model.DayIndex(cb.Day); da != db {
			return da < db
		}
		if ca.StartMin != cb.StartMin {
			return ca.StartMin < cb.StartMin
		}
		if ca.EndMin != cb.EndMin {
			return ca.EndMin < cb.EndMin
		}
		if ca.SubjectCode != cb.SubjectCode {
			return ca.SubjectCode < cb.SubjectCode
		}
		return ca.CourseCode < cb.CourseCode
	})

	startMin, endMin := layout.Bounds(semester)

	days := make([]dayEntry, 0, len(model.DaysOfWeek))
	for _, day := range model.DaysOfWeek {
		days = append(days, dayEntry{Key: day, Label: day})
	}

	return payload{
		Meta: payloadMeta{
			Source:   sourceName,
			StartMin: startMin,
			EndMin:   endMin,
			Days:     days,
		},
		Subjects: subjects,
		Courses:  courses,
	}
}

func (p payload) subjectColor(code string) string {
	if sub, ok := p.Subjects[code]; ok {
		return sub.Color
	}
	return "#6b7280"
}
