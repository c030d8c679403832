package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Spyro1/semester-planner/config"
	"github.com/Spyro1/semester-planner/model"
	"github.com/Spyro1/semester-planner/utils"
)

// Row layout shared by the CSV and XLSX catalogs:
// Subject_name,subject_code,Credits,Course_code_1,Course_time_1,...

func rowBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// recordsToSemester turns raw catalog rows into the semester model.
// Blank rows are skipped; any malformed cell aborts with an error
// naming the offending row.
func recordsToSemester(records [][]string, cfg config.ParserConfig) (error, model.Semester) {
	semester := model.Semester{}
	for i, row := range records {
		if rowBlank(row) {
			continue
		}
		subject, err := subjectFromRow(row, i+1, cfg)
		if err != nil {
			return err, nil
		}
		if subject != nil {
			semester = append(semester, *subject)
		}
	}
	return nil, semester
}

// subjectFromRow builds one subject from a catalog row. line is the
// 1-based row number used in error messages. A nil subject with a nil
// error means the row was filtered out by the config matchers.
func subjectFromRow(row []string, line int, cfg config.ParserConfig) (*model.Subject, error) {
	if len(row) < 3 {
		return nil, fmt.Errorf("row %d: want at least subject name, code and credits, got %d columns", line, len(row))
	}

	name := utils.RemoveSpaces(strings.TrimSpace(row[0]))
	code := strings.TrimSpace(row[1])
	credits, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return nil, fmt.Errorf("row %d: bad credit count %q", line, strings.TrimSpace(row[2]))
	}

	if !cfg.MatchSubject(code, name) {
		return nil, nil
	}

	subject := &model.Subject{Name: name, Code: code, Credits: credits}

	sawCourse := false
	for i := 3; i < len(row); i += 2 {
		courseCode := strings.TrimSpace(utils.GetOrString(row, i, ""))
		courseTime := strings.TrimSpace(utils.GetOrString(row, i+1, ""))
		if courseCode == "" && courseTime == "" {
			continue
		}
		if courseCode == "" || courseTime == "" {
			return nil, fmt.Errorf("row %d: course code %q and time %q do not pair up", line, courseCode, courseTime)
		}
		sawCourse = true

		if !cfg.CourseMatcher.Match(courseCode) {
			continue
		}

		course := model.Course{Code: courseCode}
		for _, rawSlot := range strings.Split(courseTime, ";") {
			slot, err := model.ParseTimeSlot(rawSlot)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", line, err)
			}
			if !cfg.DayMatcher.Match(slot.Day) {
				continue
			}
			course.Slots = append(course.Slots, slot)
		}
		// A section whose every slot fell to the day filter is gone.
		if len(course.Slots) == 0 {
			continue
		}
		subject.Courses = append(subject.Courses, course)
	}

	// Filters swallowed every section of the subject.
	if sawCourse && len(subject.Courses) == 0 {
		return nil, nil
	}

	return subject, nil
}
