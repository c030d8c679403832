package converter

import (
	"fmt"
	"os"
	"strings"

	"github.com/Spyro1/semester-planner/model"
)

// TextConverter dumps the catalog as plain text, one subject header
// followed by one line per section. An empty out writes to stdout.
type TextConverter struct{}

func (TextConverter) Write(semester model.Semester, out string) error {
	var sb strings.Builder
	for _, subject := range semester {
		fmt.Fprintf(&sb, "Subject: %s (%s, %d credits)\n", subject.Name, subject.Code, subject.Credits)
		for _, course := range subject.Courses {
			fmt.Fprintf(&sb, "Course %s at %s\n", course.Code, course.SlotsString())
		}
	}

	if out == "" {
		_, err := os.Stdout.WriteString(sb.String())
		return err
	}
	return os.WriteFile(out, []byte(sb.String()), 0644)
}
