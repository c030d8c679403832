package converter

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/Spyro1/semester-planner/model"
)

// HTMLConverter writes a self-contained interactive timetable page:
// the flattened catalog is embedded as JSON and a canvas script draws
// the grid, with subject toggles, click-to-select sections and a PNG
// export of the selected schedule.
type HTMLConverter struct{}

var pageTemplate = template.Must(template.New("timetable").Parse(timetablePage))

func (HTMLConverter) Write(semester model.Semester, out string) error {
	if out == "" {
		return fmt.Errorf("-out can not be empty")
	}

	name := strings.TrimSuffix(filepath.Base(out), filepath.Ext(out))
	raw, err := json.Marshal(buildPayload(semester, name))
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	return pageTemplate.Execute(f, template.JS(raw))
}
