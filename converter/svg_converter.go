package converter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/Spyro1/semester-planner/layout"
	"github.com/Spyro1/semester-planner/model"
	"github.com/Spyro1/semester-planner/utils"
)

// SVGConverter renders the whole catalog into a static weekly grid.
// Geometry matches the interactive view: one column per day, hour
// rules, side-by-side lanes for overlapping sections.
type SVGConverter struct{}

const (
	svgPad      = 16
	svgHeaderH  = 32
	svgTimeColW = 64
	svgDayColW  = 196
	svgBlockPad = 5
	svgLaneGap  = 5
	svgPxPerMin = 1.1
)

func (SVGConverter) Write(semester model.Semester, out string) error {
	if out == "" {
		return fmt.Errorf("-out can not be empty")
	}

	name := strings.TrimSuffix(filepath.Base(out), filepath.Ext(out))
	p := buildPayload(semester, name)

	startMin, endMin := p.Meta.StartMin, p.Meta.EndMin
	width := svgPad*2 + svgTimeColW + svgDayColW*len(p.Meta.Days)
	height := svgPad*2 + svgHeaderH + int(float64(endMin-startMin)*svgPxPerMin)

	minuteToY := func(minute int) float64 {
		return float64(svgPad+svgHeaderH) + float64(minute-startMin)*svgPxPerMin
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" font-family="sans-serif">`+"\n", width, height)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="#ffffff"/>`+"\n", width, height)

	x0 := svgPad + svgTimeColW
	yBottom := height - svgPad

	// Day headers and column rules.
	for di, day := range p.Meta.Days {
		x := x0 + di*svgDayColW
		fmt.Fprintf(&sb, `<text x="%d" y="%d" font-size="13" font-weight="600" fill="#374151">%s</text>`+"\n",
			x+8, svgPad+svgHeaderH/2+4, html.EscapeString(day.Label))
		fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#e5e7eb"/>`+"\n", x, svgPad, x, yBottom)
	}

	// Hour rules with clock labels.
	for t := (startMin + 59) / 60 * 60; t <= endMin; t += 60 {
		y := minuteToY(t)
		fmt.Fprintf(&sb, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#d7dbe0"/>`+"\n", svgPad, y, width-svgPad, y)
		fmt.Fprintf(&sb, `<text x="%d" y="%.1f" font-size="12" fill="#6b7280" text-anchor="end">%s</text>`+"\n",
			x0-8, y+4, utils.FormatClock(t))
	}

	// Course blocks, one day column at a time.
	for di, day := range p.Meta.Days {
		var dayCourses []courseEntry
		for _, c := range p.Courses {
			if c.Day == day.Key {
				dayCourses = append(dayCourses, c)
			}
		}

		spans := make([]layout.Span, len(dayCourses))
		for i, c := range dayCourses {
			spans[i] = layout.Span{StartMin: c.StartMin, EndMin: c.EndMin}
		}
		placements := layout.AssignLanes(spans)

		for i, c := range dayCourses {
			place := placements[i]
			usableW := float64(svgDayColW - 2*svgBlockPad)
			laneW := (usableW - float64(svgLaneGap*(place.Lanes-1))) / float64(place.Lanes)
			x := float64(x0+di*svgDayColW+svgBlockPad) + float64(place.Lane)*(laneW+svgLaneGap)
			y := minuteToY(c.StartMin)
			h := minuteToY(c.EndMin) - y

			fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" fill="%s" fill-opacity="0.75" stroke="#6b7280"/>`+"\n",
				x, y, laneW, h, p.subjectColor(c.SubjectCode))
			fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" font-size="12" font-weight="700" fill="#111827">%s</text>`+"\n",
				x+8, y+15, html.EscapeString(fmt.Sprintf("(%s) %s", c.CourseCode, c.SubjectName)))
			fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" font-size="11" fill="#111827">%s</text>`+"\n",
				x+8, y+30, html.EscapeString(fmt.Sprintf("%s %s-%s", c.SubjectCode, utils.FormatClock(c.StartMin), utils.FormatClock(c.EndMin))))
		}
	}

	sb.WriteString("</svg>\n")
	return os.WriteFile(out, []byte(sb.String()), 0644)
}
