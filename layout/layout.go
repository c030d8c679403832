// Package layout holds the time-grid geometry shared by the renderers:
// the vertical extent of the week grid and the lane assignment that
// spreads overlapping course blocks side by side within a day column.
package layout

import (
	"sort"

	"github.com/Spyro1/semester-planner/model"
)

// Grid limits, minutes since midnight.
const (
	DefaultStartMin  = 8 * 60
	DefaultEndMin    = 20 * 60
	EarliestStartMin = 6 * 60
	LatestEndMin     = 22 * 60
)

// Bounds derives the vertical extent of the grid from the parsed
// slots: min(start)..max(end) over the whole semester, padded outward
// to whole hours and clamped to 06:00-22:00. An empty semester gets
// the 08:00-20:00 default.
func Bounds(semester model.Semester) (startMin, endMin int) {
	slots := semester.Slots()
	if len(slots) == 0 {
		return DefaultStartMin, DefaultEndMin
	}

	startMin = slots[0].StartMin
	endMin = slots[0].EndMin
	for _, slot := range slots[1:] {
		if slot.StartMin < startMin {
			startMin = slot.StartMin
		}
		if slot.EndMin > endMin {
			endMin = slot.EndMin
		}
	}

	startMin = startMin / 60 * 60
	endMin = (endMin + 59) / 60 * 60

	if startMin < EarliestStartMin {
		startMin = EarliestStartMin
	}
	if endMin > LatestEndMin {
		endMin = LatestEndMin
	}
	if endMin <= startMin {
		endMin = startMin + 60
	}
	return startMin, endMin
}

// Span is a block to place into one day column.
type Span struct {
	StartMin int
	EndMin   int
}

// Placement is the horizontal position assigned to a span: its lane
// and the column's total lane count.
type Placement struct {
	Lane  int
	Lanes int
}

// AssignLanes spreads overlapping spans of one day column side by side
// with greedy interval partitioning: spans are visited in start order
// and each takes the first lane that is already free at its start.
// The returned slice is indexed like the input.
func AssignLanes(spans []Span) []Placement {
	order := make([]int, len(spans))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := spans[order[a]], spans[order[b]]
		if sa.StartMin != sb.StartMin {
			return sa.StartMin < sb.StartMin
		}
		return sa.EndMin < sb.EndMin
	})

	placements := make([]Placement, len(spans))
	var laneEnds []int // end of the last span placed in each lane
	for _, idx := range order {
		span := spans[idx]
		lane := -1
		for i, end := range laneEnds {
			if span.StartMin >= end {
				lane = i
				break
			}
		}
		if lane == -1 {
			laneEnds = append(laneEnds, span.EndMin)
			lane = len(laneEnds) - 1
		} else {
			laneEnds[lane] = span.EndMin
		}
		placements[idx] = Placement{Lane: lane}
	}

	lanes := len(laneEnds)
	if lanes == 0 {
		lanes = 1
	}
	for i := range placements {
		placements[i].Lanes = lanes
	}
	return placements
}
