// Package schedule orders events for rendering and flags overlapping slots.
package schedule

import (
	"math"

	"github.com/samber/lo"

	"weekplanner/internal/model"
	"weekplanner/internal/timegrid"
)

// Overlaps reports whether two events occupy intersecting time on the same
// day. Spans are half-open, so back-to-back slots do not overlap.
func Overlaps(a, b model.Event) bool {
	if a.Day != b.Day {
		return false
	}
	startA, endA := timegrid.TimeToRow(a.Start), timegrid.TimeToRow(a.End)
	startB, endB := timegrid.TimeToRow(b.Start), timegrid.TimeToRow(b.End)
	return math.Max(startA, startB) < math.Min(endA, endB)
}

// Conflicting returns the events the candidate overlaps, excluding itself.
// An overlap is advisory only; it never blocks a save.
func Conflicting(events []model.Event, candidate model.Event) []model.Event {
	return lo.Filter(events, func(e model.Event, _ int) bool {
		return e.ID != candidate.ID && Overlaps(e, candidate)
	})
}
