package schedule

import (
	"sort"

	"github.com/samber/lo"

	"weekplanner/internal/model"
	"weekplanner/internal/timegrid"
)

// Sort returns the events ordered by weekday then start time. The sort is
// stable, so events in the same slot keep their insertion order.
func Sort(events []model.Event) []model.Event {
	out := make([]model.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day.Index() != out[j].Day.Index() {
			return out[i].Day.Index() < out[j].Day.Index()
		}
		return timegrid.TimeToRow(out[i].Start) < timegrid.TimeToRow(out[j].Start)
	})
	return out
}

// ByDay partitions events into per-day groups, each group time-ordered.
func ByDay(events []model.Event) map[model.Weekday][]model.Event {
	return lo.GroupBy(Sort(events), func(e model.Event) model.Weekday {
		return e.Day
	})
}
