package schedule

import (
	"weekplanner/internal/model"
	"weekplanner/internal/timegrid"
)

// Block is an event with its computed position on a day column.
type Block struct {
	Event  model.Event
	Offset float64
	Height float64
}

// DayColumn holds one weekday's time-ordered blocks. Overlapping events
// produce overlapping blocks; the layout does not stack them apart.
type DayColumn struct {
	Day    model.Weekday
	Blocks []Block
}

// WeekView projects the events onto seven columns for rendering. rowHeight
// is the pixel height of one hourly row; dense mode doubles the geometry
// to match the half-hour grid.
func WeekView(events []model.Event, rowHeight float64, dense bool) []DayColumn {
	density := 1.0
	if dense {
		density = 2.0
	}
	grouped := ByDay(events)
	columns := make([]DayColumn, 0, len(model.Weekdays))
	for _, day := range model.Weekdays {
		col := DayColumn{Day: day}
		for _, e := range grouped[day] {
			col.Blocks = append(col.Blocks, Block{
				Event:  e,
				Offset: timegrid.BlockOffset(e.Start, rowHeight, density),
				Height: timegrid.BlockHeight(e.Start, e.End, rowHeight, density),
			})
		}
		columns = append(columns, col)
	}
	return columns
}
