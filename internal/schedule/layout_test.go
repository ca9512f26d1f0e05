package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"weekplanner/internal/model"
)

func TestWeekViewGeometry(t *testing.T) {
	req := require.New(t)

	events := []model.Event{
		slot("math", model.Monday, "09:00", "10:30"),
		slot("gym", model.Wednesday, "07:00", "08:00"),
	}

	columns := WeekView(events, 48, false)
	req.Len(columns, 7)
	req.Equal(model.Monday, columns[0].Day)

	math := columns[0].Blocks[0]
	req.Equal(96.0, math.Offset)
	req.Equal(72.0, math.Height)

	gym := columns[2].Blocks[0]
	req.Equal(0.0, gym.Offset)
	req.Equal(48.0, gym.Height)

	// Days without events still get an empty column.
	req.Empty(columns[6].Blocks)
}

func TestWeekViewDenseDoublesGeometry(t *testing.T) {
	req := require.New(t)

	columns := WeekView([]model.Event{
		slot("math", model.Monday, "09:00", "10:30"),
	}, 48, true)

	block := columns[0].Blocks[0]
	req.Equal(192.0, block.Offset)
	req.Equal(144.0, block.Height)
}

func TestWeekViewKeepsOverlappingBlocks(t *testing.T) {
	req := require.New(t)

	columns := WeekView([]model.Event{
		slot("homework", model.Monday, "16:00", "17:00"),
		slot("snack", model.Monday, "16:30", "17:00"),
	}, 48, false)

	// Both blocks render; no collision-avoidance stacking.
	req.Len(columns[0].Blocks, 2)
	req.Equal("homework", columns[0].Blocks[0].Event.ID)
	req.Equal("snack", columns[0].Blocks[1].Event.ID)
}
