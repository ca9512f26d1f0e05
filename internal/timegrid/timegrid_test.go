package timegrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeToRow(t *testing.T) {
	tests := []struct {
		clock string
		row   float64
	}{
		{"07:00", 0},
		{"07:15", 0},
		{"07:30", 0.5},
		{"09:00", 2},
		{"10:30", 3.5},
		{"10:45", 3.5},
		{"21:30", 14.5},
		{"06:45", -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			require.Equal(t, tt.row, TimeToRow(tt.clock))
		})
	}
}

func TestFormatRow(t *testing.T) {
	tests := []struct {
		row   float64
		clock string
	}{
		{0, "07:00"},
		{0.5, "07:30"},
		{2, "09:00"},
		{3.5, "10:30"},
		{14.5, "21:30"},
		// Any non-zero fraction snaps to the half hour.
		{2.25, "09:30"},
		// Hours wrap into 0..23.
		{20, "03:00"},
		{-9, "22:00"},
	}
	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			require.Equal(t, tt.clock, FormatRow(tt.row))
		})
	}
}

func TestRowLabels(t *testing.T) {
	req := require.New(t)

	hourly := RowLabels(false)
	req.Len(hourly, 15)
	req.Equal("07:00", hourly[0])
	req.Equal("21:00", hourly[len(hourly)-1])

	dense := RowLabels(true)
	req.Len(dense, 30)
	req.Equal("07:30", dense[1])
	req.Equal("21:30", dense[len(dense)-1])
}

func TestBlockGeometry(t *testing.T) {
	req := require.New(t)

	req.Equal(96.0, BlockOffset("09:00", 48, 1))
	req.Equal(72.0, BlockHeight("09:00", "10:30", 48, 1))

	// Dense mode doubles the geometry.
	req.Equal(192.0, BlockOffset("09:00", 48, 2))
	req.Equal(144.0, BlockHeight("09:00", "10:30", 48, 2))
}
