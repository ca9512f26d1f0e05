// Package timegrid converts between HH:MM clock strings and the fractional
// row coordinate events occupy on the weekly grid.
package timegrid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// StartHour is the first hour shown on the grid.
	StartHour = 7
	// Hours is the number of hours the grid spans (07:00 up to 22:00).
	Hours = 15
	// DefaultRowHeight is the rendered height of one hourly row in pixels.
	DefaultRowHeight = 48.0
)

// TimeToRow converts an "HH:MM" clock string to a fractional grid row,
// counted in hours from StartHour. Minutes snap down to the half hour.
// The input must already be validated; garbage parses as zero fields.
func TimeToRow(clock string) float64 {
	hour, minute := splitClock(clock)
	row := float64(hour - StartHour)
	if minute >= 30 {
		row += 0.5
	}
	return row
}

// FormatRow renders a grid row back as an "HH:MM" label. The whole part
// maps to the hour wrapped into 0..23; any fraction renders as ":30".
func FormatRow(row float64) string {
	hour := (int(math.Floor(row))+StartHour)%24 + 24
	hour %= 24
	minute := 0
	if row != math.Floor(row) {
		minute = 30
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// RowLabels returns the time labels down the left edge of the grid,
// hourly by default, every half hour in dense mode.
func RowLabels(dense bool) []string {
	step := 1.0
	if dense {
		step = 0.5
	}
	var labels []string
	for row := 0.0; row < Hours; row += step {
		labels = append(labels, FormatRow(row))
	}
	return labels
}

// BlockOffset returns the vertical pixel offset of an event starting at the
// given time, for row height r and density multiplier d (1 hourly, 2 dense).
func BlockOffset(start string, r, d float64) float64 {
	return TimeToRow(start) * r * d
}

// BlockHeight returns the rendered pixel height of the span start..end.
func BlockHeight(start, end string, r, d float64) float64 {
	return (TimeToRow(end) - TimeToRow(start)) * r * d
}

func splitClock(clock string) (hour, minute int) {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, 0
	}
	hour, _ = strconv.Atoi(h)
	minute, _ = strconv.Atoi(m)
	return hour, minute
}
