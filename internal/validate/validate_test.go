package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"weekplanner/internal/model"
)

func valid() model.Event {
	return model.Event{
		ID:    "e1",
		Title: "Piano",
		Day:   model.Tuesday,
		Start: "15:00",
		End:   "16:00",
		Color: "#60a5fa",
	}
}

func TestEventAcceptsValidCandidate(t *testing.T) {
	require.NoError(t, Event(valid()))
}

func TestEventRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Event)
		want   error
	}{
		{"empty title", func(e *model.Event) { e.Title = "" }, ErrMissingTitle},
		{"blank title", func(e *model.Event) { e.Title = "   " }, ErrMissingTitle},
		{"unknown day", func(e *model.Event) { e.Day = "Someday" }, ErrInvalidDay},
		{"start after end", func(e *model.Event) { e.Start, e.End = "10:00", "09:00" }, ErrInvalidTimeRange},
		{"zero length", func(e *model.Event) { e.Start, e.End = "10:00", "10:00" }, ErrInvalidTimeRange},
		{"unpadded hour", func(e *model.Event) { e.Start = "9:00" }, ErrInvalidTime},
		{"non-numeric time", func(e *model.Event) { e.End = "aa:bb" }, ErrInvalidTime},
		{"hour out of range", func(e *model.Event) { e.Start = "24:00" }, ErrInvalidTime},
		{"minute out of range", func(e *model.Event) { e.End = "10:61" }, ErrInvalidTime},
		{"bad color", func(e *model.Event) { e.Color = "blue" }, ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := valid()
			tt.mutate(&candidate)
			require.ErrorIs(t, Event(candidate), tt.want)
		})
	}
}

func TestEventAllowsEmptyOptionalFields(t *testing.T) {
	candidate := valid()
	candidate.Category = ""
	candidate.Color = ""
	candidate.Notes = ""
	require.NoError(t, Event(candidate))
}
