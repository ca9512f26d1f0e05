package model

import "github.com/google/uuid"

// Event represents a single slot on the weekly grid.
type Event struct {
	ID       string  `json:"id"`
	Title    string  `json:"title" validate:"notblank"`
	Day      Weekday `json:"day" validate:"oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Start    string  `json:"start" validate:"clocktime"`
	End      string  `json:"end" validate:"clocktime"`
	Category string  `json:"category"`
	Color    string  `json:"color" validate:"omitempty,hexcolor"`
	Notes    string  `json:"notes"`
}

// NewEvent returns a draft with a fresh id and default slot values.
// The draft is not part of any store until it is saved.
func NewEvent() Event {
	return Event{
		ID:    uuid.NewString(),
		Day:   Monday,
		Start: "09:00",
		End:   "10:00",
		Color: "#60a5fa",
	}
}
