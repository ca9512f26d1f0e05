package model

// Settings holds the display preferences persisted next to the events.
type Settings struct {
	Title           string `json:"title"`
	BackgroundColor string `json:"backgroundColor"`
	AccentColor     string `json:"accentColor"`
	Photo           string `json:"photo"`
	DenseHours      bool   `json:"denseHours"`
}

// DefaultSettings returns the values used when nothing has been saved yet.
func DefaultSettings() Settings {
	return Settings{
		Title:           "Kids Weekly Planner",
		BackgroundColor: "#f8fafc",
		AccentColor:     "#3b82f6",
	}
}

// Snapshot is the full persisted planner state.
type Snapshot struct {
	Events   []Event
	Settings Settings
}
