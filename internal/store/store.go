// Package store holds the in-memory event collection. It is owned by a
// single execution context; callers serialize access themselves.
package store

import "weekplanner/internal/model"

// Store keeps the events in insertion order plus the display settings.
// It is hydrated once at startup and mutated through the planner.
type Store struct {
	events   []model.Event
	settings model.Settings
}

// New returns an empty store with default settings.
func New() *Store {
	return &Store{settings: model.DefaultSettings()}
}

// Hydrate loads the persisted snapshot into the store.
func (s *Store) Hydrate(snap model.Snapshot) {
	s.events = append([]model.Event(nil), snap.Events...)
	s.settings = snap.Settings
}

// Events returns a copy of the collection in insertion order.
func (s *Store) Events() []model.Event {
	return append([]model.Event(nil), s.events...)
}

// Get looks an event up by id.
func (s *Store) Get(id string) (model.Event, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.events[i], true
	}
	return model.Event{}, false
}

// Len reports the number of stored events.
func (s *Store) Len() int {
	return len(s.events)
}

// Add appends the event. It reports false if the id is already taken.
func (s *Store) Add(e model.Event) bool {
	if s.indexOf(e.ID) >= 0 {
		return false
	}
	s.events = append(s.events, e)
	return true
}

// Update replaces the event with the same id, reporting whether one existed.
func (s *Store) Update(e model.Event) bool {
	i := s.indexOf(e.ID)
	if i < 0 {
		return false
	}
	s.events[i] = e
	return true
}

// Delete removes the event with the given id, reporting whether it existed.
func (s *Store) Delete(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.events = append(s.events[:i], s.events[i+1:]...)
	return true
}

// ReplaceAll swaps the whole collection, discarding everything prior.
func (s *Store) ReplaceAll(events []model.Event) {
	s.events = append([]model.Event(nil), events...)
}

// Settings returns the current display settings.
func (s *Store) Settings() model.Settings {
	return s.settings
}

// SetSettings replaces the display settings.
func (s *Store) SetSettings(settings model.Settings) {
	s.settings = settings
}

// Snapshot captures the full state for persistence.
func (s *Store) Snapshot() model.Snapshot {
	return model.Snapshot{Events: s.Events(), Settings: s.settings}
}

func (s *Store) indexOf(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}
