// Package planner is the operation surface the UI drives. It owns the
// event store and pushes a full snapshot to persistence after every
// mutation without blocking the caller.
package planner

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"weekplanner/internal/csvio"
	"weekplanner/internal/model"
	"weekplanner/internal/schedule"
	"weekplanner/internal/store"
	"weekplanner/internal/validate"
)

// SnapshotStore persists and restores the full planner state.
type SnapshotStore interface {
	Load(ctx context.Context) model.Snapshot
	Save(ctx context.Context, snap model.Snapshot) error
}

// SaveOutcome reports a committed event plus any same-day events it
// overlaps. Overlaps are advisory; the save has already happened.
type SaveOutcome struct {
	Event        model.Event
	OverlapsWith []model.Event
}

// Planner wires the store, validation and persistence together.
type Planner struct {
	store  *store.Store
	snaps  SnapshotStore
	log    *slog.Logger
	writes chan model.Snapshot
	done   chan struct{}
}

// New hydrates a planner from the snapshot store and starts the
// background persistence writer.
func New(ctx context.Context, snaps SnapshotStore, log *slog.Logger) *Planner {
	p := &Planner{
		store:  store.New(),
		snaps:  snaps,
		log:    log,
		writes: make(chan model.Snapshot, 1),
		done:   make(chan struct{}),
	}
	p.store.Hydrate(snaps.Load(ctx))
	go p.writer()
	return p
}

// AddEvent returns a fresh draft; nothing is stored until SaveEvent.
func (p *Planner) AddEvent() model.Event {
	return model.NewEvent()
}

// EditEvent returns the stored event with the given id.
func (p *Planner) EditEvent(id string) (model.Event, bool) {
	return p.store.Get(id)
}

// SaveEvent validates and commits a candidate, inserting or replacing by
// id. A validation failure aborts the save and leaves the store untouched.
func (p *Planner) SaveEvent(candidate model.Event) (SaveOutcome, error) {
	if err := validate.Event(candidate); err != nil {
		return SaveOutcome{}, err
	}
	if candidate.ID == "" {
		candidate.ID = uuid.NewString()
	}
	overlapping := schedule.Conflicting(p.store.Events(), candidate)
	if !p.store.Update(candidate) {
		p.store.Add(candidate)
	}
	p.persist()
	return SaveOutcome{Event: candidate, OverlapsWith: overlapping}, nil
}

// DeleteEvent removes the event with the given id; unknown ids are a no-op.
func (p *Planner) DeleteEvent(id string) {
	if p.store.Delete(id) {
		p.persist()
	}
}

// Events returns the collection in insertion order.
func (p *Planner) Events() []model.Event {
	return p.store.Events()
}

// ExportCSV renders the schedule in store iteration order.
func (p *Planner) ExportCSV() string {
	return csvio.Export(p.store.Events())
}

// ImportCSV replaces the whole schedule with the parsed file contents and
// reports how many events were loaded. Imported rows are trusted as
// already valid, so save-time validation is not re-run. A parse failure
// leaves the store unchanged.
func (p *Planner) ImportCSV(contents string) (int, error) {
	events, err := csvio.Import(contents)
	if err != nil {
		return 0, err
	}
	p.store.ReplaceAll(events)
	p.persist()
	return len(events), nil
}

// Settings returns the current display settings.
func (p *Planner) Settings() model.Settings {
	return p.store.Settings()
}

// SetDisplaySettings replaces the display settings.
func (p *Planner) SetDisplaySettings(settings model.Settings) {
	p.store.SetSettings(settings)
	p.persist()
}

// WeekView projects the schedule onto seven columns for rendering.
func (p *Planner) WeekView(rowHeight float64) []schedule.DayColumn {
	return schedule.WeekView(p.store.Events(), rowHeight, p.store.Settings().DenseHours)
}

// Close stops the persistence writer after draining any queued write.
func (p *Planner) Close() {
	close(p.writes)
	<-p.done
}

// persist queues a full-snapshot write. The queue holds one snapshot; a
// newer one displaces a queued unwritten one, which is safe because every
// write carries the entire state.
func (p *Planner) persist() {
	snap := p.store.Snapshot()
	for {
		select {
		case p.writes <- snap:
			return
		default:
			select {
			case <-p.writes:
			default:
			}
		}
	}
}

func (p *Planner) writer() {
	defer close(p.done)
	for snap := range p.writes {
		if err := p.snaps.Save(context.Background(), snap); err != nil {
			// Best effort: a failed write is dropped, never retried.
			p.log.Debug("snapshot write failed", "err", err)
		}
	}
}
