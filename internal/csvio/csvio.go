// Package csvio is the tabular interchange codec for the schedule.
package csvio

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"weekplanner/internal/model"
)

// ExportFilename is the fixed name offered when saving an export.
const ExportFilename = "weekly-planner.csv"

// columns is the fixed export column order. Import maps by header name
// instead, so reordered files still load.
var columns = []string{"title", "day", "start", "end", "category", "color", "notes"}

// Export renders the events as CSV in the order given, one row per event,
// every field quoted with internal quotes doubled.
func Export(events []model.Event) string {
	var b strings.Builder
	writeRow(&b, columns)
	for _, e := range events {
		writeRow(&b, []string{e.Title, string(e.Day), e.Start, e.End, e.Category, e.Color, e.Notes})
	}
	return b.String()
}

// Import parses CSV text into fresh events. Columns are matched by header
// name; a missing column fills its field with the zero value and unknown
// columns are ignored. Any parse error aborts the whole import. Imported
// ids are never kept; every record gets a new one.
func Import(contents string) ([]model.Event, error) {
	reader := csv.NewReader(strings.NewReader(contents))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse csv: missing header row")
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	events := make([]model.Event, 0, len(rows)-1)
	for _, row := range rows[1:] {
		events = append(events, model.Event{
			ID:       uuid.NewString(),
			Title:    field(row, index, "title"),
			Day:      coerceDay(field(row, index, "day")),
			Start:    field(row, index, "start"),
			End:      field(row, index, "end"),
			Category: field(row, index, "category"),
			Color:    field(row, index, "color"),
			Notes:    field(row, index, "notes"),
		})
	}
	return events, nil
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func field(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func coerceDay(s string) model.Weekday {
	if day, ok := model.ParseWeekday(s); ok {
		return day
	}
	return model.Monday
}
