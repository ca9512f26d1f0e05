package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// Exporter provides the CSV rendition of the current schedule.
type Exporter interface {
	ExportCSV() string
}

// BackupService writes periodic CSV copies of the schedule via cron jobs.
type BackupService struct {
	cron     *cron.Cron
	exporter Exporter
	dir      string
	log      *slog.Logger
}

func NewBackupService(exporter Exporter, dir string, log *slog.Logger) *BackupService {
	return &BackupService{
		cron:     cron.New(cron.WithSeconds()),
		exporter: exporter,
		dir:      dir,
		log:      log,
	}
}

// ScheduleInterval registers a backup every given duration.
func (s *BackupService) ScheduleInterval(interval time.Duration) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("interval must be positive")
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	spec := fmt.Sprintf("@every %ds", seconds)
	return s.cron.AddFunc(spec, s.backup)
}

func (s *BackupService) Start() {
	s.cron.Start()
}

func (s *BackupService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// backup writes one timestamped CSV file. Failures are logged and the next
// run tries again; there is no retry within a run.
func (s *BackupService) backup() {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Error("create backup dir", "dir", s.dir, "err", err)
		return
	}
	name := fmt.Sprintf("schedule-%s.csv", time.Now().Format("2006-01-02T15-04-05"))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(s.exporter.ExportCSV()), 0o644); err != nil {
		s.log.Error("write backup", "path", path, "err", err)
		return
	}
	s.log.Info("schedule backed up", "path", path)
}
