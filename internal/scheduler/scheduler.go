package scheduler

import (
	"fmt"
	"log"

	"CozyFishing/internal/model"
	"CozyFishing/internal/progress"

	"github.com/robfig/cron/v3"
)

// Saver is the progression state the periodic jobs persist.
type Saver interface {
	Flush() error
	Export() model.Snapshot
}

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Store     Saver
	BackupDir string
	Keep      int
	// Notify, when set, receives a short line after each backup.
	Notify func(text string)
}

// NewScheduler creates a new Scheduler.
func NewScheduler(store Saver, backupDir string, keep int) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Store:     store,
		BackupDir: backupDir,
		Keep:      keep,
	}
}

// RegisterAll registers the autosave and backup tasks.
func (s *Scheduler) RegisterAll(autosaveCron, backupCron string) error {
	if _, err := s.Cron.AddFunc(autosaveCron, s.autosaveTask); err != nil {
		return fmt.Errorf("register autosave task: %w", err)
	}
	if backupCron != "" && s.BackupDir != "" {
		if _, err := s.Cron.AddFunc(backupCron, s.backupTask); err != nil {
			return fmt.Errorf("register backup task: %w", err)
		}
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// SaveNow flushes pending progress immediately (used on shutdown).
func (s *Scheduler) SaveNow() error {
	if err := s.Store.Flush(); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// BackupNow writes a backup immediately and returns its path.
func (s *Scheduler) BackupNow() (string, error) {
	return progress.Backup(s.BackupDir, s.Store.Export(), s.Keep)
}

func (s *Scheduler) autosaveTask() {
	if err := s.Store.Flush(); err != nil {
		log.Printf("[ERROR] autosave: %v", err)
	}
}

func (s *Scheduler) backupTask() {
	log.Println("[INFO] running backup task")
	p, err := s.BackupNow()
	if err != nil {
		log.Printf("[ERROR] backup: %v", err)
		return
	}
	log.Printf("[INFO] backup written: %s", p)
	if s.Notify != nil {
		s.Notify("Progress backed up.")
	}
}
