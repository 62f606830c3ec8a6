package ingest

import (
	"errors"
	"fmt"
	"time"
)

const (
	PhaseAuthors = "authors"
	PhaseWorks   = "works"
)

const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

var (
	// ErrMissingKey is returned for records whose key is absent or empty.
	ErrMissingKey = errors.New("record has no key")
	// ErrAuthorsNotLoaded is returned when the works phase is started
	// without a receipt from a completed authors phase.
	ErrAuthorsNotLoaded = errors.New("works phase requires a completed authors phase")
)

// Run is one execution of the loader, persisted in load_runs.
type Run struct {
	ID          string
	StartedAt   time.Time
	FinishedAt  *time.Time
	Status      string // RUNNING, COMPLETED, FAILED
	AuthorsPath string
	WorksPath   string
	Authors     PhaseStats
	Works       PhaseStats
	Error       string
}

// PhaseStats counts what happened to the lines of one dump.
type PhaseStats struct {
	Read     int
	Upserted int
	Skipped  int
}

// AuthorsLoaded is the receipt of a finished authors phase. Only
// Service.LoadAuthors can produce a valid one; Service.LoadWorks refuses
// to start without it.
type AuthorsLoaded struct {
	Stats PhaseStats
	done  bool
}

// RecordError describes a dump line that was skipped.
type RecordError struct {
	Phase string
	Line  int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s line %d: %v", e.Phase, e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
