package ingest

import (
	"context"
	"fmt"
	"log"
	"time"

	"greatreads/internal/catalog"
	"greatreads/internal/dump"

	"github.com/google/uuid"
)

type Config struct {
	AuthorsPath   string
	WorksPath     string
	ProgressEvery int
	MaxLineBytes  int
}

type Service struct {
	store   catalog.Repository
	runRepo RunRepository
	cfg     Config
}

func NewService(store catalog.Repository, runRepo RunRepository, cfg Config) *Service {
	return &Service{
		store:   store,
		runRepo: runRepo,
		cfg:     cfg,
	}
}

// Run loads the authors dump and then the works dump. The works phase only
// starts once the authors phase has completed, since work rows capture
// author names at upsert time.
func (s *Service) Run(ctx context.Context) (err error) {
	run := &Run{
		ID:          uuid.New().String(),
		Status:      StatusRunning,
		AuthorsPath: s.cfg.AuthorsPath,
		WorksPath:   s.cfg.WorksPath,
		StartedAt:   time.Now(),
	}
	if rErr := s.runRepo.CreateRun(ctx, run); rErr != nil {
		return fmt.Errorf("create load run %s: %w", run.ID, rErr)
	}

	defer func() {
		now := time.Now()
		run.FinishedAt = &now
		if err != nil {
			run.Error = err.Error()
			run.Status = StatusFailed
		} else {
			run.Status = StatusCompleted
		}
		if updateErr := s.runRepo.UpdateRun(ctx, run); updateErr != nil {
			log.Printf("Failed to update load run %s: %v", run.ID, updateErr)
		}
		log.Printf("load run=%s status=%s duration=%s", run.ID, run.Status, now.Sub(run.StartedAt).Round(time.Millisecond))
	}()

	authors, err := s.LoadAuthors(ctx, s.cfg.AuthorsPath)
	run.Authors = authors.Stats
	if err != nil {
		return err
	}

	run.Works, err = s.LoadWorks(ctx, s.cfg.WorksPath, authors)
	return err
}

// LoadAuthors upserts every author in the dump at path.
func (s *Service) LoadAuthors(ctx context.Context, path string) (AuthorsLoaded, error) {
	stats, err := s.load(ctx, PhaseAuthors, path, func(ctx context.Context, rec dump.Record) error {
		author, err := ParseAuthor(rec)
		if err != nil {
			return err
		}
		return s.store.UpsertAuthor(ctx, author)
	})
	if err != nil {
		return AuthorsLoaded{Stats: stats}, err
	}
	return AuthorsLoaded{Stats: stats, done: true}, nil
}

// LoadWorks upserts every work in the dump at path, resolving author names
// against the author store as each record is processed.
func (s *Service) LoadWorks(ctx context.Context, path string, authors AuthorsLoaded) (PhaseStats, error) {
	if !authors.done {
		return PhaseStats{}, ErrAuthorsNotLoaded
	}
	return s.load(ctx, PhaseWorks, path, func(ctx context.Context, rec dump.Record) error {
		work, err := ParseWork(rec)
		if err != nil {
			return err
		}
		work.AuthorNames, err = ResolveAuthorNames(ctx, s.store, work.AuthorIDs)
		if err != nil {
			return err
		}
		return s.store.UpsertWork(ctx, work)
	})
}

// load feeds each non-blank line of the dump to persist. A line that fails
// to parse or persist is logged and skipped; only I/O errors on the dump
// itself and context cancellation end the phase early.
func (s *Service) load(ctx context.Context, phase, path string, persist func(context.Context, dump.Record) error) (PhaseStats, error) {
	var stats PhaseStats

	f, err := dump.Open(path)
	if err != nil {
		log.Printf("ingest phase=%s fatal err=%v", phase, err)
		return stats, err
	}
	defer f.Close()

	log.Printf("ingest phase=%s path=%s started", phase, path)
	start := time.Now()

	scanner := dump.NewScanner(f, s.cfg.MaxLineBytes)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		stats.Read++

		if err := s.loadLine(ctx, line, persist); err != nil {
			stats.Skipped++
			log.Printf("ingest skipped: %v", &RecordError{Phase: phase, Line: scanner.Line(), Err: err})
		} else {
			stats.Upserted++
		}

		if s.cfg.ProgressEvery > 0 && stats.Read%s.cfg.ProgressEvery == 0 {
			log.Printf("ingest phase=%s read=%d upserted=%d skipped=%d", phase, stats.Read, stats.Upserted, stats.Skipped)
		}
	}
	if err := scanner.Err(); err != nil {
		err = fmt.Errorf("%s dump %s: %w", phase, path, err)
		log.Printf("ingest phase=%s fatal err=%v", phase, err)
		return stats, err
	}

	log.Printf("ingest phase=%s done read=%d upserted=%d skipped=%d duration=%s",
		phase, stats.Read, stats.Upserted, stats.Skipped, time.Since(start).Round(time.Millisecond))
	return stats, nil
}

func (s *Service) loadLine(ctx context.Context, line []byte, persist func(context.Context, dump.Record) error) error {
	rec, err := dump.ParseLine(line)
	if err != nil {
		return err
	}
	return persist(ctx, rec)
}
