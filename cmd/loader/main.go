// Command loader bulk-loads the authors and works dumps into the catalog
// store, then exits.
package main

import (
	"context"
	"log"
	"strings"
	"time"

	"greatreads/internal/catalog"
	"greatreads/internal/ingest"
	"greatreads/internal/platform/env"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	env.LoadFiles()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	dbPool := mustOpenDB(cfg.DatabaseDSN)
	defer dbPool.Close()

	store := catalog.NewThrottledRepo(catalog.NewPostgresRepo(dbPool), cfg.StoreOpsPerSecond)
	svc := ingest.NewService(store, ingest.NewPostgresRunRepo(dbPool), ingest.Config{
		AuthorsPath:   cfg.AuthorsPath,
		WorksPath:     cfg.WorksPath,
		ProgressEvery: cfg.ProgressEvery,
		MaxLineBytes:  cfg.MaxLineBytes,
	})

	if err := svc.Run(context.Background()); err != nil {
		dbPool.Close()
		log.Fatalf("load failed: %v", err)
	}
	log.Println("load completed")
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatalf("cannot ping database (%s): %v", redactDSN(dsn), err)
	}
	log.Println("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
