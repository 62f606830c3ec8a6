// Command migrate manages the catalog store schema.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"greatreads/internal/platform/env"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, check, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	env.LoadFiles()
	dsn := env.Get("DB_DSN", defaultDSN)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set dialect: %v", err)
	}

	dir := migrationsDir()

	switch *command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		fmt.Println("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			log.Fatalf("Failed to rollback migrations: %v", err)
		}
		fmt.Println("Migrations rolled back successfully")
	case "status":
		if err := goose.Status(db, dir); err != nil {
			log.Fatalf("Failed to check migration status: %v", err)
		}
	case "check":
		missing, err := missingTables(ctx, db)
		if err != nil {
			log.Fatalf("Failed to check loader tables: %v", err)
		}
		if len(missing) > 0 {
			log.Fatalf("Loader tables missing: %s (run -command up)", strings.Join(missing, ", "))
		}
		fmt.Printf("Loader tables present: %s\n", strings.Join(loaderTables, ", "))
	case "create":
		if *name == "" {
			log.Fatal("Name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			log.Fatalf("Failed to create migration: %v", err)
		}
		fmt.Printf("Migration created: %s\n", *name)
	default:
		log.Fatalf("Unknown command: %s. Use: up, down, status, check, create", *command)
	}
}
