package main

import (
	"context"
	"database/sql"
	"fmt"
)

// missingTables returns the loader tables not present in the connected database.
func missingTables(ctx context.Context, db *sql.DB) ([]string, error) {
	var missing []string
	for _, table := range loaderTables {
		var exists bool
		if err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", table).Scan(&exists); err != nil {
			return nil, fmt.Errorf("check table %s: %w", table, err)
		}
		if !exists {
			missing = append(missing, table)
		}
	}
	return missing, nil
}
