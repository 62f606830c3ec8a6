package main

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

func repoMigrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed")
	// cmd/migrate -> repo root
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "db", "migrations")
}

func TestCollectMigrations_VersionsAreContiguous(t *testing.T) {
	migrations, err := goose.CollectMigrations(repoMigrationsDir(t), 0, goose.MaxVersion)
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	for i, m := range migrations {
		require.Equal(t, int64(i+1), m.Version, "migration %s", m.Source)
	}
}
