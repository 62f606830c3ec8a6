package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationsDir(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")
	assert.Equal(t, "db/migrations", migrationsDir())

	t.Setenv("MIGRATIONS_DIR", "/srv/greatreads/migrations")
	assert.Equal(t, "/srv/greatreads/migrations", migrationsDir())
}
