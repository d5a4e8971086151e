package database

import (
	"context"
	"io/fs"
	"testing"

	"kidsedu/database/migrations"
	"kidsedu/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@host:5432/db", MigrateURL("postgres://u:p@host:5432/db"))
	assert.Equal(t, "pgx5://u:p@host/db?sslmode=require", MigrateURL("postgresql://u:p@host/db?sslmode=require"))
	assert.Equal(t, "pgx5://already", MigrateURL("pgx5://already"))
}

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	assert.Contains(t, names, "000001_create_vocabulary_items.up.sql")
	assert.Contains(t, names, "000001_create_vocabulary_items.down.sql")
}

func TestRollbackMigrations_RejectsNonPositiveSteps(t *testing.T) {
	assert.Error(t, RollbackMigrations("postgres://localhost/db", 0))
}

func TestNewSQLXPostgresDB_EmptyURL(t *testing.T) {
	db, err := NewSQLXPostgresDB(context.Background(), config.DatabaseConfig{})
	assert.Nil(t, db)
	assert.Error(t, err)
}
