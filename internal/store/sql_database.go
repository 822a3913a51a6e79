package store

import (
	"github.com/fieldtrack/syncserver/migrations"
)

// Migrate applies all pending goose migrations to the connected database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
