package database

import (
	"embed"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// registers the pgx5:// database scheme
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// migrationsFromSource returns a migration source driver from the embedded migrations.
func migrationsFromSource() source.Driver {
	d, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		panic(err)
	}
	return d
}

// Migrator is the interface for the migration tooling.
type Migrator interface {
	Up() error
	Down() error
	Steps(int) error
	Version() (uint, bool, error)
	Close() (error, error)
}

// NewFromConnectionString returns a new migration instance from the given
// postgres:// connection string.
func NewFromConnectionString(connString string) (Migrator, error) {
	d := migrationsFromSource()
	return migrate.NewWithSourceInstance("iofs", d, migrateURL(connString))
}

// migrateURL switches a postgres URL to the scheme of the pgx v5 driver
func migrateURL(connString string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(connString, scheme); ok {
			return "pgx5://" + rest
		}
	}
	return connString
}
