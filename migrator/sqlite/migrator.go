package sqlite

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
	log "github.com/sirupsen/logrus"
)

const migrationsDir = "sql"

//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate applies the embedded lookup-history migrations. Already applied
// versions are skipped.
func Migrate(db *sql.DB) error {
	files, err := fs.Glob(SqlFiles, migrationsDir+"/*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}

	m := sqlmigrator.New(db, darwin.SqliteDialect{})
	if err := m.Migrate(SqlFiles, migrationsDir); err != nil {
		return fmt.Errorf("failed to migrate lookup history: %w", err)
	}

	log.WithField("files", len(files)).Debug("lookup history schema up to date")
	return nil
}
