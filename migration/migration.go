package migration

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose"
)

// Run ... migrates the schema up to the latest version
func Run(db *sql.DB, dialect, dir string) error {
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("unsupported migration dialect %s : %s", dialect, err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("error with DB Migration : %s", err)
	}
	return nil
}
