package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20261018101000, Down20261018101000)
}

func Up20261018101000(tx *sql.Tx) error {
	// profiles are keyed by the auth provider uid, not a generated uuid
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS users (
		id varchar(128) NOT NULL,
		role varchar(20) NOT NULL,
		bank_name varchar(100),
		account_number varchar(10),
		account_name varchar(150),
		created_at timestamp NULL,
		updated_at timestamp NULL,
		PRIMARY KEY (id)
	);`)
	return err
}

func Down20261018101000(tx *sql.Tx) error {
	_, err := tx.Exec("DROP TABLE IF EXISTS users;")
	return err
}
