package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20261018100000, Down20261018100000)
}

func Up20261018100000(tx *sql.Tx) error {
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS user_assets (
		id varchar(36) NOT NULL,
		created_at timestamp NULL,
		updated_at timestamp NULL,
		user_id varchar(128) NOT NULL,
		asset_symbol varchar(20) NOT NULL,
		name varchar(100) NOT NULL,
		balance varchar(100) NOT NULL,
		value varchar(100) NOT NULL,
		version bigint NOT NULL DEFAULT 1,
		PRIMARY KEY (id)
	);`)
	if err != nil {
		return err
	}
	_, err = tx.Exec("CREATE UNIQUE INDEX idx_user_asset_symbol ON user_assets (user_id, asset_symbol);")
	return err
}

func Down20261018100000(tx *sql.Tx) error {
	_, err := tx.Exec("DROP TABLE IF EXISTS user_assets;")
	return err
}
