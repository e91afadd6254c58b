package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20261018100500, Down20261018100500)
}

func Up20261018100500(tx *sql.Tx) error {
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS transactions (
		id varchar(36) NOT NULL,
		created_at timestamp NULL,
		updated_at timestamp NULL,
		user_id varchar(128) NOT NULL,
		reference varchar(36) NOT NULL,
		transaction_type varchar(20) NOT NULL,
		transaction_status varchar(20) NOT NULL,
		asset_symbol varchar(20) NOT NULL,
		counter_asset_symbol varchar(20),
		amount varchar(100) NOT NULL,
		naira_amount varchar(100),
		date varchar(40) NOT NULL,
		timestamp timestamp NOT NULL,
		PRIMARY KEY (id)
	);`)
	if err != nil {
		return err
	}
	if _, err = tx.Exec("CREATE UNIQUE INDEX uix_transactions_reference ON transactions (reference);"); err != nil {
		return err
	}
	_, err = tx.Exec("CREATE INDEX idx_transactions_user_id ON transactions (user_id);")
	return err
}

func Down20261018100500(tx *sql.Tx) error {
	_, err := tx.Exec("DROP TABLE IF EXISTS transactions;")
	return err
}
