package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const PlaysTableSchema = `
	CREATE TABLE IF NOT EXISTS plays (
		id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		genre VARCHAR NOT NULL
	);
`

const StatementsTableSchema = `
	CREATE TABLE IF NOT EXISTS statements (
		id VARCHAR PRIMARY KEY,
		customer VARCHAR NOT NULL,
		total_charge BIGINT NOT NULL,
		total_credits INTEGER NOT NULL,
		lines JSON NOT NULL,
		issued_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

var bootQueries = []string{
	PlaysTableSchema,
	StatementsTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
