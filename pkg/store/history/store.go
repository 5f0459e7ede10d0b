package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/de-tools/playbill/pkg/models/store"
	"github.com/de-tools/playbill/pkg/store/duckdb"
)

// Store keeps every statement issued through the service.
type Store interface {
	Add(ctx context.Context, record store.StatementRecord) error
	ListByCustomer(ctx context.Context, customer string) ([]store.StatementRecord, error)
}

type historyStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &historyStore{db: db}, nil
}

func (h *historyStore) Add(ctx context.Context, record store.StatementRecord) error {
	lines, err := json.Marshal(record.Lines)
	if err != nil {
		return fmt.Errorf("marshal lines: %w", err)
	}

	query := `
		INSERT INTO statements (id, customer, total_charge, total_credits, lines, issued_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err = duckdb.Conn(ctx, h.db).ExecContext(ctx, query,
		record.ID,
		record.Customer,
		record.TotalCharge,
		record.TotalCredits,
		string(lines),
		record.IssuedAt,
	)
	if err != nil {
		return fmt.Errorf("insert statement: %w", err)
	}
	return nil
}

func (h *historyStore) ListByCustomer(ctx context.Context, customer string) ([]store.StatementRecord, error) {
	query := `
		SELECT id, customer, total_charge, total_credits, CAST(lines AS VARCHAR), issued_at
		FROM statements
		WHERE customer = ?
		ORDER BY issued_at DESC`

	rows, err := duckdb.Conn(ctx, h.db).QueryContext(ctx, query, customer)
	if err != nil {
		return nil, fmt.Errorf("query statements: %w", err)
	}
	defer rows.Close()

	records := make([]store.StatementRecord, 0)
	for rows.Next() {
		var (
			rec      store.StatementRecord
			linesRaw []byte
			issuedAt time.Time
		)
		if err := rows.Scan(&rec.ID, &rec.Customer, &rec.TotalCharge, &rec.TotalCredits, &linesRaw, &issuedAt); err != nil {
			return nil, fmt.Errorf("scan statement: %w", err)
		}
		if err := json.Unmarshal(linesRaw, &rec.Lines); err != nil {
			return nil, fmt.Errorf("unmarshal lines of statement %s: %w", rec.ID, err)
		}
		rec.IssuedAt = issuedAt
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate statements: %w", err)
	}
	return records, nil
}
