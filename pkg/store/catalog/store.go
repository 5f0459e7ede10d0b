package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/de-tools/playbill/pkg/models/store"
	"github.com/de-tools/playbill/pkg/store/duckdb"
)

// Store persists the play catalog.
type Store interface {
	List(ctx context.Context) ([]store.Play, error)
	Get(ctx context.Context, id string) (*store.Play, error)
	Upsert(ctx context.Context, plays []store.Play) error
}

type catalogStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &catalogStore{db: db}, nil
}

func (s *catalogStore) List(ctx context.Context) ([]store.Play, error) {
	rows, err := duckdb.Conn(ctx, s.db).QueryContext(ctx, `SELECT id, name, genre FROM plays ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query plays: %w", err)
	}
	defer rows.Close()

	plays := make([]store.Play, 0)
	for rows.Next() {
		var p store.Play
		if err := rows.Scan(&p.ID, &p.Name, &p.Genre); err != nil {
			return nil, fmt.Errorf("scan play: %w", err)
		}
		plays = append(plays, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plays: %w", err)
	}
	return plays, nil
}

// Get returns nil without error when the play does not exist.
func (s *catalogStore) Get(ctx context.Context, id string) (*store.Play, error) {
	var p store.Play
	err := duckdb.Conn(ctx, s.db).
		QueryRowContext(ctx, `SELECT id, name, genre FROM plays WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Genre)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get play %s: %w", id, err)
	}
	return &p, nil
}

func (s *catalogStore) Upsert(ctx context.Context, plays []store.Play) error {
	if len(plays) == 0 {
		return nil
	}

	query := `
		INSERT INTO plays (id, name, genre) VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, genre = excluded.genre`

	return duckdb.RunInTx(ctx, s.db, func(ctx context.Context) error {
		conn := duckdb.Conn(ctx, s.db)
		for _, p := range plays {
			if _, err := conn.ExecContext(ctx, query, p.ID, p.Name, p.Genre); err != nil {
				return fmt.Errorf("upsert play %s: %w", p.ID, err)
			}
		}
		return nil
	})
}
