// README: Itinerary store backed by PostgreSQL.
package itinerary

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists generated itineraries.
//
// Schema:
//
//	CREATE TABLE itineraries (
//	    id           TEXT PRIMARY KEY,
//	    destinations TEXT[] NOT NULL,
//	    preferences  TEXT NOT NULL,
//	    markdown     TEXT NOT NULL,
//	    created_at   TIMESTAMPTZ NOT NULL
//	);
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Save(ctx context.Context, r Record) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO itineraries (id, destinations, preferences, markdown, created_at)
        VALUES ($1, $2, $3, $4, $5)`,
		r.ID, r.Destinations, r.Preferences, r.Markdown, r.CreatedAt,
	)
	return err
}

func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(ctx, `
        SELECT id, destinations, preferences, markdown, created_at
        FROM itineraries
        ORDER BY created_at DESC
        LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Destinations, &r.Preferences, &r.Markdown, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
