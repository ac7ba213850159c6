package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register the pure-Go sqlite driver

	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS cam_neighbors (
	station_id   INTEGER PRIMARY KEY,
	record_id    TEXT    NOT NULL,
	station_type INTEGER NOT NULL,
	latitude     INTEGER NOT NULL,
	longitude    INTEGER NOT NULL,
	valid        INTEGER NOT NULL,
	payload      BLOB    NOT NULL,
	received_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS cam_neighbors_received_at ON cam_neighbors (received_at);
`

// Repository implements domain.AwarenessRepository on a local SQLite file
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema
func Open(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open %s: %w", path, err)
	}

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: failed to ping %s: %w", path, err)
	}
	if path != ":memory:" {
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite: failed to set WAL mode on %s: %w", path, err)
		}
	} else {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: failed to set busy_timeout on %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: failed to apply schema: %w", err)
	}

	return &Repository{db: db}, nil
}

// UpdateAwareness upserts the record; an older arrival never overwrites a newer one
func (r *Repository) UpdateAwareness(ctx context.Context, rec domain.AwarenessRecord) error {
	row, err := repository.ToRow(rec)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cam_neighbors (
			station_id, record_id, station_type, latitude, longitude, valid, payload, received_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (station_id) DO UPDATE SET
			record_id = excluded.record_id,
			station_type = excluded.station_type,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			valid = excluded.valid,
			payload = excluded.payload,
			received_at = excluded.received_at
		WHERE excluded.received_at >= cam_neighbors.received_at
	`

	_, err = r.db.ExecContext(ctx, query,
		row.StationID, row.RecordID.String(), row.StationType, row.Latitude, row.Longitude,
		row.Valid, row.Payload, row.ReceivedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: failed to update awareness of station %d: %w", row.StationID, err)
	}
	return nil
}

// GetNeighbors returns stations heard from at or after since, most recent first
func (r *Repository) GetNeighbors(ctx context.Context, since time.Time) ([]domain.AwarenessRecord, error) {
	query := `
		SELECT station_id, record_id, station_type, latitude, longitude, valid, payload, received_at
		FROM cam_neighbors
		WHERE received_at >= ?
		ORDER BY received_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, since.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to query neighbors: %w", err)
	}
	defer rows.Close()

	var results []domain.AwarenessRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: failed to iterate neighbors: %w", err)
	}
	return results, nil
}

// GetNeighbor returns the latest record of one station
func (r *Repository) GetNeighbor(ctx context.Context, stationID uint32) (domain.AwarenessRecord, error) {
	query := `
		SELECT station_id, record_id, station_type, latitude, longitude, valid, payload, received_at
		FROM cam_neighbors
		WHERE station_id = ?
	`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, stationID))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AwarenessRecord{}, domain.ErrNeighborNotFound
	}
	return rec, err
}

// Health checks database connectivity
func (r *Repository) Health(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: health check failed: %w", err)
	}
	return nil
}

// Close releases the database
func (r *Repository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (domain.AwarenessRecord, error) {
	var (
		row        repository.Row
		recordID   string
		receivedAt int64
	)
	err := s.Scan(&row.StationID, &recordID, &row.StationType, &row.Latitude, &row.Longitude,
		&row.Valid, &row.Payload, &receivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AwarenessRecord{}, err
	}
	if err != nil {
		return domain.AwarenessRecord{}, fmt.Errorf("sqlite: failed to scan neighbor row: %w", err)
	}

	row.RecordID, err = uuid.Parse(recordID)
	if err != nil {
		return domain.AwarenessRecord{}, fmt.Errorf("sqlite: bad record id %q: %w", recordID, err)
	}
	row.ReceivedAt = time.Unix(0, receivedAt).UTC()
	return row.Record()
}
