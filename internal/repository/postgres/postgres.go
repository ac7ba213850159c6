package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/repository"
)

const schema = `
	CREATE TABLE IF NOT EXISTS cam_neighbors (
		station_id   BIGINT PRIMARY KEY,
		record_id    UUID        NOT NULL,
		station_type SMALLINT    NOT NULL,
		latitude     INTEGER     NOT NULL,
		longitude    INTEGER     NOT NULL,
		valid        BOOLEAN     NOT NULL,
		payload      BYTEA       NOT NULL,
		received_at  TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS cam_neighbors_received_at ON cam_neighbors (received_at DESC);
`

// PostgresRepository implements domain.AwarenessRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the neighbor table when missing
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to create schema: %w", err)
	}
	return nil
}

// UpdateAwareness upserts the latest CAM of a station
func (r *PostgresRepository) UpdateAwareness(ctx context.Context, rec domain.AwarenessRecord) error {
	row, err := repository.ToRow(rec)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cam_neighbors (
			station_id, record_id, station_type, latitude, longitude, valid, payload, received_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (station_id) DO UPDATE SET
			record_id = EXCLUDED.record_id,
			station_type = EXCLUDED.station_type,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			valid = EXCLUDED.valid,
			payload = EXCLUDED.payload,
			received_at = EXCLUDED.received_at
		WHERE EXCLUDED.received_at >= cam_neighbors.received_at
	`

	_, err = r.pool.Exec(ctx, query,
		int64(row.StationID), row.RecordID.String(), int16(row.StationType), row.Latitude, row.Longitude,
		row.Valid, row.Payload, row.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to update awareness of station %d: %w", row.StationID, err)
	}

	return nil
}

// GetNeighbors retrieves stations heard from since the given instant
func (r *PostgresRepository) GetNeighbors(ctx context.Context, since time.Time) ([]domain.AwarenessRecord, error) {
	query := `
		SELECT station_id, record_id::text, station_type, latitude, longitude, valid, payload, received_at
		FROM cam_neighbors
		WHERE received_at >= $1
		ORDER BY received_at DESC
		LIMIT 1000
	`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query neighbors: %w", err)
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
		return nil, fmt.Errorf("postgres: failed to iterate neighbors: %w", err)
	}

	return results, nil
}

// GetNeighbor retrieves the latest record of one station
func (r *PostgresRepository) GetNeighbor(ctx context.Context, stationID uint32) (domain.AwarenessRecord, error) {
	query := `
		SELECT station_id, record_id::text, station_type, latitude, longitude, valid, payload, received_at
		FROM cam_neighbors
		WHERE station_id = $1
	`

	rec, err := scanRecord(r.pool.QueryRow(ctx, query, int64(stationID)))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AwarenessRecord{}, domain.ErrNeighborNotFound
	}
	return rec, err
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

func scanRecord(row pgx.Row) (domain.AwarenessRecord, error) {
	var (
		stationID   int64
		recordID    string
		stationType int16
		r           repository.Row
	)
	err := row.Scan(&stationID, &recordID, &stationType, &r.Latitude, &r.Longitude, &r.Valid, &r.Payload, &r.ReceivedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AwarenessRecord{}, err
	}
	if err != nil {
		return domain.AwarenessRecord{}, fmt.Errorf("postgres: failed to scan neighbor row: %w", err)
	}

	r.StationID = uint32(stationID)
	r.StationType = uint8(stationType)
	if err := r.RecordID.UnmarshalText([]byte(recordID)); err != nil {
		return domain.AwarenessRecord{}, fmt.Errorf("postgres: bad record id %q: %w", recordID, err)
	}
	return r.Record()
}
