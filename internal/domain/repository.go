package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNeighborNotFound is returned when no awareness exists for a station
var ErrNeighborNotFound = errors.New("neighbor not found")

// AwarenessRecord is a CAM received from a neighboring station
type AwarenessRecord struct {
	ID         uuid.UUID `json:"id"`
	StationID  uint32    `json:"station_id"`
	Message    CAM       `json:"message"`
	Valid      bool      `json:"valid"`
	ReceivedAt time.Time `json:"received_at"`
}

// NewAwarenessRecord wraps a received message with a fresh record id
func NewAwarenessRecord(msg CAM, valid bool, receivedAt time.Time) AwarenessRecord {
	return AwarenessRecord{
		ID:         uuid.New(),
		StationID:  msg.Header.StationID,
		Message:    msg,
		Valid:      valid,
		ReceivedAt: receivedAt,
	}
}

// AwarenessRepository is the neighbor store fed by the reception path.
// The domain defines the interface; storage packages implement it.
type AwarenessRepository interface {
	// UpdateAwareness stores the latest CAM of a neighbor, replacing older ones
	UpdateAwareness(ctx context.Context, rec AwarenessRecord) error

	// GetNeighbors returns neighbors heard from since the given instant
	GetNeighbors(ctx context.Context, since time.Time) ([]AwarenessRecord, error)

	// GetNeighbor returns the latest record of one station
	GetNeighbor(ctx context.Context, stationID uint32) (AwarenessRecord, error)

	// Health checks store connectivity
	Health(ctx context.Context) error
}
