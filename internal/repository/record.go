// Package repository holds the neighbor store backends and the row format
// they share.
package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartcity/castation/internal/domain"
)

// Row is the persisted form of an awareness record. The CAM itself is kept
// in its wire encoding; position and station type are denormalized for queries.
type Row struct {
	StationID   uint32
	RecordID    uuid.UUID
	StationType uint8
	Latitude    int32
	Longitude   int32
	Valid       bool
	Payload     []byte
	ReceivedAt  time.Time
}

// ToRow encodes a record for storage
func ToRow(rec domain.AwarenessRecord) (Row, error) {
	payload, err := rec.Message.MarshalMsg(nil)
	if err != nil {
		return Row{}, fmt.Errorf("repository: failed to encode CAM of station %d: %w", rec.StationID, err)
	}
	return Row{
		StationID:   rec.StationID,
		RecordID:    rec.ID,
		StationType: rec.Message.Basic.StationType,
		Latitude:    rec.Message.Basic.ReferencePosition.Latitude,
		Longitude:   rec.Message.Basic.ReferencePosition.Longitude,
		Valid:       rec.Valid,
		Payload:     payload,
		ReceivedAt:  rec.ReceivedAt,
	}, nil
}

// Record decodes a stored row
func (r Row) Record() (domain.AwarenessRecord, error) {
	var msg domain.CAM
	if _, err := msg.UnmarshalMsg(r.Payload); err != nil {
		return domain.AwarenessRecord{}, fmt.Errorf("repository: failed to decode CAM of station %d: %w", r.StationID, err)
	}
	return domain.AwarenessRecord{
		ID:         r.RecordID,
		StationID:  r.StationID,
		Message:    msg,
		Valid:      r.Valid,
		ReceivedAt: r.ReceivedAt,
	}, nil
}
