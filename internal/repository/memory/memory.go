package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/smartcity/castation/internal/domain"
)

// DefaultCapacity bounds the number of neighbors kept in memory
const DefaultCapacity = 1024

// Repository implements domain.AwarenessRepository on a bounded LRU table.
// It serves standalone runs without a database; the least recently heard
// station is evicted when the table is full.
type Repository struct {
	cache *lru.Cache
}

// NewRepository creates an in-memory neighbor table; capacity <= 0 uses DefaultCapacity
func NewRepository(capacity int) (*Repository, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("memory: failed to create neighbor table: %w", err)
	}
	return &Repository{cache: cache}, nil
}

// UpdateAwareness keeps the newest record per station; older arrivals are ignored
func (r *Repository) UpdateAwareness(ctx context.Context, rec domain.AwarenessRecord) error {
	if prev, ok := r.cache.Peek(rec.StationID); ok {
		if rec.ReceivedAt.Before(prev.(domain.AwarenessRecord).ReceivedAt) {
			return nil
		}
	}
	r.cache.Add(rec.StationID, rec)
	return nil
}

// GetNeighbors returns stations heard from at or after since, most recent first
func (r *Repository) GetNeighbors(ctx context.Context, since time.Time) ([]domain.AwarenessRecord, error) {
	var results []domain.AwarenessRecord
	for _, key := range r.cache.Keys() {
		v, ok := r.cache.Peek(key)
		if !ok {
			continue
		}
		rec := v.(domain.AwarenessRecord)
		if rec.ReceivedAt.Before(since) {
			continue
		}
		results = append(results, rec)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].ReceivedAt.After(results[j].ReceivedAt)
	})
	return results, nil
}

// GetNeighbor returns the latest record of one station
func (r *Repository) GetNeighbor(ctx context.Context, stationID uint32) (domain.AwarenessRecord, error) {
	v, ok := r.cache.Peek(stationID)
	if !ok {
		return domain.AwarenessRecord{}, domain.ErrNeighborNotFound
	}
	return v.(domain.AwarenessRecord), nil
}

// Health always succeeds for the in-memory table
func (r *Repository) Health(ctx context.Context) error {
	return nil
}

// Len returns the number of stations in the table
func (r *Repository) Len() int {
	return r.cache.Len()
}
