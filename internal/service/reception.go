package service

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/smartcity/castation/internal/cam"
	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/metrics"
	"github.com/smartcity/castation/internal/transport"
)

// ReceptionStats counts inbound packets by outcome
type ReceptionStats struct {
	Ignored     uint64 `json:"ignored"`
	Valid       uint64 `json:"valid"`
	Invalid     uint64 `json:"invalid"`
	StoreErrors uint64 `json:"store_errors"`
}

// ReceptionHandler decodes peer CAMs and feeds the neighbor store
type ReceptionHandler struct {
	validator *cam.Validator
	repo      domain.AwarenessRepository
	recorder  metrics.Recorder

	ignored     atomic.Uint64
	valid       atomic.Uint64
	invalid     atomic.Uint64
	storeErrors atomic.Uint64
}

// NewReceptionHandler creates a reception handler; a nil validator gets the default rules
func NewReceptionHandler(validator *cam.Validator, repo domain.AwarenessRepository, recorder metrics.Recorder) *ReceptionHandler {
	if validator == nil {
		validator = cam.NewValidator()
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &ReceptionHandler{validator: validator, repo: repo, recorder: recorder}
}

// Indicate handles one packet from the BTP layer. Packets for other ports
// or payloads that do not decode as CAM are dropped. Decoded CAMs are
// forwarded whether or not they pass validation; their validity is recorded.
func (h *ReceptionHandler) Indicate(ctx context.Context, ind transport.Indication) {
	if ind.DestinationPort != transport.PortCAM {
		h.ignored.Add(1)
		return
	}

	msg, err := cam.Decode(ind.Payload)
	if err != nil {
		h.ignored.Add(1)
		return
	}

	valid := h.validator.Validate(msg) == nil
	if valid {
		h.valid.Add(1)
	} else {
		h.invalid.Add(1)
	}
	h.recorder.CamReceived(valid)

	if h.repo == nil {
		return
	}
	receivedAt := ind.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}
	if err := h.repo.UpdateAwareness(ctx, domain.NewAwarenessRecord(*msg, valid, receivedAt)); err != nil {
		h.storeErrors.Add(1)
		log.Printf("Warning: failed to store CAM from station %d: %v", msg.Header.StationID, err)
	}
}

// Stats returns the reception counters
func (h *ReceptionHandler) Stats() ReceptionStats {
	return ReceptionStats{
		Ignored:     h.ignored.Load(),
		Valid:       h.valid.Load(),
		Invalid:     h.invalid.Load(),
		StoreErrors: h.storeErrors.Load(),
	}
}
