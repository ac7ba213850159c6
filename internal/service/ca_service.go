package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/smartcity/castation/internal/cam"
	"github.com/smartcity/castation/internal/dcc"
	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/its"
	"github.com/smartcity/castation/internal/metrics"
	"github.com/smartcity/castation/internal/transport"
)

// ErrInvalidCAM is returned when a freshly built CAM fails validation.
// It points at a builder defect; the emission is abandoned, not retried.
var ErrInvalidCAM = errors.New("service: outbound CAM failed validation")

// CaDependencies are the collaborators of the CA service
type CaDependencies struct {
	Source    domain.KinematicSource
	DCC       dcc.Scheduler
	Builder   *cam.Builder
	Transport transport.Requester
	Metrics   metrics.Recorder
	Scheduler *GenerationScheduler
}

// CaStatus is a point-in-time view of the generation side
type CaStatus struct {
	State         GenerationState `json:"state"`
	Initialized   bool            `json:"initialized"`
	LastTrigger   string          `json:"last_trigger"`
	LastDccDelay  time.Duration   `json:"last_dcc_delay"`
	Sent          uint64          `json:"sent"`
	DynamicsSent  uint64          `json:"dynamics_sent"`
	PeriodicSent  uint64          `json:"periodic_sent"`
	InvalidBuilds uint64          `json:"invalid_builds"`
	SendErrors    uint64          `json:"send_errors"`
}

// CaService generates CAMs on host ticks
type CaService struct {
	deps CaDependencies

	mu      sync.Mutex
	status  CaStatus
	lastCAM *domain.CAM
}

// NewCaService creates the CA service. Every collaborator is required.
func NewCaService(deps CaDependencies) (*CaService, error) {
	switch {
	case deps.Source == nil:
		return nil, errors.New("service: kinematic source is required")
	case deps.DCC == nil:
		return nil, errors.New("service: congestion control is required")
	case deps.Builder == nil:
		return nil, errors.New("service: message builder is required")
	case deps.Transport == nil:
		return nil, errors.New("service: transport is required")
	case deps.Metrics == nil:
		return nil, errors.New("service: metric sink is required")
	case deps.Scheduler == nil:
		return nil, errors.New("service: generation scheduler is required")
	}
	return &CaService{deps: deps}, nil
}

// Trigger runs one generation check at now and sends a CAM when due.
// The first call only seeds the scheduler.
func (s *CaService) Trigger(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sched := s.deps.Scheduler
	k := s.deps.Source.Snapshot()
	if !sched.Initialized() {
		sched.Init(now, k)
		s.status.Initialized = true
		return nil
	}

	delay := s.deps.DCC.Delay(dcc.DP2)
	s.status.LastDccDelay = delay

	d := sched.Check(now, k, delay)
	if !d.Emit() {
		return nil
	}

	secondary := sched.SecondaryDue(now)
	msg, err := s.deps.Builder.Build(k, generationDeltaTime(k, now), secondary)
	if err != nil {
		s.status.InvalidBuilds++
		return fmt.Errorf("%w: %w", ErrInvalidCAM, err)
	}

	payload, err := cam.Encode(msg)
	if err != nil {
		return fmt.Errorf("service: failed to encode CAM: %w", err)
	}

	sched.Commit(now, k, d, secondary)
	s.lastCAM = msg
	s.status.LastTrigger = d.Trigger.String()
	if d.Trigger == TriggerDynamics {
		s.status.DynamicsSent++
	} else {
		s.status.PeriodicSent++
	}

	if err := s.deps.Transport.Request(ctx, transport.CAMRequest(payload)); err != nil {
		s.status.SendErrors++
		return fmt.Errorf("service: failed to send CAM: %w", err)
	}
	s.status.Sent++
	s.deps.Metrics.CamSent(len(payload))
	return nil
}

// generationDeltaTime stamps the message with the time the kinematics were sampled
func generationDeltaTime(k domain.KinematicSnapshot, now time.Time) uint16 {
	if k.Timestamp.IsZero() {
		return its.GenerationDeltaTime(now)
	}
	return its.GenerationDeltaTime(k.Timestamp)
}

// Status returns a copy of the generation state and counters
func (s *CaService) Status() CaStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.status
	st.State = s.deps.Scheduler.State()
	return st
}

// LastCAM returns the most recent emitted CAM, or nil before the first emission
func (s *CaService) LastCAM() *domain.CAM {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastCAM == nil {
		return nil
	}
	msg := *s.lastCAM
	if msg.LowFrequency != nil {
		lf := *msg.LowFrequency
		msg.LowFrequency = &lf
	}
	return &msg
}
