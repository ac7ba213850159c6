package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/units"
	"github.com/smartcity/castation/pkg/utils"
)

// Dynamics thresholds that trigger an immediate CAM
var (
	HeadingDeltaThreshold  = units.Degrees(4)
	PositionDeltaThreshold = units.Meters(4)
	SpeedDeltaThreshold    = units.MetersPerSecond(0.5)
)

// SchedulerConfig bounds the generation period
type SchedulerConfig struct {
	MinPeriod         time.Duration `yaml:"min_period"`
	MaxPeriod         time.Duration `yaml:"max_period"`
	LowDynamicsLimit  int           `yaml:"low_dynamics_limit"`
	SecondaryInterval time.Duration `yaml:"secondary_interval"`
}

// DefaultSchedulerConfig returns the standard CAM generation bounds
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		MinPeriod:         100 * time.Millisecond,
		MaxPeriod:         1000 * time.Millisecond,
		LowDynamicsLimit:  3,
		SecondaryInterval: 500 * time.Millisecond,
	}
}

// Validate checks that the bounds are usable
func (c SchedulerConfig) Validate() error {
	switch {
	case c.MinPeriod <= 0:
		return errors.New("service: min period must be positive")
	case c.MaxPeriod < c.MinPeriod:
		return fmt.Errorf("service: max period %v below min period %v", c.MaxPeriod, c.MinPeriod)
	case c.LowDynamicsLimit < 1:
		return errors.New("service: low dynamics limit must be at least 1")
	case c.SecondaryInterval <= 0:
		return errors.New("service: secondary interval must be positive")
	}
	return nil
}

// GenerationState is the scheduler's memory of the previous emission
type GenerationState struct {
	LastSentTimestamp      time.Time       `json:"last_sent_timestamp"`
	LastSentPosition       domain.Position `json:"-"`
	LastSentHeading        units.Angle     `json:"-"`
	LastSentSpeed          units.Velocity  `json:"-"`
	CurrentPeriod          time.Duration   `json:"current_period"`
	LowDynamicsStreak      int             `json:"low_dynamics_streak"`
	LastSecondaryTimestamp time.Time       `json:"last_secondary_timestamp"`
}

// Trigger says why a CAM is emitted
type Trigger int

const (
	TriggerNone Trigger = iota
	TriggerDynamics
	TriggerPeriodic
)

func (t Trigger) String() string {
	switch t {
	case TriggerDynamics:
		return "dynamics"
	case TriggerPeriodic:
		return "periodic"
	default:
		return "none"
	}
}

// Decision is the outcome of one scheduler check
type Decision struct {
	Trigger Trigger
	Elapsed time.Duration
}

// Emit reports whether a CAM should be sent
func (d Decision) Emit() bool { return d.Trigger != TriggerNone }

// GenerationScheduler decides when the station emits a CAM.
//
// Check is side-effect free; the caller commits a decision only after the
// message was built and validated, so a failed emission leaves the state
// untouched. The scheduler is not safe for concurrent use.
type GenerationScheduler struct {
	cfg         SchedulerConfig
	state       GenerationState
	initialized bool
}

// NewGenerationScheduler creates a scheduler with the given bounds
func NewGenerationScheduler(cfg SchedulerConfig) (*GenerationScheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &GenerationScheduler{cfg: cfg}, nil
}

// Init seeds the state at service start. The snapshot becomes the delta
// reference, the period starts at its maximum and the secondary block is
// due immediately.
func (s *GenerationScheduler) Init(now time.Time, k domain.KinematicSnapshot) {
	s.state = GenerationState{
		LastSentTimestamp:      now,
		LastSentPosition:       k.Position,
		LastSentHeading:        k.Heading,
		LastSentSpeed:          k.Speed,
		CurrentPeriod:          s.cfg.MaxPeriod,
		LastSecondaryTimestamp: now.Add(-s.cfg.SecondaryInterval),
	}
	s.initialized = true
}

// Initialized reports whether Init was called
func (s *GenerationScheduler) Initialized() bool { return s.initialized }

// Check evaluates the triggering conditions for now
func (s *GenerationScheduler) Check(now time.Time, k domain.KinematicSnapshot, dccDelay time.Duration) Decision {
	candidate := utils.ClampDuration(dccDelay, s.cfg.MinPeriod, s.cfg.MaxPeriod)
	elapsed := now.Sub(s.state.LastSentTimestamp)

	if elapsed < candidate {
		return Decision{Trigger: TriggerNone, Elapsed: elapsed}
	}
	if s.dynamicsChanged(k) {
		return Decision{Trigger: TriggerDynamics, Elapsed: elapsed}
	}
	if elapsed >= s.state.CurrentPeriod {
		return Decision{Trigger: TriggerPeriodic, Elapsed: elapsed}
	}
	return Decision{Trigger: TriggerNone, Elapsed: elapsed}
}

func (s *GenerationScheduler) dynamicsChanged(k domain.KinematicSnapshot) bool {
	if units.HeadingDifference(k.Heading, s.state.LastSentHeading) > HeadingDeltaThreshold {
		return true
	}
	if s.state.LastSentPosition.DistanceTo(k.Position) > PositionDeltaThreshold {
		return true
	}
	return (k.Speed - s.state.LastSentSpeed).Abs() > SpeedDeltaThreshold
}

// Commit records an emission made for decision d
func (s *GenerationScheduler) Commit(now time.Time, k domain.KinematicSnapshot, d Decision, secondaryIncluded bool) {
	switch d.Trigger {
	case TriggerDynamics:
		s.state.CurrentPeriod = utils.ClampDuration(d.Elapsed, s.cfg.MinPeriod, s.cfg.MaxPeriod)
		s.state.LowDynamicsStreak = 0
	case TriggerPeriodic:
		s.state.LowDynamicsStreak++
		if s.state.LowDynamicsStreak >= s.cfg.LowDynamicsLimit {
			s.state.CurrentPeriod = s.cfg.MaxPeriod
		}
	default:
		return
	}

	if now.After(s.state.LastSentTimestamp) {
		s.state.LastSentTimestamp = now
	}
	s.state.LastSentPosition = k.Position
	s.state.LastSentHeading = k.Heading
	s.state.LastSentSpeed = k.Speed
	if secondaryIncluded {
		s.state.LastSecondaryTimestamp = now
	}
}

// SecondaryDue reports whether the next CAM should carry the low frequency container
func (s *GenerationScheduler) SecondaryDue(now time.Time) bool {
	return now.Sub(s.state.LastSecondaryTimestamp) >= s.cfg.SecondaryInterval
}

// State returns a copy of the current state
func (s *GenerationScheduler) State() GenerationState { return s.state }

// Config returns the scheduler bounds
func (s *GenerationScheduler) Config() SchedulerConfig { return s.cfg }
