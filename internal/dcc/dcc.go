// Package dcc implements decentralized congestion control: a recommended
// minimum gap between transmissions per traffic class, derived from the
// measured channel busy ratio (CBR), and a token-bucket gatekeeper that
// enforces it at the access layer.
package dcc

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Profile is a DCC traffic class
type Profile uint8

const (
	DP0 Profile = iota // high priority, e.g. DENM
	DP1
	DP2 // CAM
	DP3
)

// Scheduler recommends the minimum interval between messages of a profile
type Scheduler interface {
	Delay(p Profile) time.Duration
}

// Static recommends the same delay regardless of channel load
type Static struct {
	delay time.Duration
}

// NewStatic creates a fixed-delay scheduler
func NewStatic(delay time.Duration) *Static {
	return &Static{delay: delay}
}

// Delay implements Scheduler
func (s *Static) Delay(Profile) time.Duration { return s.delay }

// State is a reactive DCC channel state
type State int

const (
	Relaxed State = iota
	Active1
	Active2
	Active3
	Restrictive
)

func (s State) String() string {
	switch s {
	case Relaxed:
		return "relaxed"
	case Active1:
		return "active1"
	case Active2:
		return "active2"
	case Active3:
		return "active3"
	case Restrictive:
		return "restrictive"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// reactiveState is one row of the reactive DCC table
type reactiveState struct {
	state  State
	maxCBR float64 // exclusive upper bound of the channel busy ratio
	toff   time.Duration
}

var reactiveTable = []reactiveState{
	{Relaxed, 0.30, 60 * time.Millisecond},
	{Active1, 0.40, 100 * time.Millisecond},
	{Active2, 0.50, 180 * time.Millisecond},
	{Active3, 0.60, 260 * time.Millisecond},
	{Restrictive, 1.01, 1000 * time.Millisecond},
}

// Reactive maps channel load to a DCC state and its transmit-off time
type Reactive struct {
	mu       sync.RWMutex
	row      reactiveState
	cbr      float64
	limiters map[Profile]*rate.Limiter
}

// NewReactive creates a reactive scheduler in the relaxed state
func NewReactive() *Reactive {
	r := &Reactive{
		row:      reactiveTable[0],
		limiters: make(map[Profile]*rate.Limiter),
	}
	for _, p := range []Profile{DP0, DP1, DP2, DP3} {
		// burst 2 tolerates jitter between host ticks and the limiter clock
		r.limiters[p] = rate.NewLimiter(rate.Every(r.row.toff), 2)
	}
	return r
}

// UpdateChannelLoad feeds a new CBR measurement (0..1) and returns the resulting state
func (r *Reactive) UpdateChannelLoad(cbr float64) (State, error) {
	if cbr < 0 || cbr > 1 {
		return 0, fmt.Errorf("dcc: channel busy ratio %.3f outside [0, 1]", cbr)
	}

	row := reactiveTable[len(reactiveTable)-1]
	for _, candidate := range reactiveTable {
		if cbr < candidate.maxCBR {
			row = candidate
			break
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cbr = cbr
	if row.state != r.row.state {
		r.row = row
		for _, l := range r.limiters {
			l.SetLimit(rate.Every(row.toff))
		}
	}
	return row.state, nil
}

// Delay implements Scheduler. DP0 traffic is never delayed beyond the relaxed gap.
func (r *Reactive) Delay(p Profile) time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p == DP0 {
		return reactiveTable[0].toff
	}
	return r.row.toff
}

// State returns the current state and the last measured CBR
func (r *Reactive) State() (State, float64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.row.state, r.cbr
}

// Allow reports whether the gatekeeper admits one message of profile p now
func (r *Reactive) Allow(p Profile) bool {
	r.mu.RLock()
	l, ok := r.limiters[p]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if p == DP0 {
		return true
	}
	return l.Allow()
}
