// Package host dispatches ticks and inbound packets to the CA service.
// All calls into the service happen on the runner's single goroutine.
package host

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/smartcity/castation/internal/service"
	"github.com/smartcity/castation/internal/transport"
)

// ErrQueueFull is returned by Deliver when the inbound queue is saturated
var ErrQueueFull = errors.New("host: inbound queue full")

// ErrAlreadyStarted is returned by a second Start
var ErrAlreadyStarted = errors.New("host: runner already started")

// Generator is the tick-driven send side
type Generator interface {
	Trigger(ctx context.Context, now time.Time) error
}

// Receiver is the packet-driven reception side
type Receiver interface {
	Indicate(ctx context.Context, ind transport.Indication)
}

// Stepper advances simulated inputs before each tick
type Stepper interface {
	Advance(now time.Time)
}

// Config configures the runner
type Config struct {
	TickInterval time.Duration    // host tick, should not exceed the minimum CAM period
	QueueSize    int              // inbound packet capacity (default: 256)
	Now          func() time.Time // time source (default: time.Now)
}

// Runner owns the goroutine that calls into the CA service
type Runner struct {
	gen     Generator
	recv    Receiver
	stepper Stepper
	cfg     Config

	inbound chan transport.Indication
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once
	started atomic.Bool

	ticks   atomic.Uint64
	dropped atomic.Uint64
}

// NewRunner creates a runner; stepper may be nil
func NewRunner(gen Generator, recv Receiver, stepper Stepper, cfg Config) (*Runner, error) {
	if gen == nil || recv == nil {
		return nil, errors.New("host: generator and receiver are required")
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 50 * time.Millisecond
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Runner{
		gen:     gen,
		recv:    recv,
		stepper: stepper,
		cfg:     cfg,
		inbound: make(chan transport.Indication, cfg.QueueSize),
		stopped: make(chan struct{}),
	}, nil
}

// Start launches the dispatch loop
func (r *Runner) Start(ctx context.Context) error {
	if !r.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	loopCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	go r.loop(loopCtx)
	return nil
}

// Stop ends the dispatch loop and waits for it to exit
func (r *Runner) Stop() {
	if !r.started.Load() {
		return
	}
	r.once.Do(r.cancel)
	<-r.stopped
}

// Deliver queues an inbound packet without blocking. Safe for concurrent use.
func (r *Runner) Deliver(ind transport.Indication) error {
	select {
	case r.inbound <- ind:
		return nil
	default:
		r.dropped.Add(1)
		return ErrQueueFull
	}
}

// Ticks returns the number of completed ticks
func (r *Runner) Ticks() uint64 { return r.ticks.Load() }

// Dropped returns the number of packets rejected by Deliver
func (r *Runner) Dropped() uint64 { return r.dropped.Load() }

func (r *Runner) loop(ctx context.Context) {
	defer close(r.stopped)

	ticker := time.NewTicker(r.cfg.TickInterval)
	defer ticker.Stop()

	r.Tick(ctx, r.cfg.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case ind := <-r.inbound:
			r.indicate(ctx, ind)
		case <-ticker.C:
			r.Tick(ctx, r.cfg.Now())
		}
	}
}

// Tick runs one host tick at now. The loop calls it on every ticker
// event; tests call it directly.
func (r *Runner) Tick(ctx context.Context, now time.Time) {
	defer r.ticks.Add(1)
	defer func() {
		if p := recover(); p != nil {
			log.Printf("Error: panic in tick at %s: %v", now.Format(time.RFC3339Nano), p)
		}
	}()

	if r.stepper != nil {
		r.stepper.Advance(now)
	}

	err := r.gen.Trigger(ctx, now)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidCAM):
		log.Printf("Error: CAM emission abandoned: %v", err)
	default:
		log.Printf("Warning: CAM emission failed: %v", err)
	}
}

func (r *Runner) indicate(ctx context.Context, ind transport.Indication) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("Error: panic handling packet on port %d: %v", ind.DestinationPort, p)
		}
	}()
	r.recv.Indicate(ctx, ind)
}
