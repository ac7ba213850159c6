package transport

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrClosed is returned by a transport after Close
var ErrClosed = errors.New("transport: closed")

// Loopback keeps every request in memory and optionally echoes it back as
// an indication. It backs tests and standalone runs without a broker.
type Loopback struct {
	mu       sync.Mutex
	requests []DataRequest
	echo     IndicationHandler
	station  uint32
	failWith error
	closed   bool
}

// NewLoopback creates a loopback for the given local station id
func NewLoopback(stationID uint32) *Loopback {
	return &Loopback{station: stationID}
}

// Request records the request and echoes it when an echo handler is set
func (l *Loopback) Request(ctx context.Context, req DataRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	if l.failWith != nil {
		err := l.failWith
		l.mu.Unlock()
		return err
	}
	l.requests = append(l.requests, req)
	echo := l.echo
	l.mu.Unlock()

	if echo != nil {
		echo(Indication{
			DestinationPort: req.DestinationPort,
			SourceStation:   l.station,
			Payload:         req.Payload,
			ReceivedAt:      time.Now(),
		})
	}
	return nil
}

// SetEcho installs a handler that receives every accepted request
func (l *Loopback) SetEcho(h IndicationHandler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.echo = h
}

// FailWith makes subsequent requests return err; nil restores normal operation
func (l *Loopback) FailWith(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failWith = err
}

// Requests returns a copy of all recorded requests
func (l *Loopback) Requests() []DataRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]DataRequest, len(l.requests))
	copy(out, l.requests)
	return out
}

// Close stops accepting requests
func (l *Loopback) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}
