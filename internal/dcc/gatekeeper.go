package dcc

import (
	"context"
	"errors"

	"github.com/smartcity/castation/internal/transport"
)

// ErrChannelBusy is returned when the gatekeeper holds back a packet
var ErrChannelBusy = errors.New("dcc: channel busy, packet dropped")

// Admitter decides whether a packet of a profile may go out now
type Admitter interface {
	Allow(p Profile) bool
}

// Gatekeeper enforces the transmit-off time in front of a transport
type Gatekeeper struct {
	next transport.Requester
	gate Admitter
}

// NewGatekeeper wraps next so every request first passes gate
func NewGatekeeper(next transport.Requester, gate Admitter) *Gatekeeper {
	return &Gatekeeper{next: next, gate: gate}
}

// Request implements transport.Requester
func (g *Gatekeeper) Request(ctx context.Context, req transport.DataRequest) error {
	if !g.gate.Allow(Profile(req.TrafficClass)) {
		return ErrChannelBusy
	}
	return g.next.Request(ctx, req)
}
