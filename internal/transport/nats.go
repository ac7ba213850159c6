package transport

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"
)

// Header keys of the BTP envelope carried on NATS messages
const (
	HeaderStationID            = "Station-Id"
	HeaderSecurityProfile      = "Btp-Security-Profile"
	HeaderTransportType        = "Btp-Transport-Type"
	HeaderTrafficClass         = "Btp-Traffic-Class"
	HeaderCommunicationProfile = "Btp-Communication-Profile"
)

// Subject returns the NATS subject that emulates the radio channel of a BTP port
func Subject(port uint16) string {
	return fmt.Sprintf("v2x.btp.%d", port)
}

// Connect opens a NATS connection that keeps reconnecting for the station's lifetime
func Connect(url string, stationID uint32) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name(fmt.Sprintf("castation-%d", stationID)),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("Warning: NATS disconnected: %v", err)
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("transport: failed to connect to NATS: %w", err)
	}
	return nc, nil
}

// NATS broadcasts BTP requests on per-port subjects. Every station
// subscribed to the subject receives the packet, like on a shared channel.
type NATS struct {
	nc      *nats.Conn
	station uint32
}

// NewNATS wraps an open connection
func NewNATS(nc *nats.Conn, stationID uint32) *NATS {
	return &NATS{nc: nc, station: stationID}
}

// Request publishes the payload with the envelope in message headers
func (n *NATS) Request(ctx context.Context, req DataRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := n.nc.PublishMsg(n.message(req)); err != nil {
		return fmt.Errorf("transport: failed to publish on port %d: %w", req.DestinationPort, err)
	}
	return nil
}

func (n *NATS) message(req DataRequest) *nats.Msg {
	m := nats.NewMsg(Subject(req.DestinationPort))
	m.Header.Set(HeaderStationID, strconv.FormatUint(uint64(n.station), 10))
	m.Header.Set(HeaderSecurityProfile, strconv.Itoa(int(req.SecurityProfile)))
	m.Header.Set(HeaderTransportType, strconv.Itoa(int(req.TransportType)))
	m.Header.Set(HeaderTrafficClass, strconv.Itoa(int(req.TrafficClass)))
	m.Header.Set(HeaderCommunicationProfile, strconv.Itoa(int(req.CommunicationProfile)))
	m.Data = req.Payload
	return m
}

// Subscribe delivers packets for port to h. Packets published by this
// station are skipped.
func (n *NATS) Subscribe(port uint16, h IndicationHandler) (*nats.Subscription, error) {
	sub, err := n.nc.Subscribe(Subject(port), func(msg *nats.Msg) {
		ind, ok := n.indication(port, msg)
		if !ok {
			return
		}
		h(ind)
	})
	if err != nil {
		return nil, fmt.Errorf("transport: failed to subscribe to port %d: %w", port, err)
	}
	return sub, nil
}

func (n *NATS) indication(port uint16, msg *nats.Msg) (Indication, bool) {
	var source uint32
	if msg.Header != nil {
		if raw := msg.Header.Get(HeaderStationID); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				log.Printf("Warning: dropping packet with bad %s header %q", HeaderStationID, raw)
				return Indication{}, false
			}
			source = uint32(id)
		}
	}
	if source == n.station {
		return Indication{}, false
	}
	return Indication{
		DestinationPort: port,
		SourceStation:   source,
		Payload:         msg.Data,
		ReceivedAt:      time.Now(),
	}, true
}

// Close drains subscriptions and closes the connection
func (n *NATS) Close() error {
	if err := n.nc.Drain(); err != nil {
		return fmt.Errorf("transport: failed to drain NATS connection: %w", err)
	}
	return nil
}
