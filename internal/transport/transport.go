// Package transport carries facilities-layer messages over the BTP layer.
// Concrete transports are a NATS broadcast medium and an in-process loopback.
package transport

import (
	"context"
	"fmt"
	"time"
)

// PortCAM is the well-known BTP-B destination port of CAMs
const PortCAM uint16 = 2001

// SecurityProfile selects the signing profile applied below the facilities
type SecurityProfile uint8

const (
	SecurityProfileNone SecurityProfile = iota
	SecurityProfileCAM
	SecurityProfileDENM
)

// TransportType is the GeoNetworking packet transport
type TransportType uint8

const (
	TransportSHB TransportType = iota // single hop broadcast
	TransportTSB
	TransportGBC
	TransportGUC
)

// CommunicationProfile selects the access technology
type CommunicationProfile uint8

const (
	CommunicationProfileUnspecified CommunicationProfile = iota
	CommunicationProfileITSG5
	CommunicationProfileLTEV2X
)

// TrafficClassCAM is the DCC profile used for CAMs (DP2)
const TrafficClassCAM uint8 = 2

// DataRequest is a BTP-B data request with its payload
type DataRequest struct {
	DestinationPort      uint16
	SecurityProfile      SecurityProfile
	TransportType        TransportType
	TrafficClass         uint8
	CommunicationProfile CommunicationProfile
	Payload              []byte
}

// CAMRequest returns the fixed envelope used for every CAM
func CAMRequest(payload []byte) DataRequest {
	return DataRequest{
		DestinationPort:      PortCAM,
		SecurityProfile:      SecurityProfileCAM,
		TransportType:        TransportSHB,
		TrafficClass:         TrafficClassCAM,
		CommunicationProfile: CommunicationProfileITSG5,
		Payload:              payload,
	}
}

func (r DataRequest) String() string {
	return fmt.Sprintf("btp(port=%d sec=%d tt=%d tc=%d cp=%d len=%d)",
		r.DestinationPort, r.SecurityProfile, r.TransportType, r.TrafficClass,
		r.CommunicationProfile, len(r.Payload))
}

// Indication is a packet delivered by the BTP layer
type Indication struct {
	DestinationPort uint16
	SourceStation   uint32
	Payload         []byte
	ReceivedAt      time.Time
}

// Requester hands data requests to the layer below.
// Implementations take ownership of the payload.
type Requester interface {
	Request(ctx context.Context, req DataRequest) error
}

// IndicationHandler receives inbound packets
type IndicationHandler func(Indication)
