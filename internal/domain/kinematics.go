package domain

import (
	"time"

	"github.com/smartcity/castation/internal/units"
	"github.com/smartcity/castation/pkg/utils"
)

// Position is a WGS84 geographic coordinate
type Position struct {
	Latitude  units.Angle `json:"-"`
	Longitude units.Angle `json:"-"`
}

// NewPosition builds a Position from decimal degrees
func NewPosition(latDeg, lonDeg float64) Position {
	return Position{Latitude: units.Degrees(latDeg), Longitude: units.Degrees(lonDeg)}
}

// DistanceTo returns the great-circle distance to q
func (p Position) DistanceTo(q Position) units.Length {
	return utils.Haversine(p.Latitude, p.Longitude, q.Latitude, q.Longitude)
}

// Offset returns the position reached after travelling dist along bearing
func (p Position) Offset(bearing units.Angle, dist units.Length) Position {
	lat, lon := utils.Destination(p.Latitude, p.Longitude, bearing, dist)
	return Position{Latitude: lat, Longitude: lon}
}

// KinematicSnapshot is the station's vehicle state at one instant.
// Speed is signed: negative values mean the vehicle is reversing.
type KinematicSnapshot struct {
	StationID                uint32
	Position                 Position
	Speed                    units.Velocity
	Heading                  units.Angle
	LongitudinalAcceleration units.Acceleration
	YawRate                  units.AngularVelocity
	Curvature                units.Curvature
	Timestamp                time.Time
}

// KinematicSource provides the current vehicle state.
// Implementations must be cheap to call and never block.
type KinematicSource interface {
	Snapshot() KinematicSnapshot
}

// KinematicView is the JSON shape of a snapshot for API consumers
type KinematicView struct {
	StationID        uint32    `json:"station_id"`
	Latitude         float64   `json:"lat"`
	Longitude        float64   `json:"lon"`
	SpeedMps         float64   `json:"speed_mps"`
	HeadingDeg       float64   `json:"heading_deg"`
	AccelerationMps2 float64   `json:"acceleration_mps2"`
	YawRateDegS      float64   `json:"yaw_rate_deg_s"`
	CurvaturePerM    float64   `json:"curvature_per_m"`
	Timestamp        time.Time `json:"timestamp"`
}

// View converts the snapshot to plain units, rounded to the CAM resolution
func (k KinematicSnapshot) View() KinematicView {
	return KinematicView{
		StationID:        k.StationID,
		Latitude:         utils.RoundTo(k.Position.Latitude.Degrees(), 7),
		Longitude:        utils.RoundTo(k.Position.Longitude.Degrees(), 7),
		SpeedMps:         utils.RoundTo(k.Speed.MetersPerSecond(), 2),
		HeadingDeg:       utils.RoundTo(k.Heading.Degrees(), 1),
		AccelerationMps2: utils.RoundTo(k.LongitudinalAcceleration.MetersPerSecondSquared(), 1),
		YawRateDegS:      utils.RoundTo(k.YawRate.DegreesPerSecond(), 2),
		CurvaturePerM:    utils.RoundTo(k.Curvature.PerMeter(), 6),
		Timestamp:        k.Timestamp,
	}
}
