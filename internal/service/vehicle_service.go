package service

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/its"
	"github.com/smartcity/castation/internal/units"
	"github.com/smartcity/castation/pkg/utils"
)

// minCurvatureSpeed is the speed below which curvature is reported as zero
const minCurvatureSpeed = 0.1 // m/s

// VehicleState is the plain-unit vehicle input accepted from operators and profiles
type VehicleState struct {
	Latitude         float64 `json:"lat" yaml:"lat"`
	Longitude        float64 `json:"lon" yaml:"lon"`
	SpeedMps         float64 `json:"speed_mps" yaml:"speed_mps"`
	HeadingDeg       float64 `json:"heading_deg" yaml:"heading_deg"`
	AccelerationMps2 float64 `json:"acceleration_mps2" yaml:"acceleration_mps2"`
	YawRateDegS      float64 `json:"yaw_rate_deg_s" yaml:"yaw_rate_deg_s"`
}

// Validate rejects coordinates off the globe and non-finite values
func (v VehicleState) Validate() error {
	for name, f := range map[string]float64{
		"lat": v.Latitude, "lon": v.Longitude, "speed_mps": v.SpeedMps,
		"heading_deg": v.HeadingDeg, "acceleration_mps2": v.AccelerationMps2,
		"yaw_rate_deg_s": v.YawRateDegS,
	} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("vehicle: %s is not a finite number", name)
		}
	}
	if v.Latitude < -90 || v.Latitude > 90 {
		return fmt.Errorf("vehicle: latitude %.6f out of range", v.Latitude)
	}
	if v.Longitude < -180 || v.Longitude > 180 {
		return fmt.Errorf("vehicle: longitude %.6f out of range", v.Longitude)
	}
	return nil
}

// Motion drives the simulated vehicle towards a target speed with
// constant traction and braking rates
type Motion struct {
	TargetSpeed  float64 `json:"target_speed_mps" yaml:"target_speed_mps"`
	Acceleration float64 `json:"acceleration_mps2" yaml:"acceleration_mps2"`
	Deceleration float64 `json:"deceleration_mps2" yaml:"deceleration_mps2"`
	YawRateDegS  float64 `json:"yaw_rate_deg_s" yaml:"yaw_rate_deg_s"`
}

// Validate checks the motion parameters
func (m Motion) Validate() error {
	if m.TargetSpeed < 0 {
		return errors.New("vehicle: target speed must not be negative")
	}
	if m.Acceleration <= 0 || m.Deceleration <= 0 {
		return errors.New("vehicle: acceleration and deceleration must be positive")
	}
	return nil
}

// step advances speed v towards the target over dt seconds and returns the
// distance travelled and the new speed
func (m Motion) step(v, dt float64) (float64, float64) {
	rate := m.Acceleration
	if v > m.TargetSpeed {
		rate = -m.Deceleration
	}
	// time spent changing speed; the rest of the step cruises at the target
	t := utils.Clamp((m.TargetSpeed-v)/rate, 0, dt)
	v1 := v + rate*t
	if t < dt {
		v1 = m.TargetSpeed
	}
	return v*t + 0.5*rate*t*t + v1*(dt-t), v1
}

// VehicleService is the station's kinematic source. The state is either set
// by an operator or advanced by a constant-acceleration simulation.
type VehicleService struct {
	mu        sync.RWMutex
	stationID uint32
	clock     *its.Clock
	snapshot  domain.KinematicSnapshot
	motion    *Motion
	lastStep  time.Time
}

// NewVehicleService creates a vehicle source at the given start state
func NewVehicleService(stationID uint32, start VehicleState, clock *its.Clock) (*VehicleService, error) {
	if clock == nil {
		clock = its.NewClock(nil)
	}
	s := &VehicleService{stationID: stationID, clock: clock}
	if err := s.Update(start); err != nil {
		return nil, err
	}
	return s, nil
}

// Snapshot implements domain.KinematicSource
func (s *VehicleService) Snapshot() domain.KinematicSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	k := s.snapshot
	if k.Timestamp.IsZero() {
		k.Timestamp = s.clock.Now()
	}
	return k
}

// Update replaces the vehicle state with operator input
func (s *VehicleService) Update(v VehicleState) error {
	if err := v.Validate(); err != nil {
		return err
	}
	speed := units.MetersPerSecond(v.SpeedMps)
	yaw := units.DegreesPerSecond(v.YawRateDegS)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = domain.KinematicSnapshot{
		StationID:                s.stationID,
		Position:                 domain.NewPosition(v.Latitude, v.Longitude),
		Speed:                    speed,
		Heading:                  units.Degrees(v.HeadingDeg).Normalize(),
		LongitudinalAcceleration: units.MetersPerSecondSquared(v.AccelerationMps2),
		YawRate:                  yaw,
		Curvature:                curvature(speed, yaw),
	}
	return nil
}

// Simulate starts driving the vehicle with m; nil stops the simulation
func (s *VehicleService) Simulate(m *Motion) error {
	if m != nil {
		if err := m.Validate(); err != nil {
			return err
		}
		copied := *m
		m = &copied
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.motion = m
	s.lastStep = time.Time{}
	s.snapshot.Timestamp = time.Time{}
	return nil
}

// Simulating reports whether the simulation drives the vehicle
func (s *VehicleService) Simulating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.motion != nil
}

// Advance moves the simulated vehicle up to now. It is a no-op for manual
// operation and on the first call after the simulation started.
func (s *VehicleService) Advance(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.motion == nil {
		return
	}
	if s.lastStep.IsZero() || !now.After(s.lastStep) {
		s.lastStep = now
		return
	}
	dt := now.Sub(s.lastStep).Seconds()
	s.lastStep = now

	k := &s.snapshot
	v0 := math.Abs(k.Speed.MetersPerSecond())
	dist, v1 := s.motion.step(v0, dt)

	yaw := units.DegreesPerSecond(s.motion.YawRateDegS)
	heading := (k.Heading + units.Angle(float64(yaw)*dt)).Normalize()

	// move along the mean heading of the step
	mid := k.Heading + units.Angle(float64(yaw)*dt/2)
	k.Position = k.Position.Offset(mid, units.Meters(dist))
	k.Speed = units.MetersPerSecond(v1)
	k.Heading = heading
	k.LongitudinalAcceleration = units.MetersPerSecondSquared((v1 - v0) / dt)
	k.YawRate = yaw
	k.Curvature = curvature(k.Speed, yaw)
	k.Timestamp = now
}

// curvature derives path curvature from yaw rate and speed
func curvature(speed units.Velocity, yaw units.AngularVelocity) units.Curvature {
	v := speed.MetersPerSecond()
	if math.Abs(v) < minCurvatureSpeed {
		return 0
	}
	return units.PerMeter(float64(yaw) / v)
}
