// Package cam assembles, validates and serializes Cooperative Awareness Messages.
//
// The encoders in this file map physical quantities to the fixed-point
// integers of the CAM schema. They are total: a quantity outside the
// representable range, or not a finite number, maps to the field's
// "unavailable" sentinel and is never clamped to a boundary value.
package cam

import (
	"math"

	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/units"
)

// Representable ranges in physical units
const (
	maxLatitudeDeg      = 90.0
	maxLongitudeDeg     = 180.0
	maxSpeedValue       = 16382
	minAccelerationMps2 = -16.0
	maxAccelerationMps2 = 16.1
	maxCurvatureValue   = 30000
	maxYawRateValue     = 32766
)

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// EncodeLatitude returns latitude in 0.1 microdegree steps
func EncodeLatitude(lat units.Angle) int32 {
	deg := lat.Degrees()
	if !finite(deg) || math.Abs(deg) > maxLatitudeDeg {
		return domain.LatitudeUnavailable
	}
	return int32(math.Round(lat.Microdegrees() * domain.LatitudeOneMicrodegreeNorth))
}

// EncodeLongitude returns longitude in 0.1 microdegree steps
func EncodeLongitude(lon units.Angle) int32 {
	deg := lon.Degrees()
	if !finite(deg) || math.Abs(deg) > maxLongitudeDeg {
		return domain.LongitudeUnavailable
	}
	return int32(math.Round(lon.Microdegrees() * domain.LongitudeOneMicrodegreeEast))
}

// EncodeHeading returns a compass heading in 0.1 degree steps within 0..3599
func EncodeHeading(h units.Angle) uint16 {
	if !finite(float64(h)) {
		return domain.HeadingValueUnavailable
	}
	v := math.Round(h.Normalize().Decidegrees())
	if v >= 3600 {
		v = 0
	}
	return uint16(v)
}

// EncodeSpeed returns the speed magnitude in 0.01 m/s steps
func EncodeSpeed(v units.Velocity) uint16 {
	cms := math.Round(v.Abs().CentimetersPerSecond())
	if !finite(cms) || cms > maxSpeedValue {
		return domain.SpeedValueUnavailable
	}
	return uint16(cms)
}

// EncodeDriveDirection derives the drive direction from the sign of v
func EncodeDriveDirection(v units.Velocity) uint8 {
	switch {
	case math.IsNaN(float64(v)):
		return domain.DriveDirectionUnavailable
	case v >= 0:
		return domain.DriveDirectionForward
	default:
		return domain.DriveDirectionBackward
	}
}

// EncodeLongitudinalAcceleration returns acceleration in 0.1 m/s² steps.
// Values outside -16.0..16.1 m/s² are unavailable.
func EncodeLongitudinalAcceleration(a units.Acceleration) int16 {
	mps2 := a.MetersPerSecondSquared()
	if !finite(mps2) || mps2 < minAccelerationMps2 || mps2 > maxAccelerationMps2 {
		return domain.LongitudinalAccelerationUnavailable
	}
	return int16(math.Round(a.DecimetersPerSecondSquared()))
}

// EncodeCurvature returns curvature in 1/30000 m⁻¹ steps
func EncodeCurvature(c units.Curvature) int16 {
	v := math.Round(c.PerMeter() * domain.CurvatureReciprocalOf1MeterRadiusToLeft)
	if !finite(v) || math.Abs(v) > maxCurvatureValue {
		return domain.CurvatureValueUnavailable
	}
	return int16(v)
}

// EncodeYawRate returns the yaw rate in 0.01 deg/s steps
func EncodeYawRate(w units.AngularVelocity) int16 {
	v := math.Round(w.CentidegreesPerSecond())
	if !finite(v) || math.Abs(v) > maxYawRateValue {
		return domain.YawRateValueUnavailable
	}
	return int16(v)
}

// DecodeLatitude is the inverse of EncodeLatitude
func DecodeLatitude(v int32) (units.Angle, bool) {
	if v == domain.LatitudeUnavailable {
		return 0, false
	}
	return units.Degrees(float64(v) / domain.LatitudeOneMicrodegreeNorth / 1e6), true
}

// DecodeLongitude is the inverse of EncodeLongitude
func DecodeLongitude(v int32) (units.Angle, bool) {
	if v == domain.LongitudeUnavailable {
		return 0, false
	}
	return units.Degrees(float64(v) / domain.LongitudeOneMicrodegreeEast / 1e6), true
}

// DecodeHeading is the inverse of EncodeHeading
func DecodeHeading(v uint16) (units.Angle, bool) {
	if v >= domain.HeadingValueUnavailable {
		return 0, false
	}
	return units.Degrees(float64(v) / 10), true
}

// DecodeSpeed returns the signed velocity from magnitude and drive direction
func DecodeSpeed(v uint16, direction uint8) (units.Velocity, bool) {
	if v == domain.SpeedValueUnavailable {
		return 0, false
	}
	speed := units.MetersPerSecond(float64(v) / 100)
	if direction == domain.DriveDirectionBackward {
		speed = -speed
	}
	return speed, true
}

// DecodeLongitudinalAcceleration is the inverse of EncodeLongitudinalAcceleration
func DecodeLongitudinalAcceleration(v int16) (units.Acceleration, bool) {
	if v == domain.LongitudinalAccelerationUnavailable {
		return 0, false
	}
	return units.MetersPerSecondSquared(float64(v) / 10), true
}

// DecodeCurvature is the inverse of EncodeCurvature
func DecodeCurvature(v int16) (units.Curvature, bool) {
	if v == domain.CurvatureValueUnavailable {
		return 0, false
	}
	return units.PerMeter(float64(v) / domain.CurvatureReciprocalOf1MeterRadiusToLeft), true
}

// DecodeYawRate is the inverse of EncodeYawRate
func DecodeYawRate(v int16) (units.AngularVelocity, bool) {
	if v == domain.YawRateValueUnavailable {
		return 0, false
	}
	return units.DegreesPerSecond(float64(v) / 100), true
}

// ToKinematics decodes the kinematic content of a CAM.
// Fields carrying the unavailable sentinel decode to zero.
func ToKinematics(msg *domain.CAM) domain.KinematicSnapshot {
	ref := msg.Basic.ReferencePosition
	hf := msg.HighFrequency

	lat, _ := DecodeLatitude(ref.Latitude)
	lon, _ := DecodeLongitude(ref.Longitude)
	heading, _ := DecodeHeading(hf.Heading.Value)
	speed, _ := DecodeSpeed(hf.Speed.Value, hf.DriveDirection)
	accel, _ := DecodeLongitudinalAcceleration(hf.LongitudinalAcceleration.Value)
	curvature, _ := DecodeCurvature(hf.Curvature.Value)
	yawRate, _ := DecodeYawRate(hf.YawRate.Value)

	return domain.KinematicSnapshot{
		StationID:                msg.Header.StationID,
		Position:                 domain.Position{Latitude: lat, Longitude: lon},
		Speed:                    speed,
		Heading:                  heading,
		LongitudinalAcceleration: accel,
		YawRate:                  yawRate,
		Curvature:                curvature,
	}
}
