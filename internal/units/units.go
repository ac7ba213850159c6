// Package units provides typed physical quantities for vehicle kinematics.
//
// Every quantity is stored in its SI base unit. Constructors and accessors
// name the unit explicitly so a value in degrees can never be passed where
// radians or decidegrees are expected.
package units

import "math"

// Angle is a plane angle in radians.
type Angle float64

// Length is a distance in metres.
type Length float64

// Velocity is a speed in metres per second. The sign carries direction.
type Velocity float64

// Acceleration is a linear acceleration in metres per second squared.
type Acceleration float64

// AngularVelocity is a rotation rate in radians per second.
type AngularVelocity float64

// Curvature is the reciprocal of a turning radius, in 1/m.
type Curvature float64

// Degrees returns an Angle of d degrees.
func Degrees(d float64) Angle { return Angle(d * math.Pi / 180) }

// Radians returns an Angle of r radians.
func Radians(r float64) Angle { return Angle(r) }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return float64(a) * 180 / math.Pi }

// Decidegrees returns the angle in tenths of a degree.
func (a Angle) Decidegrees() float64 { return a.Degrees() * 10 }

// Microdegrees returns the angle in millionths of a degree.
func (a Angle) Microdegrees() float64 { return a.Degrees() * 1e6 }

// Abs returns the magnitude of a.
func (a Angle) Abs() Angle { return Angle(math.Abs(float64(a))) }

// Normalize wraps a compass angle into [0°, 360°).
func (a Angle) Normalize() Angle {
	d := math.Mod(a.Degrees(), 360)
	if d < 0 {
		d += 360
	}
	return Degrees(d)
}

// HeadingDifference returns the shortest angular distance between two
// compass headings, always within [0°, 180°].
func HeadingDifference(a, b Angle) Angle {
	d := math.Mod(math.Abs(a.Degrees()-b.Degrees()), 360)
	if d > 180 {
		d = 360 - d
	}
	return Degrees(d)
}

// Meters returns a Length of m metres.
func Meters(m float64) Length { return Length(m) }

// Meters returns the length in metres.
func (l Length) Meters() float64 { return float64(l) }

// MetersPerSecond returns a Velocity of v m/s.
func MetersPerSecond(v float64) Velocity { return Velocity(v) }

// KilometersPerHour returns a Velocity of v km/h.
func KilometersPerHour(v float64) Velocity { return Velocity(v / 3.6) }

// MetersPerSecond returns the velocity in m/s.
func (v Velocity) MetersPerSecond() float64 { return float64(v) }

// CentimetersPerSecond returns the velocity in cm/s.
func (v Velocity) CentimetersPerSecond() float64 { return float64(v) * 100 }

// Abs returns the speed magnitude.
func (v Velocity) Abs() Velocity { return Velocity(math.Abs(float64(v))) }

// MetersPerSecondSquared returns an Acceleration of a m/s².
func MetersPerSecondSquared(a float64) Acceleration { return Acceleration(a) }

// MetersPerSecondSquared returns the acceleration in m/s².
func (a Acceleration) MetersPerSecondSquared() float64 { return float64(a) }

// DecimetersPerSecondSquared returns the acceleration in 0.1 m/s² steps.
func (a Acceleration) DecimetersPerSecondSquared() float64 { return float64(a) * 10 }

// DegreesPerSecond returns an AngularVelocity of w deg/s.
func DegreesPerSecond(w float64) AngularVelocity { return AngularVelocity(w * math.Pi / 180) }

// DegreesPerSecond returns the rotation rate in deg/s.
func (w AngularVelocity) DegreesPerSecond() float64 { return float64(w) * 180 / math.Pi }

// CentidegreesPerSecond returns the rotation rate in 0.01 deg/s steps.
func (w AngularVelocity) CentidegreesPerSecond() float64 { return w.DegreesPerSecond() * 100 }

// PerMeter returns a Curvature of c 1/m.
func PerMeter(c float64) Curvature { return Curvature(c) }

// PerMeter returns the curvature in 1/m.
func (c Curvature) PerMeter() float64 { return float64(c) }

// Radius returns a Curvature for a turn of radius r; positive turns left.
func Radius(r Length) Curvature {
	if r == 0 {
		return Curvature(math.Inf(1))
	}
	return Curvature(1 / float64(r))
}
