package units_test

import (
	"math"
	"testing"

	"github.com/smartcity/castation/internal/units"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAngleConversions(t *testing.T) {
	t.Parallel()

	a := units.Degrees(90)
	if !approx(float64(a), math.Pi/2) {
		t.Errorf("expected pi/2 radians, got %v", float64(a))
	}
	if !approx(a.Decidegrees(), 900) {
		t.Errorf("expected 900 decidegrees, got %v", a.Decidegrees())
	}
	if !approx(units.Degrees(1.5).Microdegrees(), 1.5e6) {
		t.Errorf("expected 1.5e6 microdegrees, got %v", units.Degrees(1.5).Microdegrees())
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360.5, 0.5},
		{-10, 350},
		{725, 5},
	}
	for _, tt := range tests {
		got := units.Degrees(tt.in).Normalize().Degrees()
		if !approx(got, tt.want) {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHeadingDifference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"same", 10, 10, 0},
		{"plain", 10, 15, 5},
		{"across north", 358, 2, 4},
		{"opposite", 0, 180, 180},
		{"reversed order", 2, 358, 4},
	}
	for _, tt := range tests {
		got := units.HeadingDifference(units.Degrees(tt.a), units.Degrees(tt.b)).Degrees()
		if !approx(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestVelocityAndRates(t *testing.T) {
	t.Parallel()

	if got := units.MetersPerSecond(-2.5).Abs().CentimetersPerSecond(); !approx(got, 250) {
		t.Errorf("expected 250 cm/s, got %v", got)
	}
	if got := units.KilometersPerHour(36).MetersPerSecond(); !approx(got, 10) {
		t.Errorf("expected 10 m/s, got %v", got)
	}
	if got := units.MetersPerSecondSquared(1.2).DecimetersPerSecondSquared(); !approx(got, 12) {
		t.Errorf("expected 12, got %v", got)
	}
	if got := units.DegreesPerSecond(3).CentidegreesPerSecond(); !approx(got, 300) {
		t.Errorf("expected 300, got %v", got)
	}
	if got := units.Radius(units.Meters(50)).PerMeter(); !approx(got, 0.02) {
		t.Errorf("expected 0.02, got %v", got)
	}
}
