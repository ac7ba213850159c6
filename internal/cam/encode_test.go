package cam

import (
	"math"
	"testing"

	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/units"
)

func TestEncodeLongitudinalAcceleration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mps2 float64
		want int16
	}{
		{"zero", 0, 0},
		{"gentle", 1.24, 12},
		{"braking", -3.5, -35},
		{"lower bound", -16.0, -160},
		{"just below lower bound", -16.01, domain.LongitudinalAccelerationUnavailable},
		{"far outside", 200, domain.LongitudinalAccelerationUnavailable},
		{"far outside negative", -200, domain.LongitudinalAccelerationUnavailable},
		{"not a number", math.NaN(), domain.LongitudinalAccelerationUnavailable},
		{"infinite", math.Inf(1), domain.LongitudinalAccelerationUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := EncodeLongitudinalAcceleration(units.MetersPerSecondSquared(tt.mps2))
			if got != tt.want {
				t.Errorf("EncodeLongitudinalAcceleration(%v) = %d, want %d", tt.mps2, got, tt.want)
			}
		})
	}
}

func TestOutOfRangeAccelerationIsNotClamped(t *testing.T) {
	t.Parallel()

	got := EncodeLongitudinalAcceleration(units.MetersPerSecondSquared(200))
	if got == 160 {
		t.Fatal("200 m/s² was clamped to the boundary value")
	}
	if got != domain.LongitudinalAccelerationUnavailable {
		t.Errorf("expected unavailable sentinel, got %d", got)
	}
}

func TestEncodeHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		deg  float64
		want uint16
	}{
		{0, 0},
		{90, 900},
		{359.94, 3599},
		{359.96, 0},
		{-90, 2700},
		{450.5, 905},
		{math.NaN(), domain.HeadingValueUnavailable},
	}
	for _, tt := range tests {
		if got := EncodeHeading(units.Degrees(tt.deg)); got != tt.want {
			t.Errorf("EncodeHeading(%v) = %d, want %d", tt.deg, got, tt.want)
		}
	}
}

func TestEncodeSpeedAndDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mps       float64
		wantValue uint16
		wantDir   uint8
	}{
		{0, 0, domain.DriveDirectionForward},
		{13.89, 1389, domain.DriveDirectionForward},
		{-2.5, 250, domain.DriveDirectionBackward},
		{163.82, 16382, domain.DriveDirectionForward},
		{200, domain.SpeedValueUnavailable, domain.DriveDirectionForward},
		{math.NaN(), domain.SpeedValueUnavailable, domain.DriveDirectionUnavailable},
	}
	for _, tt := range tests {
		v := units.MetersPerSecond(tt.mps)
		if got := EncodeSpeed(v); got != tt.wantValue {
			t.Errorf("EncodeSpeed(%v) = %d, want %d", tt.mps, got, tt.wantValue)
		}
		if got := EncodeDriveDirection(v); got != tt.wantDir {
			t.Errorf("EncodeDriveDirection(%v) = %d, want %d", tt.mps, got, tt.wantDir)
		}
	}
}

func TestEncodePosition(t *testing.T) {
	t.Parallel()

	if got := EncodeLatitude(units.Degrees(43.2389)); got != 432389000 {
		t.Errorf("latitude = %d, want 432389000", got)
	}
	if got := EncodeLongitude(units.Degrees(-76.8897)); got != -768897000 {
		t.Errorf("longitude = %d, want -768897000", got)
	}
	if got := EncodeLatitude(units.Degrees(91)); got != domain.LatitudeUnavailable {
		t.Errorf("latitude beyond the pole = %d, want unavailable", got)
	}
	if got := EncodeLongitude(units.Degrees(math.Inf(-1))); got != domain.LongitudeUnavailable {
		t.Errorf("infinite longitude = %d, want unavailable", got)
	}
}

func TestEncodeCurvatureAndYawRate(t *testing.T) {
	t.Parallel()

	if got := EncodeCurvature(units.PerMeter(0.01)); got != 300 {
		t.Errorf("curvature = %d, want 300", got)
	}
	if got := EncodeCurvature(units.PerMeter(-2)); got != domain.CurvatureValueUnavailable {
		t.Errorf("tight curvature = %d, want unavailable", got)
	}
	if got := EncodeYawRate(units.DegreesPerSecond(-12.34)); got != -1234 {
		t.Errorf("yaw rate = %d, want -1234", got)
	}
	if got := EncodeYawRate(units.DegreesPerSecond(400)); got != domain.YawRateValueUnavailable {
		t.Errorf("excessive yaw rate = %d, want unavailable", got)
	}
}

func TestDecodeInvertsEncode(t *testing.T) {
	t.Parallel()

	lat, ok := DecodeLatitude(EncodeLatitude(units.Degrees(48.1234567)))
	if !ok || math.Abs(lat.Degrees()-48.1234567) > 1e-7 {
		t.Errorf("latitude round trip = %v (%v)", lat.Degrees(), ok)
	}
	speed, ok := DecodeSpeed(EncodeSpeed(units.MetersPerSecond(-4.2)), EncodeDriveDirection(units.MetersPerSecond(-4.2)))
	if !ok || math.Abs(speed.MetersPerSecond()+4.2) > 0.005 {
		t.Errorf("speed round trip = %v (%v)", speed.MetersPerSecond(), ok)
	}
	if _, ok := DecodeLongitudinalAcceleration(domain.LongitudinalAccelerationUnavailable); ok {
		t.Error("unavailable acceleration decoded as available")
	}
	if _, ok := DecodeHeading(domain.HeadingValueUnavailable); ok {
		t.Error("unavailable heading decoded as available")
	}
}
