package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartcity/castation/internal/domain"
)

func lookupFrom(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := FromEnv(lookupFrom(nil))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Port != "8080" || cfg.StoreDriver != StoreMemory || cfg.DCCMode != DCCReactive {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.StationID != 1001 || cfg.TickInterval != 50*time.Millisecond {
		t.Errorf("station id %d, tick %v", cfg.StationID, cfg.TickInterval)
	}
	if cfg.Profile.Generation.MaxPeriod != time.Second {
		t.Errorf("max period = %v", cfg.Profile.Generation.MaxPeriod)
	}

	bc, err := cfg.Profile.Station.BuilderConfig()
	if err != nil {
		t.Fatal(err)
	}
	if bc.ExteriorLights != 0x08 || bc.StationType != domain.StationTypePassengerCar {
		t.Errorf("builder config %+v", bc)
	}
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
	}{
		{"station id", map[string]string{"STATION_ID": "-3"}},
		{"station id overflow", map[string]string{"STATION_ID": "4294967296"}},
		{"tick interval", map[string]string{"TICK_INTERVAL": "fast"}},
		{"tick above min period", map[string]string{"TICK_INTERVAL": "250ms"}},
		{"dcc delay", map[string]string{"DCC_DELAY": "soon"}},
		{"dcc mode", map[string]string{"DCC_MODE": "adaptive"}},
		{"store driver", map[string]string{"STORE_DRIVER": "redis"}},
		{"postgres without url", map[string]string{"STORE_DRIVER": "postgres"}},
		{"missing profile", map[string]string{"STATION_PROFILE": "/nonexistent/station.yaml"}},
	}
	for _, tt := range tests {
		if _, err := FromEnv(lookupFrom(tt.env)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestFromEnvLoadsProfile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "station.yaml")
	profile := `
station:
  station_type: 10
  vehicle_role: 6
  exterior_lights: [low_beam, fog]
generation:
  max_period: 800ms
vehicle:
  lat: 51.5
  lon: -0.12
  speed_mps: 8.3
  heading_deg: 45
motion:
  target_speed_mps: 13.9
  acceleration_mps2: 1.5
  deceleration_mps2: 3
neighbor_capacity: 64
`
	if err := os.WriteFile(path, []byte(profile), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := FromEnv(lookupFrom(map[string]string{"STATION_PROFILE": path}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	p := cfg.Profile
	if p.Generation.MaxPeriod != 800*time.Millisecond {
		t.Errorf("max period = %v", p.Generation.MaxPeriod)
	}
	if p.Generation.MinPeriod != 100*time.Millisecond || p.Generation.LowDynamicsLimit != 3 {
		t.Error("omitted generation fields lost their defaults")
	}
	if p.Vehicle.Latitude != 51.5 || p.Vehicle.HeadingDeg != 45 {
		t.Errorf("vehicle = %+v", p.Vehicle)
	}
	if p.Motion == nil || p.Motion.TargetSpeed != 13.9 {
		t.Errorf("motion = %+v", p.Motion)
	}
	if p.NeighborCapacity != 64 {
		t.Errorf("neighbor capacity = %d", p.NeighborCapacity)
	}

	bc, err := p.Station.BuilderConfig()
	if err != nil {
		t.Fatal(err)
	}
	want := domain.ExteriorLightsMask(domain.ExteriorLightsLowBeamHeadlightsOn, domain.ExteriorLightsFogLightOn)
	if bc.ExteriorLights != want || bc.VehicleRole != 6 || bc.StationType != 10 {
		t.Errorf("builder config %+v", bc)
	}
}

func TestStationProfileUnknownLight(t *testing.T) {
	t.Parallel()

	if _, err := (StationProfile{ExteriorLights: []string{"disco"}}).BuilderConfig(); err == nil {
		t.Error("unknown light accepted")
	}
}
