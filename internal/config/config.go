// Package config loads station settings from the environment and an
// optional YAML station profile.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/smartcity/castation/internal/cam"
	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/service"
)

// Neighbor store drivers
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// DCC modes
const (
	DCCStatic   = "static"
	DCCReactive = "reactive"
)

// Config is the daemon configuration
type Config struct {
	Port         string
	DatabaseURL  string
	StoreDriver  string
	SQLitePath   string
	NATSURL      string
	StationID    uint32
	ProfilePath  string
	TickInterval time.Duration
	DCCMode      string
	DCCDelay     time.Duration
	Env          string

	Profile Profile
}

// Profile is the YAML station profile
type Profile struct {
	Station          StationProfile          `yaml:"station"`
	Generation       service.SchedulerConfig `yaml:"generation"`
	Vehicle          service.VehicleState    `yaml:"vehicle"`
	Motion           *service.Motion         `yaml:"motion"`
	NeighborCapacity int                     `yaml:"neighbor_capacity"`
}

// StationProfile holds the static attributes advertised in CAMs
type StationProfile struct {
	StationType    uint8    `yaml:"station_type"`
	VehicleRole    uint8    `yaml:"vehicle_role"`
	ExteriorLights []string `yaml:"exterior_lights"`
}

var lightNames = map[string]int{
	"low_beam":   domain.ExteriorLightsLowBeamHeadlightsOn,
	"high_beam":  domain.ExteriorLightsHighBeamHeadlightsOn,
	"left_turn":  domain.ExteriorLightsLeftTurnSignalOn,
	"right_turn": domain.ExteriorLightsRightTurnSignalOn,
	"daytime":    domain.ExteriorLightsDaytimeRunningLightsOn,
	"reverse":    domain.ExteriorLightsReverseLightOn,
	"fog":        domain.ExteriorLightsFogLightOn,
	"parking":    domain.ExteriorLightsParkingLightsOn,
}

// DefaultProfile describes a parked passenger car in Almaty
func DefaultProfile() Profile {
	return Profile{
		Station: StationProfile{
			StationType:    domain.StationTypePassengerCar,
			VehicleRole:    domain.VehicleRoleDefault,
			ExteriorLights: []string{"daytime"},
		},
		Generation: service.DefaultSchedulerConfig(),
		Vehicle: service.VehicleState{
			Latitude:  43.2389,
			Longitude: 76.8897,
		},
		NeighborCapacity: 1024,
	}
}

// BuilderConfig converts the station attributes for the message builder
func (p StationProfile) BuilderConfig() (cam.BuilderConfig, error) {
	lights := make([]int, 0, len(p.ExteriorLights))
	for _, name := range p.ExteriorLights {
		bit, ok := lightNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return cam.BuilderConfig{}, fmt.Errorf("config: unknown exterior light %q", name)
		}
		lights = append(lights, bit)
	}
	return cam.BuilderConfig{
		StationType:    p.StationType,
		VehicleRole:    p.VehicleRole,
		ExteriorLights: domain.ExteriorLightsMask(lights...),
	}, nil
}

// Load reads .env, the environment and the station profile
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a variable lookup
func FromEnv(lookup func(string) string) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value := lookup(key); value != "" {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		Port:        get("PORT", "8080"),
		DatabaseURL: get("DATABASE_URL", ""),
		StoreDriver: strings.ToLower(get("STORE_DRIVER", StoreMemory)),
		SQLitePath:  get("SQLITE_PATH", "castation.db"),
		NATSURL:     get("NATS_URL", ""),
		ProfilePath: get("STATION_PROFILE", ""),
		DCCMode:     strings.ToLower(get("DCC_MODE", DCCReactive)),
		Env:         get("GO_ENV", "development"),
		Profile:     DefaultProfile(),
	}

	id, err := strconv.ParseUint(get("STATION_ID", "1001"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("config: invalid STATION_ID: %w", err)
	}
	cfg.StationID = uint32(id)

	if cfg.TickInterval, err = time.ParseDuration(get("TICK_INTERVAL", "50ms")); err != nil {
		return nil, fmt.Errorf("config: invalid TICK_INTERVAL: %w", err)
	}
	if cfg.DCCDelay, err = time.ParseDuration(get("DCC_DELAY", "100ms")); err != nil {
		return nil, fmt.Errorf("config: invalid DCC_DELAY: %w", err)
	}

	if cfg.ProfilePath != "" {
		if err := cfg.loadProfile(cfg.ProfilePath); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadProfile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read station profile: %w", err)
	}
	// fields missing from the file keep their defaults
	if err := yaml.Unmarshal(data, &c.Profile); err != nil {
		return fmt.Errorf("config: failed to parse station profile %s: %w", path, err)
	}
	return nil
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreSQLite:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: STORE_DRIVER=postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.DCCMode != DCCStatic && c.DCCMode != DCCReactive {
		return fmt.Errorf("config: unknown DCC_MODE %q", c.DCCMode)
	}
	if err := c.Profile.Generation.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.TickInterval <= 0 || c.TickInterval > c.Profile.Generation.MinPeriod {
		return fmt.Errorf("config: TICK_INTERVAL %v must be positive and at most the minimum period %v",
			c.TickInterval, c.Profile.Generation.MinPeriod)
	}
	if err := c.Profile.Vehicle.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Profile.Motion != nil {
		if err := c.Profile.Motion.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if _, err := c.Profile.Station.BuilderConfig(); err != nil {
		return err
	}
	return nil
}
