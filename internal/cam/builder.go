package cam

import (
	"github.com/smartcity/castation/internal/domain"
)

// BuilderConfig holds the static station attributes placed in every CAM
type BuilderConfig struct {
	StationType    uint8
	VehicleRole    uint8
	ExteriorLights uint8
}

// DefaultBuilderConfig describes a passenger car with daytime running lights on
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		StationType:    domain.StationTypePassengerCar,
		VehicleRole:    domain.VehicleRoleDefault,
		ExteriorLights: domain.ExteriorLightsMask(domain.ExteriorLightsDaytimeRunningLightsOn),
	}
}

// Builder assembles validated CAMs from kinematic snapshots
type Builder struct {
	cfg       BuilderConfig
	validator *Validator
}

// NewBuilder creates a builder; a nil validator gets the default rules
func NewBuilder(cfg BuilderConfig, validator *Validator) *Builder {
	if validator == nil {
		validator = NewValidator()
	}
	return &Builder{cfg: cfg, validator: validator}
}

// Build creates a CAM for the snapshot. The low frequency container is
// attached when includeLowFrequency is set. The message is validated before
// it is returned; a *ValidationError means the builder produced a message
// outside the schema and must not be sent.
func (b *Builder) Build(k domain.KinematicSnapshot, generationDeltaTime uint16, includeLowFrequency bool) (*domain.CAM, error) {
	msg := &domain.CAM{
		Header: domain.ItsPduHeader{
			ProtocolVersion: domain.ProtocolVersionCurrent,
			MessageID:       domain.MessageIDCAM,
			StationID:       k.StationID,
		},
		GenerationDeltaTime: generationDeltaTime,
		Basic: domain.BasicContainer{
			StationType: b.cfg.StationType,
			ReferencePosition: domain.ReferencePosition{
				Latitude:  EncodeLatitude(k.Position.Latitude),
				Longitude: EncodeLongitude(k.Position.Longitude),
				PositionConfidenceEllipse: domain.PosConfidenceEllipse{
					SemiMajorConfidence:  domain.SemiAxisLengthUnavailable,
					SemiMinorConfidence:  domain.SemiAxisLengthUnavailable,
					SemiMajorOrientation: domain.HeadingValueUnavailable,
				},
				Altitude: domain.Altitude{
					Value:      domain.AltitudeValueUnavailable,
					Confidence: domain.AltitudeConfidenceUnavailable,
				},
			},
		},
		HighFrequency: b.highFrequency(k),
	}

	if includeLowFrequency {
		msg.LowFrequency = &domain.BasicVehicleContainerLowFrequency{
			VehicleRole:    b.cfg.VehicleRole,
			ExteriorLights: b.cfg.ExteriorLights,
		}
	}

	if err := b.validator.Validate(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (b *Builder) highFrequency(k domain.KinematicSnapshot) domain.BasicVehicleContainerHighFrequency {
	hf := domain.BasicVehicleContainerHighFrequency{
		Heading: domain.Heading{
			Value:      EncodeHeading(k.Heading),
			Confidence: domain.HeadingConfidenceWithinOneDegree,
		},
		Speed: domain.Speed{
			Value:      EncodeSpeed(k.Speed),
			Confidence: domain.SpeedConfidenceWithinOneCentimeterPerSec * 3,
		},
		DriveDirection: EncodeDriveDirection(k.Speed),
		VehicleLength: domain.VehicleLength{
			Value:                domain.VehicleLengthValueUnavailable,
			ConfidenceIndication: domain.VehicleLengthConfidenceNoTrailerPresent,
		},
		VehicleWidth: domain.VehicleWidthUnavailable,
		LongitudinalAcceleration: domain.LongitudinalAcceleration{
			Value:      EncodeLongitudinalAcceleration(k.LongitudinalAcceleration),
			Confidence: domain.AccelerationConfidenceUnavailable,
		},
		Curvature: domain.Curvature{
			Value:      EncodeCurvature(k.Curvature),
			Confidence: domain.CurvatureConfidenceUnavailable,
		},
		CurvatureCalculationMode: domain.CurvatureCalculationModeYawRateUsed,
		YawRate: domain.YawRate{
			Value:      EncodeYawRate(k.YawRate),
			Confidence: domain.YawRateConfidenceUnavailable,
		},
	}

	if hf.Heading.Value == domain.HeadingValueUnavailable {
		hf.Heading.Confidence = domain.HeadingConfidenceUnavailable
	}
	if hf.Speed.Value == domain.SpeedValueUnavailable {
		hf.Speed.Confidence = domain.SpeedConfidenceUnavailable
	}
	return hf
}
