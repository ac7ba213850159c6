package domain

//go:generate msgp

//msgp:tuple CAM ItsPduHeader BasicContainer ReferencePosition PosConfidenceEllipse Altitude
//msgp:tuple BasicVehicleContainerHighFrequency Heading Speed VehicleLength LongitudinalAcceleration
//msgp:tuple Curvature YawRate BasicVehicleContainerLowFrequency

// Protocol identifiers and field sentinels of the CAM schema.
// Sentinel values mean "unavailable" and are distinct from zero.
const (
	ProtocolVersionCurrent uint8 = 2
	MessageIDCAM           uint8 = 2

	StationTypeUnknown      uint8 = 0
	StationTypePassengerCar uint8 = 5

	LatitudeOneMicrodegreeNorth       = 10
	LongitudeOneMicrodegreeEast       = 10
	LatitudeUnavailable         int32 = 900000001
	LongitudeUnavailable        int32 = 1800000001

	AltitudeValueUnavailable      int32 = 800001
	AltitudeConfidenceUnavailable uint8 = 15

	SemiAxisLengthUnavailable uint16 = 4095

	HeadingValueUnavailable          uint16 = 3601
	HeadingConfidenceWithinOneDegree uint8  = 10
	HeadingConfidenceUnavailable     uint8  = 127

	SpeedValueUnavailable                    uint16 = 16383
	SpeedConfidenceWithinOneCentimeterPerSec uint8  = 1
	SpeedConfidenceUnavailable               uint8  = 127

	DriveDirectionForward     uint8 = 0
	DriveDirectionBackward    uint8 = 1
	DriveDirectionUnavailable uint8 = 2

	LongitudinalAccelerationUnavailable int16 = 161
	AccelerationConfidenceUnavailable   uint8 = 102

	CurvatureReciprocalOf1MeterRadiusToLeft       = 30000
	CurvatureValueUnavailable               int16 = 30001
	CurvatureConfidenceUnavailable          uint8 = 7
	CurvatureCalculationModeYawRateUsed     uint8 = 0

	YawRateValueUnavailable      int16 = 32767
	YawRateConfidenceUnavailable uint8 = 8

	VehicleLengthValueUnavailable           uint16 = 1023
	VehicleLengthConfidenceNoTrailerPresent uint8  = 0
	VehicleWidthUnavailable                 uint8  = 62

	VehicleRoleDefault uint8 = 0
)

// ExteriorLights bit positions, most significant bit first
const (
	ExteriorLightsLowBeamHeadlightsOn = iota
	ExteriorLightsHighBeamHeadlightsOn
	ExteriorLightsLeftTurnSignalOn
	ExteriorLightsRightTurnSignalOn
	ExteriorLightsDaytimeRunningLightsOn
	ExteriorLightsReverseLightOn
	ExteriorLightsFogLightOn
	ExteriorLightsParkingLightsOn
)

// ExteriorLightsMask returns the bitstring byte with the given lights set
func ExteriorLightsMask(lights ...int) uint8 {
	var mask uint8
	for _, l := range lights {
		if l >= 0 && l < 8 {
			mask |= 1 << (7 - l)
		}
	}
	return mask
}

// CAM is a Cooperative Awareness Message.
// The high frequency container is mandatory; the low frequency one is
// attached at its own slower cadence.
type CAM struct {
	Header              ItsPduHeader                       `json:"header"`
	GenerationDeltaTime uint16                             `json:"generation_delta_time"`
	Basic               BasicContainer                     `json:"basic_container"`
	HighFrequency       BasicVehicleContainerHighFrequency `json:"high_frequency_container"`
	LowFrequency        *BasicVehicleContainerLowFrequency `json:"low_frequency_container,omitempty" validate:"omitempty"`
}

// ItsPduHeader identifies protocol, message type and originating station
type ItsPduHeader struct {
	ProtocolVersion uint8  `json:"protocol_version" validate:"min=1"`
	MessageID       uint8  `json:"message_id" validate:"eq=2"`
	StationID       uint32 `json:"station_id"`
}

// BasicContainer carries station type and reference position
type BasicContainer struct {
	StationType       uint8             `json:"station_type"`
	ReferencePosition ReferencePosition `json:"reference_position"`
}

// ReferencePosition is a fixed-point WGS84 position in 0.1 microdegree steps
type ReferencePosition struct {
	Latitude                  int32                `json:"latitude" validate:"min=-900000000,max=900000001"`
	Longitude                 int32                `json:"longitude" validate:"min=-1800000000,max=1800000001"`
	PositionConfidenceEllipse PosConfidenceEllipse `json:"position_confidence_ellipse"`
	Altitude                  Altitude             `json:"altitude"`
}

// PosConfidenceEllipse describes horizontal position uncertainty
type PosConfidenceEllipse struct {
	SemiMajorConfidence  uint16 `json:"semi_major_confidence" validate:"max=4095"`
	SemiMinorConfidence  uint16 `json:"semi_minor_confidence" validate:"max=4095"`
	SemiMajorOrientation uint16 `json:"semi_major_orientation" validate:"max=3601"`
}

// Altitude in centimetres
type Altitude struct {
	Value      int32 `json:"value" validate:"min=-100000,max=800001"`
	Confidence uint8 `json:"confidence" validate:"max=15"`
}

// BasicVehicleContainerHighFrequency holds the fast-changing kinematic fields
type BasicVehicleContainerHighFrequency struct {
	Heading                  Heading                  `json:"heading"`
	Speed                    Speed                    `json:"speed"`
	DriveDirection           uint8                    `json:"drive_direction" validate:"max=2"`
	VehicleLength            VehicleLength            `json:"vehicle_length"`
	VehicleWidth             uint8                    `json:"vehicle_width" validate:"min=1,max=62"`
	LongitudinalAcceleration LongitudinalAcceleration `json:"longitudinal_acceleration"`
	Curvature                Curvature                `json:"curvature"`
	CurvatureCalculationMode uint8                    `json:"curvature_calculation_mode" validate:"max=2"`
	YawRate                  YawRate                  `json:"yaw_rate"`
}

// Heading in 0.1 degree steps, clockwise from north
type Heading struct {
	Value      uint16 `json:"value" validate:"max=3601"`
	Confidence uint8  `json:"confidence" validate:"min=1,max=127"`
}

// Speed magnitude in 0.01 m/s steps
type Speed struct {
	Value      uint16 `json:"value" validate:"max=16383"`
	Confidence uint8  `json:"confidence" validate:"min=1,max=127"`
}

// VehicleLength in 0.1 m steps
type VehicleLength struct {
	Value                uint16 `json:"value" validate:"min=1,max=1023"`
	ConfidenceIndication uint8  `json:"confidence_indication" validate:"max=4"`
}

// LongitudinalAcceleration in 0.1 m/s² steps, positive forward
type LongitudinalAcceleration struct {
	Value      int16 `json:"value" validate:"min=-160,max=161"`
	Confidence uint8 `json:"confidence" validate:"max=102"`
}

// Curvature in 1/30000 m⁻¹ steps, positive to the left
type Curvature struct {
	Value      int16 `json:"value" validate:"min=-30000,max=30001"`
	Confidence uint8 `json:"confidence" validate:"max=7"`
}

// YawRate in 0.01 deg/s steps, positive to the left
type YawRate struct {
	Value      int16 `json:"value" validate:"min=-32766,max=32767"`
	Confidence uint8 `json:"confidence" validate:"max=8"`
}

// BasicVehicleContainerLowFrequency holds slow-changing vehicle attributes
type BasicVehicleContainerLowFrequency struct {
	VehicleRole    uint8 `json:"vehicle_role" validate:"max=15"`
	ExteriorLights uint8 `json:"exterior_lights"`
}
