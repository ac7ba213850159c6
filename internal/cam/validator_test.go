package cam_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/smartcity/castation/internal/cam"
	"github.com/smartcity/castation/internal/domain"
)

func validMessage(t *testing.T) *domain.CAM {
	t.Helper()
	msg, err := cam.NewBuilder(cam.DefaultBuilderConfig(), nil).Build(testSnapshot(), 99, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return msg
}

func TestValidatorRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*domain.CAM)
		wantField string
	}{
		{"heading out of range", func(m *domain.CAM) { m.HighFrequency.Heading.Value = 4000 }, "Heading.Value"},
		{"heading 3600", func(m *domain.CAM) { m.HighFrequency.Heading.Value = 3600 }, "Heading.Value"},
		{"zero heading confidence", func(m *domain.CAM) { m.HighFrequency.Heading.Confidence = 0 }, "Heading.Confidence"},
		{"latitude beyond pole", func(m *domain.CAM) { m.Basic.ReferencePosition.Latitude = 900000002 }, "Latitude"},
		{"acceleration below range", func(m *domain.CAM) { m.HighFrequency.LongitudinalAcceleration.Value = -161 }, "LongitudinalAcceleration.Value"},
		{"zero vehicle width", func(m *domain.CAM) { m.HighFrequency.VehicleWidth = 0 }, "VehicleWidth"},
		{"wrong message id", func(m *domain.CAM) { m.Header.MessageID = 1 }, "MessageID"},
		{"future protocol", func(m *domain.CAM) { m.Header.ProtocolVersion = 9 }, "ProtocolVersion"},
		{"drive direction", func(m *domain.CAM) { m.HighFrequency.DriveDirection = 3 }, "DriveDirection"},
		{"vehicle role", func(m *domain.CAM) { m.LowFrequency.VehicleRole = 16 }, "VehicleRole"},
	}

	v := cam.NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := validMessage(t)
			tt.mutate(msg)

			err := v.Validate(msg)
			var verr *cam.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *cam.ValidationError, got %v", err)
			}
			if !strings.Contains(verr.Reason, tt.wantField) {
				t.Errorf("reason %q does not mention %s", verr.Reason, tt.wantField)
			}
		})
	}
}

func TestValidatorAcceptsBuilderOutput(t *testing.T) {
	t.Parallel()

	if err := cam.NewValidator().Validate(validMessage(t)); err != nil {
		t.Errorf("builder output rejected: %v", err)
	}
}

func TestValidatorNilMessage(t *testing.T) {
	t.Parallel()

	if err := cam.NewValidator().Validate(nil); err == nil {
		t.Error("nil message accepted")
	}
}
