package cam

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/smartcity/castation/internal/domain"
)

// ValidationError reports why a CAM violates the schema
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "cam: invalid message: " + e.Reason
}

// Validator checks CAMs against the schema's structural and range rules
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the CAM rules registered
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterStructValidation(camStructLevel, domain.CAM{})
	return &Validator{validate: v}
}

// Validate returns nil for a schema-valid message and a *ValidationError otherwise
func (v *Validator) Validate(msg *domain.CAM) error {
	if msg == nil {
		return &ValidationError{Reason: "nil message"}
	}

	err := v.validate.Struct(msg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Reason: err.Error()}
	}

	reasons := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			reasons = append(reasons, fmt.Sprintf("%s: %v violates %s=%s", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param()))
		} else {
			reasons = append(reasons, fmt.Sprintf("%s: %v violates %s", fe.Namespace(), fe.Value(), fe.Tag()))
		}
	}
	return &ValidationError{Reason: strings.Join(reasons, "; ")}
}

// camStructLevel holds the rules spanning several fields
func camStructLevel(sl validator.StructLevel) {
	msg := sl.Current().Interface().(domain.CAM)

	if msg.Header.ProtocolVersion > domain.ProtocolVersionCurrent {
		sl.ReportError(msg.Header.ProtocolVersion, "Header.ProtocolVersion", "ProtocolVersion", "supported", "")
	}

	// 3600 is not a compass direction; the encoders wrap it to 0
	if msg.HighFrequency.Heading.Value == 3600 {
		sl.ReportError(msg.HighFrequency.Heading.Value, "HighFrequency.Heading.Value", "Value", "heading", "")
	}
}
