package cam

import (
	"errors"
	"fmt"

	"github.com/smartcity/castation/internal/domain"
)

// ErrNotCAM is returned when a payload decodes but is not a CAM
var ErrNotCAM = errors.New("cam: payload is not a cooperative awareness message")

// Encode serializes a CAM to its wire form
func Encode(msg *domain.CAM) ([]byte, error) {
	out, err := msg.MarshalMsg(nil)
	if err != nil {
		return nil, fmt.Errorf("cam: failed to encode message: %w", err)
	}
	return out, nil
}

// Decode parses a wire payload. It only interprets the bytes; schema
// validity is checked separately by a Validator.
func Decode(payload []byte) (*domain.CAM, error) {
	var msg domain.CAM
	rest, err := msg.UnmarshalMsg(payload)
	if err != nil {
		return nil, fmt.Errorf("cam: failed to decode payload: %w", err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("cam: failed to decode payload: %d trailing bytes", len(rest))
	}
	if msg.Header.MessageID != domain.MessageIDCAM {
		return nil, ErrNotCAM
	}
	return &msg, nil
}
