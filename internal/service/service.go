// Package service holds the cooperative awareness application logic:
// CAM generation triggering, the send path and the reception path.
package service

import "github.com/smartcity/castation/internal/domain"

// AwarenessRepository is re-exported from domain for convenience
type AwarenessRepository = domain.AwarenessRepository

var _ domain.KinematicSource = (*VehicleService)(nil)
