package http

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smartcity/castation/internal/cam"
	"github.com/smartcity/castation/internal/dcc"
	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/service"
	"github.com/smartcity/castation/internal/transport"
)

// PacketSink accepts packets injected by operators
type PacketSink interface {
	Deliver(ind transport.Indication) error
}

// Handler contains all HTTP handlers
type Handler struct {
	caSvc      *service.CaService
	reception  *service.ReceptionHandler
	vehicleSvc *service.VehicleService
	repo       domain.AwarenessRepository
	channel    *dcc.Reactive
	inbound    PacketSink
}

// NewHandler creates a new handler; channel is nil when DCC runs in static mode
func NewHandler(
	caSvc *service.CaService,
	reception *service.ReceptionHandler,
	vehicleSvc *service.VehicleService,
	repo domain.AwarenessRepository,
	channel *dcc.Reactive,
	inbound PacketSink,
) *Handler {
	return &Handler{
		caSvc:      caSvc,
		reception:  reception,
		vehicleSvc: vehicleSvc,
		repo:       repo,
		channel:    channel,
		inbound:    inbound,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	store := "ok"
	if err := h.repo.Health(c.Context()); err != nil {
		log.Printf("Warning: neighbor store unhealthy: %v", err)
		store = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "castation",
		"version": "1.0.0",
		"store":   store,
	})
}

// GetStation returns generation state, reception counters and the current kinematics
func (h *Handler) GetStation(c *fiber.Ctx) error {
	data := fiber.Map{
		"generation": h.caSvc.Status(),
		"reception":  h.reception.Stats(),
		"kinematics": h.vehicleSvc.Snapshot().View(),
		"simulating": h.vehicleSvc.Simulating(),
	}
	if h.channel != nil {
		state, cbr := h.channel.State()
		data["dcc"] = fiber.Map{
			"state":    state.String(),
			"cbr":      cbr,
			"delay_ms": h.channel.Delay(dcc.DP2).Milliseconds(),
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// GetLastCAM returns the most recently emitted CAM
func (h *Handler) GetLastCAM(c *fiber.Ctx) error {
	msg := h.caSvc.LastCAM()
	if msg == nil {
		return fiber.NewError(fiber.StatusNotFound, "No CAM sent yet")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    msg,
	})
}

// UpdateVehicle sets the vehicle state from operator input
func (h *Handler) UpdateVehicle(c *fiber.Ctx) error {
	var req service.VehicleState
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.vehicleSvc.Update(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.vehicleSvc.Snapshot().View(),
	})
}

// StartSimulation drives the vehicle with a constant-acceleration motion
func (h *Handler) StartSimulation(c *fiber.Ctx) error {
	var req service.Motion
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.vehicleSvc.Simulate(&req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    req,
	})
}

// StopSimulation freezes the vehicle at its current state
func (h *Handler) StopSimulation(c *fiber.Ctx) error {
	if err := h.vehicleSvc.Simulate(nil); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to stop simulation")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type channelLoadRequest struct {
	CBR float64 `json:"cbr"`
}

// UpdateChannelLoad feeds a channel busy ratio measurement to reactive DCC
func (h *Handler) UpdateChannelLoad(c *fiber.Ctx) error {
	if h.channel == nil {
		return fiber.NewError(fiber.StatusConflict, "DCC runs in static mode")
	}

	var req channelLoadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	state, err := h.channel.UpdateChannelLoad(req.CBR)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"state":    state.String(),
			"delay_ms": h.channel.Delay(dcc.DP2).Milliseconds(),
		},
	})
}

type neighborView struct {
	domain.AwarenessRecord
	Kinematics domain.KinematicView `json:"kinematics"`
}

func newNeighborView(rec domain.AwarenessRecord) neighborView {
	return neighborView{AwarenessRecord: rec, Kinematics: cam.ToKinematics(&rec.Message).View()}
}

// GetNeighbors returns stations heard from within the last seconds
func (h *Handler) GetNeighbors(c *fiber.Ctx) error {
	ctx := c.Context()

	seconds := c.QueryInt("seconds", 10)
	if seconds < 1 || seconds > 3600 {
		seconds = 10
	}
	since := time.Now().Add(-time.Duration(seconds) * time.Second)

	records, err := h.repo.GetNeighbors(ctx, since)
	if err != nil {
		log.Printf("Failed to fetch neighbors: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch neighbors")
	}

	data := make([]neighborView, 0, len(records))
	for _, rec := range records {
		data = append(data, newNeighborView(rec))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}

// GetNeighbor returns the latest CAM of one station
func (h *Handler) GetNeighbor(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid station id")
	}

	rec, err := h.repo.GetNeighbor(c.Context(), uint32(id))
	if errors.Is(err, domain.ErrNeighborNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Neighbor not found")
	}
	if err != nil {
		log.Printf("Failed to fetch neighbor %d: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch neighbor")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    newNeighborView(rec),
	})
}

// InjectIndication queues a raw BTP payload as if it came from the radio.
// The destination port is taken from the X-Btp-Port header.
func (h *Handler) InjectIndication(c *fiber.Ctx) error {
	port := transport.PortCAM
	if raw := c.Get("X-Btp-Port"); raw != "" {
		p, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid X-Btp-Port header")
		}
		port = uint16(p)
	}

	body := c.Body()
	if len(body) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Empty payload")
	}
	payload := make([]byte, len(body))
	copy(payload, body)

	err := h.inbound.Deliver(transport.Indication{
		DestinationPort: port,
		Payload:         payload,
		ReceivedAt:      time.Now(),
	})
	if err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Inbound queue full")
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"success": true,
	})
}
