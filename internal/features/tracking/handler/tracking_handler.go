package handler

import (
	"errors"
	"strings"

	"courier-tracker/internal/core/logger"
	"courier-tracker/internal/features/tracking/ports"
	"courier-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for tracking operations.
type TrackingHandler struct {
	trackingService ports.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// RegisterRoutes mounts the tracking routes on router.
func (h *TrackingHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/tracking/:number", h.GetTracking)
	router.Get("/tracking/:number/movement", h.GetMovement)
}

// GetTracking godoc
// @Summary Get the reconciled tracking view of a shipment
// @Description Looks the shipment up by consignment number or booking reference across the tracking, medicine and customer stores and rebuilds its step timeline and movement history
// @Tags tracking
// @Produce json
// @Param number path string true "Consignment number or booking reference"
// @Success 200 {object} domain.TrackingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tracking/{number} [get]
func (h *TrackingHandler) GetTracking(c *fiber.Ctx) error {
	number := strings.TrimSpace(c.Params("number"))
	if number == "" {
		return respondError(c, fiber.StatusBadRequest, "tracking number is required")
	}

	resp, err := h.trackingService.GetTracking(c.UserContext(), number)
	if err != nil {
		return h.handleError(c, number, err)
	}

	return c.JSON(resp)
}

// GetMovement godoc
// @Summary Get the movement history of a shipment
// @Description Returns the deduplicated, chronologically sorted movement events of a shipment
// @Tags tracking
// @Produce json
// @Param number path string true "Consignment number or booking reference"
// @Success 200 {object} domain.MovementSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tracking/{number}/movement [get]
func (h *TrackingHandler) GetMovement(c *fiber.Ctx) error {
	number := strings.TrimSpace(c.Params("number"))
	if number == "" {
		return respondError(c, fiber.StatusBadRequest, "tracking number is required")
	}

	summary, err := h.trackingService.GetMovement(c.UserContext(), number)
	if err != nil {
		return h.handleError(c, number, err)
	}

	return c.JSON(summary)
}

func (h *TrackingHandler) handleError(c *fiber.Ctx, number string, err error) error {
	if errors.Is(err, service.ErrShipmentNotFound) {
		return respondError(c, fiber.StatusNotFound, "shipment not found")
	}

	logger.Get().Error("Failed to get tracking",
		zap.String("number", number),
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)
	return respondError(c, fiber.StatusInternalServerError, "internal server error")
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID(c),
	})
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
