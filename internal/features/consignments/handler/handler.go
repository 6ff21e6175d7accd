package handler

import (
	"net/http"

	"courier-tracker/internal/core/logger"
	"courier-tracker/internal/features/consignments/domain"
	"courier-tracker/internal/features/consignments/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConsignmentHandler handles HTTP requests for consignment numbers.
type ConsignmentHandler struct {
	service ports.AllocatorService
}

// NewConsignmentHandler creates a new ConsignmentHandler.
func NewConsignmentHandler(service ports.AllocatorService) *ConsignmentHandler {
	return &ConsignmentHandler{
		service: service,
	}
}

// RegisterRoutes mounts the consignment routes on router.
func (h *ConsignmentHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/consignments", h.Allocate)
	router.Get("/consignments/current", h.Current)
}

// Allocate handles POST /consignments.
// @Summary Allocate a consignment number
// @Description Issues the next globally unique consignment number. The counter is first raised above every number held by live and legacy collections.
// @Tags Consignments
// @Produce json
// @Success 201 {object} domain.Allocation
// @Failure 503 {object} map[string]string
// @Router /consignments [post]
func (h *ConsignmentHandler) Allocate(c *fiber.Ctx) error {
	next, err := h.service.NextID(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to allocate consignment number", zap.Error(err))
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Consignment number could not be allocated",
		})
	}

	return c.Status(http.StatusCreated).JSON(domain.Allocation{ConsignmentNumber: next})
}

// Current handles GET /consignments/current.
// @Summary Get the consignment counter
// @Description Returns the last consignment number issued without allocating a new one.
// @Tags Consignments
// @Produce json
// @Success 200 {object} domain.Sequence
// @Failure 500 {object} map[string]string
// @Router /consignments/current [get]
func (h *ConsignmentHandler) Current(c *fiber.Ctx) error {
	seq, err := h.service.Current(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to read consignment counter", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(seq)
}
