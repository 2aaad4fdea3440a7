package lifecycle

import (
	"errors"

	"supply-ledger/core/ledger"
	"supply-ledger/core/logger"
	"supply-ledger/feature/lifecycle/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for lifecycle transitions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the lifecycle routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/lifecycle")
	group.Post("/ready", h.HandleReady)
	group.Post("/bid", h.HandleBid)
	group.Post("/sale", h.HandleSale)
	group.Post("/shipping", h.HandleShipping)
	group.Post("/delivery", h.HandleDelivery)
}

// HandleReady clears a batch of items for auction.
// @Summary Ready For Auction
// @Description Clear a batch of chipped and digitized items for auction. All-or-nothing.
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param batch body models.BatchRequest true "Item ids"
// @Success 204 "Cleared"
// @Failure 409 {object} map[string]string "Ineligible Item"
// @Router /lifecycle/ready [post]
func (h *Handler) HandleReady(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.Ready(req.ItemIDs); err != nil {
		l.Warn("Ready batch rejected", zap.Uint64s("item_ids", req.ItemIDs), zap.Error(err))
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleBid records accepted bids.
// @Summary Set Bid Status
// @Description Record accepted bids on a batch of auction-ready items. All-or-nothing; a false flag rejects the batch.
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param batch body models.FlaggedBatchRequest true "Item ids and flags"
// @Success 204 "Recorded"
// @Failure 409 {object} map[string]string "Ineligible Item"
// @Router /lifecycle/bid [post]
func (h *Handler) HandleBid(c *fiber.Ctx) error {
	return h.flagged("bid", h.service.Bid)(c)
}

// HandleSale records completed sales.
// @Summary Set Sale Status
// @Description Record completed sales on a batch of bidded items. All-or-nothing; a false flag rejects the batch.
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param batch body models.FlaggedBatchRequest true "Item ids and flags"
// @Success 204 "Recorded"
// @Failure 409 {object} map[string]string "Ineligible Item"
// @Router /lifecycle/sale [post]
func (h *Handler) HandleSale(c *fiber.Ctx) error {
	return h.flagged("sale", h.service.Sale)(c)
}

// HandleShipping records warehouse departures.
// @Summary Set Shipping Status
// @Description Record warehouse departures on a batch of sold items, moving them in transit. All-or-nothing.
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param batch body models.FlaggedBatchRequest true "Item ids and flags"
// @Success 204 "Recorded"
// @Failure 409 {object} map[string]string "Ineligible Item"
// @Router /lifecycle/shipping [post]
func (h *Handler) HandleShipping(c *fiber.Ctx) error {
	return h.flagged("shipping", h.service.Shipping)(c)
}

// HandleDelivery records delivery outcomes.
// @Summary Set Delivery Status
// @Description Record delivery outcomes on a batch of shipped items. A true flag places the item with the buyer, a false flag leaves it in transit.
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param batch body models.FlaggedBatchRequest true "Item ids and flags"
// @Success 204 "Recorded"
// @Failure 409 {object} map[string]string "Ineligible Item"
// @Router /lifecycle/delivery [post]
func (h *Handler) HandleDelivery(c *fiber.Ctx) error {
	return h.flagged("delivery", h.service.Delivery)(c)
}

// flagged builds the shared handler of the flag-carrying transitions.
func (h *Handler) flagged(op string, apply func([]uint64, []bool) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(h.service.logger, c)

		var req models.FlaggedBatchRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		if err := apply(req.ItemIDs, req.Flags); err != nil {
			l.Warn("Batch rejected",
				zap.String("transition", op),
				zap.Uint64s("item_ids", req.ItemIDs),
				zap.Error(err),
			)
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// respondError maps ledger errors to HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ledger.ErrItemNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ledger.ErrParity):
		status = fiber.StatusBadRequest
	case errors.Is(err, ledger.ErrCapacityExceeded), errors.Is(err, ledger.ErrIneligibleTransition):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
