package items

import (
	"errors"

	"supply-ledger/core/ledger"
	"supply-ledger/core/logger"
	"supply-ledger/feature/items/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for items.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the item routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/items")
	group.Post("/", h.HandleMintItem)
	group.Get("/:id", h.HandleGetItem)
	group.Get("/:id/variants", h.HandleGetVariants)
	group.Get("/:id/owner", h.HandleGetOwner)
	group.Get("/:id/metadata", h.HandleGetMetadata)
	group.Patch("/:id", h.HandleUpdateItem)
	group.Delete("/:id", h.HandleBurnItem)
}

// HandleMintItem mints one serialized unit.
// @Summary Mint Item
// @Description Mint one serialized unit of a product, consuming one unit of stock per matched variant label.
// @Tags items
// @Accept json
// @Produce json
// @Param item body models.MintItemRequest true "Mint request"
// @Success 201 {object} models.MintedResponse "Minted"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 409 {object} map[string]string "Out Of Stock"
// @Router /items [post]
func (h *Handler) HandleMintItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.MintItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	location, err := parseLocation(req.Location)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := h.service.Mint(c.Context(), req, location)
	if err != nil {
		l.Warn("Mint rejected", zap.Uint64("product_id", req.ProductID), zap.Error(err))
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.MintedResponse{ID: id})
}

// HandleGetItem reads one item.
// @Summary Get Item
// @Description Read an item with its lifecycle state and derived flags.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.ItemResponse "Item"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /items/{id} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	id, ok := itemID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item id"})
	}
	it, err := h.service.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(it)
}

// HandleGetVariants reads the variant labels of one item.
// @Summary Get Item Variants
// @Description Read the variant labels an item was minted with.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.VariantsResponse "Variants"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /items/{id}/variants [get]
func (h *Handler) HandleGetVariants(c *fiber.Ctx) error {
	id, ok := itemID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item id"})
	}
	variants, err := h.service.Variants(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.VariantsResponse{Variants: variants})
}

// HandleGetOwner reads the canonical holder of one item.
// @Summary Get Item Owner
// @Description Re-read the canonical holder from the asset registry and return it.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.OwnerResponse "Owner"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /items/{id}/owner [get]
func (h *Handler) HandleGetOwner(c *fiber.Ctx) error {
	id, ok := itemID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item id"})
	}
	owner, err := h.service.Owner(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.OwnerResponse{Owner: owner})
}

// HandleGetMetadata reads the stored metadata document of one item.
// @Summary Get Item Metadata
// @Description Read the free-form metadata document stored for an item.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} object "Metadata"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /items/{id}/metadata [get]
func (h *Handler) HandleGetMetadata(c *fiber.Ctx) error {
	id, ok := itemID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item id"})
	}
	doc, err := h.service.Metadata(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(doc)
}

// HandleUpdateItem applies the administrative fields of an item.
// @Summary Update Item
// @Description Update price, location and the operator-set attributes of an item. Lifecycle state is untouched.
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body models.UpdateItemRequest true "Update request"
// @Success 204 "Updated"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /items/{id} [patch]
func (h *Handler) HandleUpdateItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, ok := itemID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item id"})
	}

	var req models.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	location, err := parseLocation(req.Location)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.Update(id, req, location); err != nil {
		l.Warn("Item update rejected", zap.Uint64("item_id", id), zap.Error(err))
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleBurnItem destroys one item.
// @Summary Burn Item
// @Description Destroy an item, returning its slot stock to the catalog and removing it from the asset registry.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 204 "Burned"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Conflict"
// @Router /items/{id} [delete]
func (h *Handler) HandleBurnItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, ok := itemID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item id"})
	}
	if err := h.service.Burn(c.Context(), id); err != nil {
		l.Warn("Burn rejected", zap.Uint64("item_id", id), zap.Error(err))
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// itemID parses the id path parameter.
func itemID(c *fiber.Ctx) (uint64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return uint64(id), true
}

// parseLocation maps the request's location name to its enum value; an empty
// name defaults to the seller.
func parseLocation(name string) (ledger.Location, error) {
	if name == "" {
		return ledger.LocationSeller, nil
	}
	return ledger.ParseLocation(name)
}

// respondError maps ledger errors to HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ledger.ErrProductNotFound), errors.Is(err, ledger.ErrItemNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ledger.ErrParity), errors.Is(err, ledger.ErrInvalidInventoryCount), errors.Is(err, ledger.ErrVariantMismatch):
		status = fiber.StatusBadRequest
	case errors.Is(err, ledger.ErrCapacityExceeded), errors.Is(err, ledger.ErrIneligibleTransition):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
