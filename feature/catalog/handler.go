package catalog

import (
	"errors"

	"supply-ledger/core/ledger"
	"supply-ledger/core/logger"
	"supply-ledger/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/products")
	group.Post("/", h.HandleCreateProduct)
	group.Get("/next-id", h.HandleNextProductID)
	group.Get("/:id", h.HandleGetProduct)
	group.Put("/:id", h.HandleUpdateProduct)
}

// HandleCreateProduct creates a catalog entry.
// @Summary Create Product
// @Description Create a product with variant labels and per-label stock.
// @Tags catalog
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product definition"
// @Success 201 {object} models.CreatedResponse "Created"
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /products [post]
func (h *Handler) HandleCreateProduct(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	id, err := h.service.CreateProduct(req)
	if err != nil {
		l.Warn("Product creation rejected", zap.Error(err))
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.CreatedResponse{ID: id})
}

// HandleUpdateProduct replaces a product wholesale.
// @Summary Update Product
// @Description Replace a product's name, variant labels and stock. Buckets are untouched.
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.ProductRequest true "Product definition"
// @Success 204 "Updated"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /products/{id} [put]
func (h *Handler) HandleUpdateProduct(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.UpdateProduct(uint64(id), req); err != nil {
		l.Warn("Product update rejected", zap.Uint64("product_id", uint64(id)), zap.Error(err))
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetProduct reads one product.
// @Summary Get Product
// @Description Read a product with its stock and inventory buckets.
// @Tags catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ProductResponse "Product"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /products/{id} [get]
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	p, err := h.service.GetProduct(uint64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// HandleNextProductID reads the id counter.
// @Summary Next Product ID
// @Description Read the id the next created product will receive.
// @Tags catalog
// @Produce json
// @Success 200 {object} models.NextIDResponse "Counter"
// @Router /products/next-id [get]
func (h *Handler) HandleNextProductID(c *fiber.Ctx) error {
	return c.JSON(models.NextIDResponse{NextProductID: h.service.NextProductID()})
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
