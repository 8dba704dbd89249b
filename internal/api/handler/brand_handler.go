package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/perfumehub/catalog-system/internal/core/ports"
)

// BrandHandler handles brand CRUD requests.
type BrandHandler struct {
	service ports.BrandService
}

func NewBrandHandler(service ports.BrandService) *BrandHandler {
	return &BrandHandler{service: service}
}

// List handles GET /api/brands — public.
//
// @Summary      List all brands
// @Tags         brands
// @Produce      json
// @Success      200  {array}  domain.Brand
// @Router       /api/brands [get]
func (h *BrandHandler) List(c echo.Context) error {
	brands, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brands)
}

// Create handles POST /api/brands — admin only.
//
// @Summary      Create a brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      brandRequest  true  "Brand name"
// @Success      201   {object}  domain.Brand
// @Failure      403   {object}  errorResponse
// @Router       /api/brands [post]
func (h *BrandHandler) Create(c echo.Context) error {
	var req brandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), principal(c), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/brands/:id — admin only.
//
// @Summary      Rename a brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Brand id"
// @Param        body  body      brandRequest  true  "Brand name"
// @Success      200   {object}  domain.Brand
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/brands/{id} [put]
func (h *BrandHandler) Update(c echo.Context) error {
	var req brandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), principal(c), c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/brands/:id — admin only; refused while any
// perfume references the brand.
//
// @Summary      Delete a brand
// @Tags         brands
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Brand id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/brands/{id} [delete]
func (h *BrandHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), principal(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "brand deleted"})
}
