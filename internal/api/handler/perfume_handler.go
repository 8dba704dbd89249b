package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/perfumehub/catalog-system/internal/api/metrics"
	"github.com/perfumehub/catalog-system/internal/core/domain"
	"github.com/perfumehub/catalog-system/internal/core/ports"
)

// PerfumeHandler handles catalog and review submission requests.
type PerfumeHandler struct {
	perfumes ports.PerfumeService
	reviews  ports.ReviewService
}

func NewPerfumeHandler(perfumes ports.PerfumeService, reviews ports.ReviewService) *PerfumeHandler {
	return &PerfumeHandler{perfumes: perfumes, reviews: reviews}
}

// List handles GET /api/perfumes — public catalog listing.
//
// @Summary      List all perfumes
// @Tags         perfumes
// @Produce      json
// @Success      200  {array}  domain.Perfume
// @Router       /api/perfumes [get]
func (h *PerfumeHandler) List(c echo.Context) error {
	perfumes, err := h.perfumes.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, perfumes)
}

// Get handles GET /api/perfumes/:id.
//
// @Summary      Get a perfume with its reviews
// @Tags         perfumes
// @Produce      json
// @Param        id   path      string  true  "Perfume id"
// @Success      200  {object}  domain.Perfume
// @Failure      404  {object}  errorResponse
// @Router       /api/perfumes/{id} [get]
func (h *PerfumeHandler) Get(c echo.Context) error {
	p, err := h.perfumes.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Search handles GET /api/perfumes/search?q= — case-insensitive name match.
//
// @Summary      Search perfumes by name
// @Tags         perfumes
// @Produce      json
// @Param        q    query     string  true  "Search query"
// @Success      200  {array}   domain.Perfume
// @Failure      400  {object}  errorResponse
// @Router       /api/perfumes/search [get]
func (h *PerfumeHandler) Search(c echo.Context) error {
	perfumes, err := h.perfumes.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, perfumes)
}

// FilterByBrand handles GET /api/perfumes/filter?brand=.
//
// @Summary      Filter perfumes by brand name
// @Tags         perfumes
// @Produce      json
// @Param        brand  query     string  true  "Brand name"
// @Success      200    {array}   domain.Perfume
// @Failure      400    {object}  errorResponse
// @Router       /api/perfumes/filter [get]
func (h *PerfumeHandler) FilterByBrand(c echo.Context) error {
	perfumes, err := h.perfumes.FilterByBrand(c.Request().Context(), c.QueryParam("brand"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, perfumes)
}

// Create handles POST /api/perfumes — admin only.
//
// @Summary      Create a perfume
// @Tags         perfumes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      perfumeRequest  true  "Perfume details"
// @Success      201   {object}  domain.Perfume
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/perfumes [post]
func (h *PerfumeHandler) Create(c echo.Context) error {
	var req perfumeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.perfumes.Create(c.Request().Context(), principal(c), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/perfumes/:id — admin only. The embedded review
// list is never touched by catalog updates.
//
// @Summary      Update a perfume
// @Tags         perfumes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Perfume id"
// @Param        body  body      perfumeRequest  true  "Perfume details"
// @Success      200   {object}  domain.Perfume
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/perfumes/{id} [put]
func (h *PerfumeHandler) Update(c echo.Context) error {
	var req perfumeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.perfumes.Update(c.Request().Context(), principal(c), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/perfumes/:id — admin only. Embedded reviews
// are removed with their parent.
//
// @Summary      Delete a perfume
// @Tags         perfumes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Perfume id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/perfumes/{id} [delete]
func (h *PerfumeHandler) Delete(c echo.Context) error {
	if err := h.perfumes.Delete(c.Request().Context(), principal(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "perfume deleted"})
}

// SubmitReview handles POST /api/perfumes/:id/reviews — one review per
// member per perfume.
//
// @Summary      Submit a review
// @Tags         perfumes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Perfume id"
// @Param        body  body      reviewRequest  true  "Rating and content"
// @Success      201   {object}  domain.Review
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/perfumes/{id}/reviews [post]
func (h *PerfumeHandler) SubmitReview(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	review, err := h.reviews.Submit(c.Request().Context(), principal(c), c.Param("id"), req.Rating, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateReview):
			metrics.ReviewsRejectedTotal.WithLabelValues("duplicate").Inc()
		case errors.Is(err, domain.ErrInvalidReview):
			metrics.ReviewsRejectedTotal.WithLabelValues("invalid").Inc()
		case errors.Is(err, domain.ErrPerfumeNotFound):
			metrics.ReviewsRejectedTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}

	metrics.ReviewsSubmittedTotal.WithLabelValues(strconv.Itoa(review.Rating)).Inc()
	return c.JSON(http.StatusCreated, review)
}
