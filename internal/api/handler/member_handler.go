package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/perfumehub/catalog-system/internal/core/ports"
)

// MemberHandler handles member account operations.
type MemberHandler struct {
	service ports.MemberService
}

func NewMemberHandler(service ports.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

type updateProfileRequest struct {
	Name        string `json:"name"   validate:"required"`
	YearOfBirth int    `json:"yob"    validate:"required"`
	Gender      bool   `json:"gender"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

// List handles GET /api/members — admin-only member listing. Password
// hashes never appear in the projection.
//
// @Summary      List all members
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Member
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/members [get]
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.service.List(c.Request().Context(), principal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// UpdateProfile handles PUT /api/members/:id — self or admin. Email and
// password cannot be changed through this operation.
//
// @Summary      Update a member profile
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Member id"
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.Member
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/members/{id} [put]
func (h *MemberHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.service.UpdateProfile(c.Request().Context(), principal(c), c.Param("id"), ports.MemberUpdate{
		Name:        req.Name,
		YearOfBirth: req.YearOfBirth,
		Gender:      req.Gender,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// ChangePassword handles PUT /api/members/password — the caller changes
// their own password after proving the current one.
//
// @Summary      Change own password
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/members/password [put]
func (h *MemberHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.ChangePassword(c.Request().Context(), principal(c), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "password changed"})
}

// MyReviews handles GET /api/members/reviews — the caller's reviews across
// all perfumes.
//
// @Summary      List own reviews
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.MyReview
// @Failure      401  {object}  errorResponse
// @Router       /api/members/reviews [get]
func (h *MemberHandler) MyReviews(c echo.Context) error {
	reviews, err := h.service.MyReviews(c.Request().Context(), principal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
