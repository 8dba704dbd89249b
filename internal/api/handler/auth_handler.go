package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/perfumehub/catalog-system/internal/api/metrics"
	"github.com/perfumehub/catalog-system/internal/api/middleware"
	"github.com/perfumehub/catalog-system/internal/core/domain"
	"github.com/perfumehub/catalog-system/internal/core/ports"
)

// AuthHandler serves both authentication modes: bearer tokens for the JSON
// API and cookie sessions for the rendered-page surface.
type AuthHandler struct {
	authService ports.AuthService
	sessionTTL  time.Duration
}

func NewAuthHandler(authService ports.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, sessionTTL: sessionTTL}
}

type authResponse struct {
	Token  string                `json:"token,omitempty"`
	Member *domain.MemberSummary `json:"member,omitempty"`
}

// Register creates a new member account and returns a bearer token.
//
// @Summary      Register a new member
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Member registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, token, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		YearOfBirth: req.YearOfBirth,
		Gender:      req.Gender,
	})
	if err != nil {
		return err
	}

	metrics.MembersRegisteredTotal.Inc()
	summary := member.Summary()
	return c.JSON(http.StatusCreated, authResponse{Token: token, Member: &summary})
}

// Login authenticates a member and returns a bearer token.
//
// @Summary      Login (token mode)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	member, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("token").Inc()
	summary := member.Summary()
	return c.JSON(http.StatusOK, authResponse{Token: token, Member: &summary})
}

// SessionLogin authenticates a member and sets a session cookie.
//
// @Summary      Login (session mode)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Router       /session/login [post]
func (h *AuthHandler) SessionLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	summary, handle, err := h.authService.LoginSession(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    handle,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.sessionTTL.Seconds()),
	})

	metrics.LoginsTotal.WithLabelValues("session").Inc()
	return c.JSON(http.StatusOK, authResponse{Member: summary})
}

// Logout acknowledges a token-mode logout. Bearer tokens are stateless and
// stay valid until expiry; any session cookie presented alongside is
// destroyed as well.
//
// @Summary      Logout (token mode)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return h.SessionLogout(c)
}

// SessionLogout destroys the session and clears the cookie. Idempotent:
// logging out without a live session still succeeds.
//
// @Summary      Logout (session mode)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /session/logout [post]
func (h *AuthHandler) SessionLogout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	return c.JSON(http.StatusOK, map[string]string{"message": "logout successful"})
}
