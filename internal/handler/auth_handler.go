package handler

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"invoicedash/internal/auth"
	"invoicedash/internal/errors"
	"invoicedash/internal/service"
)

const msgSomethingWentWrong = "Something went wrong."

// AuthHandler handles sign-in and sign-out.
type AuthHandler struct {
	authService  service.AuthService
	cookieName   string
	secureCookie bool
}

// NewAuthHandler creates a new auth handler. The session token travels in the
// cookie named cookieName.
func NewAuthHandler(authService service.AuthService, cookieName string, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieName:   cookieName,
		secureCookie: secureCookie,
	}
}

// LoginPage describes the sign-in form.
type LoginPage struct {
	Action string   `json:"action"`
	Fields []string `json:"fields"`
}

// LoginForm godoc
// @Summary Sign-in form
// @Tags auth
// @Produce json
// @Success 200 {object} LoginPage
// @Success 303 "Already signed in, redirects to /dashboard"
// @Router /login [get]
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, LoginPage{
		Action: "/login",
		Fields: []string{"email", "password"},
	})
}

// Login godoc
// @Summary Sign in
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password (at least 6 characters)"
// @Success 303 "Session cookie set, redirects to /dashboard"
// @Failure 401 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	form, err := formValues(c)
	if err != nil {
		return invalidForm()
	}

	session, token, err := h.authService.Authenticate(c.Request().Context(), form)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidCredentials) {
			return domainError(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: msgSomethingWentWrong,
			Code:  "LOGIN_FAILED",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, auth.NewGate().ProtectedPrefix)
}

// Logout godoc
// @Summary Sign out
// @Tags auth
// @Success 303 "Session revoked, redirects to /login"
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, _ := auth.SessionFromContext(c.Request().Context())
	if err := h.authService.SignOut(c.Request().Context(), session); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to sign out",
			Code:  "LOGOUT_FAILED",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, auth.NewGate().LoginPath)
}
