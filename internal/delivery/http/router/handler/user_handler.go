// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"ladle/config"
	"ladle/internal/delivery/http/middleware"
	"ladle/internal/delivery/http/response"
	"ladle/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the account and session endpoints.
type UserHandler struct {
	uc  usecase.UserUsecase
	cfg *config.Config
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, cfg *config.Config) *UserHandler {
	return &UserHandler{uc: uc, cfg: cfg}
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// signupFieldMessages maps signup validation failures onto the messages
// clients display verbatim.
var signupFieldMessages = map[string]string{
	"Username": "Username is required",
	"Password": "Password is required",
}

// Signup handles POST /signup.
func (h *UserHandler) Signup(c echo.Context) error {
	var input signupRequest
	if err := c.Bind(&input); err != nil {
		return response.Errors(c, http.StatusUnprocessableEntity, []string{"Invalid signup input"})
	}

	if err := c.Validate(&input); err != nil {
		return response.Errors(c, http.StatusUnprocessableEntity, fieldMessages(err, signupFieldMessages))
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Username: input.Username,
		Password: input.Password,
		ImageURL: input.ImageURL,
		Bio:      input.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken)

	return c.JSON(http.StatusCreated, response.NewUser(output.User))
}

// Login handles POST /login.
func (h *UserHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusUnauthorized, "Invalid username or password")
	}

	// A request missing either credential can never authenticate; it gets
	// the same 401 body as a failed credential check.
	if err := c.Validate(&input); err != nil {
		return response.Error(c, http.StatusUnauthorized, "Invalid username or password")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken)

	return c.JSON(http.StatusOK, response.NewUser(output.User))
}

// Logout handles DELETE /logout. The route sits behind Authenticate, so a
// missing session never reaches here.
func (h *UserHandler) Logout(c echo.Context) error {
	token, ok := middleware.CurrentSessionToken(c)
	if !ok {
		return response.Unauthorized(c)
	}

	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookie(c)

	return c.NoContent(http.StatusNoContent)
}

// CheckSession handles GET /check_session. It does its own cookie lookup
// because a token bound to a deleted user must answer exactly like a
// missing session.
func (h *UserHandler) CheckSession(c echo.Context) error {
	cookie, err := c.Cookie(h.cfg.Session.CookieName)
	if err != nil || cookie.Value == "" {
		return response.Unauthorized(c)
	}

	user, err := h.uc.CheckSession(c.Request().Context(), cookie.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewUser(user))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *UserHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *UserHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
