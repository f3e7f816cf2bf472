package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orbit-facilities/console/internal/api/metrics"
	"github.com/orbit-facilities/console/internal/api/middleware"
	"github.com/orbit-facilities/console/internal/api/view"
	"github.com/orbit-facilities/console/internal/core/domain"
	"github.com/orbit-facilities/console/internal/core/ports"
	"github.com/orbit-facilities/console/internal/infrastructure/backend"
)

const (
	msgLoginFailed   = "Login failed. Please check your credentials."
	msgSignupFailed  = "Signup failed. Please try again."
	msgBackendDown   = "The backend is not reachable. Please try again."
	noticeRegistered = "Registration successful. Please log in."
	registeredQuery  = "registered"
)

// AuthHandler serves the login and sign-up screens and owns the only two
// session transitions: login and logout.
type AuthHandler struct {
	auth     ports.AuthService
	sessions ports.SessionController
	log      zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionController, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, log: log}
}

func (h *AuthHandler) LoginScreen(c echo.Context) error {
	data := view.LoginData{}
	if c.QueryParam(registeredQuery) == "1" {
		data.Notice = noticeRegistered
	}
	return c.Render(http.StatusOK, "login", data)
}

// Login exchanges the form credentials for a token and, on success, persists
// it and redirects to the dashboard. A backend 401 re-renders the screen with
// an error; the session stays unauthenticated and nothing is persisted.
func (h *AuthHandler) Login(c echo.Context) error {
	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.Render(http.StatusBadRequest, "login", view.LoginData{Error: msgLoginFailed})
	}
	if err := c.Validate(creds); err != nil {
		return c.Render(http.StatusBadRequest, "login", view.LoginData{Error: err.Error()})
	}

	pair, err := h.auth.Login(c.Request().Context(), creds)
	if err != nil {
		if backend.StatusOf(err) == http.StatusUnauthorized {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return c.Render(http.StatusUnauthorized, "login", view.LoginData{Error: msgLoginFailed})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Msg("login call failed")
		return c.Render(http.StatusBadGateway, "login", view.LoginData{Error: msgBackendDown})
	}

	_, cookie, err := h.sessions.Login(c.Request().Context(), pair.Access)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Msg("session create failed")
		return c.Render(http.StatusInternalServerError, "login", view.LoginData{Error: msgLoginFailed})
	}
	c.SetCookie(cookie)

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) SignUpScreen(c echo.Context) error {
	return c.Render(http.StatusOK, "signup", view.SignUpData{})
}

// SignUp validates the form locally first: a password mismatch never issues a
// network call. On success the user is bounced to the login screen.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var reg domain.Registration
	if err := c.Bind(&reg); err != nil {
		return c.Render(http.StatusBadRequest, "signup", view.SignUpData{Error: msgSignupFailed})
	}
	if err := c.Validate(reg); err != nil {
		return c.Render(http.StatusBadRequest, "signup", view.SignUpData{Error: err.Error(), Form: reg})
	}

	if err := h.auth.Register(c.Request().Context(), reg); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Msg("register call failed")
		return c.Render(http.StatusBadGateway, "signup", view.SignUpData{Error: msgSignupFailed, Form: reg})
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusSeeOther, "/login?"+registeredQuery+"=1")
}

// Logout clears the token and expires the cookie. Logging out twice, or
// without a session, succeeds the same way.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	cookie, err := h.sessions.Logout(c.Request().Context(), sess.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("logout failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "logout failed")
	}
	c.SetCookie(cookie)

	return c.Redirect(http.StatusSeeOther, "/login")
}
