package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/orbit-facilities/console/internal/api/handler"
	"github.com/orbit-facilities/console/internal/api/middleware"
	"github.com/orbit-facilities/console/internal/api/view"
	"github.com/orbit-facilities/console/internal/core/ports"
)

// Deps collects everything the router wires into handlers.
type Deps struct {
	Sessions  ports.SessionController
	Auth      ports.AuthService
	Rooms     ports.RoomService
	Equipment ports.EquipmentService
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all screens registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("console"))
	e.Use(middleware.Session(d.Sessions, d.Log))
	e.Use(middleware.Guard())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Sessions, d.Log)
	dashboardHandler := handler.NewDashboardHandler(d.Rooms, d.Equipment, d.Log)
	roomHandler := handler.NewRoomHandler(d.Rooms, d.Log)
	equipmentHandler := handler.NewEquipmentHandler(d.Equipment, d.Log)

	credentialLimit := middleware.RateLimit(rate.Limit(5), 10)

	// --- Screens ---
	// "/" is fully handled by the guard; the handler below is the fallback
	// target and matches the guard's anonymous decision.
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/login")
	})

	e.GET("/login", authHandler.LoginScreen)
	e.POST("/login", authHandler.Login, credentialLimit)
	e.GET("/registration", authHandler.SignUpScreen)
	e.POST("/registration", authHandler.SignUp, credentialLimit)
	e.POST("/logout", authHandler.Logout)

	e.GET("/dashboard", dashboardHandler.Show)
	e.POST("/dashboard/rooms", roomHandler.Create)
	e.POST("/dashboard/rooms/:id", roomHandler.Update)
	e.POST("/dashboard/rooms/:id/delete", roomHandler.Delete)
	e.POST("/dashboard/equipment", equipmentHandler.Create)
	e.POST("/dashboard/equipment/:id", equipmentHandler.Update)
	e.POST("/dashboard/equipment/:id/delete", equipmentHandler.Delete)

	// --- Operational endpoints (unguarded) ---
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
