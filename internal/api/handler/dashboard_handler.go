package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orbit-facilities/console/internal/api/middleware"
	"github.com/orbit-facilities/console/internal/api/view"
	"github.com/orbit-facilities/console/internal/core/ports"
	"github.com/orbit-facilities/console/internal/core/service"
)

const (
	SectionRooms     = "Rooms"
	SectionEquipment = "Equipment"
)

// flashMessages maps the fixed error codes the form handlers redirect with
// to banner text. Codes, not free text, travel in the query string.
var flashMessages = map[string]string{
	"room_create":      "Creating the room failed.",
	"room_update":      "Updating the room failed.",
	"room_delete":      "Deleting the room failed.",
	"equipment_create": "Creating the equipment failed.",
	"equipment_update": "Updating the equipment failed.",
	"equipment_delete": "Deleting the equipment failed.",
	"load":             "Loading data from the backend failed.",
}

// DashboardHandler renders the dashboard: top bar, sidebar section
// selection, and the room/equipment tables. Collections are fetched fresh on
// every request and never cached across screens.
type DashboardHandler struct {
	rooms     ports.RoomService
	equipment ports.EquipmentService
	log       zerolog.Logger
}

func NewDashboardHandler(rooms ports.RoomService, equipment ports.EquipmentService, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{rooms: rooms, equipment: equipment, log: log}
}

func (h *DashboardHandler) Show(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	ctx := c.Request().Context()

	data := view.DashboardData{
		Username: service.DisplayName(sess.Token),
		Section:  section(c),
	}
	if code := c.QueryParam("err"); code != "" {
		if msg, ok := flashMessages[code]; ok {
			data.Error = msg
		} else {
			data.Error = "The last action failed."
		}
	}

	// A backend failure on either collection shows a banner instead of
	// failing the screen; an invalid token is not converted into a logout.
	rooms, err := h.rooms.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch rooms")
		data.Error = flashMessages["load"]
	}
	data.Rooms = rooms

	equipment, err := h.equipment.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch equipment")
		data.Error = flashMessages["load"]
	}
	data.Equipment = equipment

	return c.Render(http.StatusOK, "dashboard", data)
}

func section(c echo.Context) string {
	if c.QueryParam("section") == SectionEquipment {
		return SectionEquipment
	}
	return SectionRooms
}
