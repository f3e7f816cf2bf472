package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orbit-facilities/console/internal/core/domain"
	"github.com/orbit-facilities/console/internal/core/ports"
)

// RoomHandler proxies the dashboard's room forms to the backend. Every
// action redirects back to the rooms section (post/redirect/get); failures
// carry a fixed error code for the banner.
type RoomHandler struct {
	rooms ports.RoomService
	log   zerolog.Logger
}

func NewRoomHandler(rooms ports.RoomService, log zerolog.Logger) *RoomHandler {
	return &RoomHandler{rooms: rooms, log: log}
}

func (h *RoomHandler) Create(c echo.Context) error {
	var in domain.RoomInput
	if err := c.Bind(&in); err != nil {
		return h.back(c, "room_create")
	}
	if err := c.Validate(in); err != nil {
		return h.back(c, "room_create")
	}

	if _, err := h.rooms.Create(c.Request().Context(), in); err != nil {
		h.log.Error().Err(err).Msg("room create failed")
		return h.back(c, "room_create")
	}
	return h.back(c, "")
}

func (h *RoomHandler) Update(c echo.Context) error {
	var in domain.RoomInput
	if err := c.Bind(&in); err != nil {
		return h.back(c, "room_update")
	}
	if err := c.Validate(in); err != nil {
		return h.back(c, "room_update")
	}

	if _, err := h.rooms.Update(c.Request().Context(), c.Param("id"), in); err != nil {
		h.log.Error().Err(err).Str("room_id", c.Param("id")).Msg("room update failed")
		return h.back(c, "room_update")
	}
	return h.back(c, "")
}

func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.rooms.Delete(c.Request().Context(), c.Param("id")); err != nil {
		h.log.Error().Err(err).Str("room_id", c.Param("id")).Msg("room delete failed")
		return h.back(c, "room_delete")
	}
	return h.back(c, "")
}

func (h *RoomHandler) back(c echo.Context, errCode string) error {
	target := "/dashboard?section=" + SectionRooms
	if errCode != "" {
		target += "&err=" + errCode
	}
	return c.Redirect(http.StatusSeeOther, target)
}
