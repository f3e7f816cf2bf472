package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orbit-facilities/console/internal/core/domain"
	"github.com/orbit-facilities/console/internal/core/ports"
)

// EquipmentHandler mirrors RoomHandler for the equipment forms.
type EquipmentHandler struct {
	equipment ports.EquipmentService
	log       zerolog.Logger
}

func NewEquipmentHandler(equipment ports.EquipmentService, log zerolog.Logger) *EquipmentHandler {
	return &EquipmentHandler{equipment: equipment, log: log}
}

func (h *EquipmentHandler) Create(c echo.Context) error {
	var in domain.EquipmentInput
	if err := c.Bind(&in); err != nil {
		return h.back(c, "equipment_create")
	}
	if err := c.Validate(in); err != nil {
		return h.back(c, "equipment_create")
	}

	if _, err := h.equipment.Create(c.Request().Context(), in); err != nil {
		h.log.Error().Err(err).Msg("equipment create failed")
		return h.back(c, "equipment_create")
	}
	return h.back(c, "")
}

func (h *EquipmentHandler) Update(c echo.Context) error {
	var in domain.EquipmentInput
	if err := c.Bind(&in); err != nil {
		return h.back(c, "equipment_update")
	}
	if err := c.Validate(in); err != nil {
		return h.back(c, "equipment_update")
	}

	if _, err := h.equipment.Update(c.Request().Context(), c.Param("id"), in); err != nil {
		h.log.Error().Err(err).Str("equipment_id", c.Param("id")).Msg("equipment update failed")
		return h.back(c, "equipment_update")
	}
	return h.back(c, "")
}

func (h *EquipmentHandler) Delete(c echo.Context) error {
	if err := h.equipment.Delete(c.Request().Context(), c.Param("id")); err != nil {
		h.log.Error().Err(err).Str("equipment_id", c.Param("id")).Msg("equipment delete failed")
		return h.back(c, "equipment_delete")
	}
	return h.back(c, "")
}

func (h *EquipmentHandler) back(c echo.Context, errCode string) error {
	target := "/dashboard?section=" + SectionEquipment
	if errCode != "" {
		target += "&err=" + errCode
	}
	return c.Redirect(http.StatusSeeOther, target)
}
