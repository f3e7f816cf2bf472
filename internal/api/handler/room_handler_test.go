package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/orbit-facilities/console/internal/core/domain"
	"github.com/orbit-facilities/console/internal/infrastructure/backend"
)

func TestRoomHandler_CreateRedirectsBack(t *testing.T) {
	var got domain.RoomInput
	rooms := &stubRooms{}
	rooms.createFn = func(_ context.Context, in domain.RoomInput) (domain.Room, error) {
		got = in
		return domain.Room{ID: "r9"}, nil
	}
	h := NewRoomHandler(rooms, zerolog.Nop())

	c, rec := newScreenContext(t, http.MethodPost, "/dashboard/rooms", url.Values{
		"name":     {"Lab 9"},
		"floor":    {"3"},
		"capacity": {"20"},
		"type":     {"lab"},
	})

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.Name != "Lab 9" || got.Floor != 3 || got.Capacity != 20 {
		t.Fatalf("unexpected input: %+v", got)
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard?section=Rooms" {
		t.Fatalf("expected redirect to rooms section, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestRoomHandler_CreateFailureCarriesErrorCode(t *testing.T) {
	rooms := &stubRooms{}
	rooms.createFn = func(context.Context, domain.RoomInput) (domain.Room, error) {
		return domain.Room{}, &backend.APIError{Status: http.StatusBadRequest, Body: "{}"}
	}
	h := NewRoomHandler(rooms, zerolog.Nop())

	c, rec := newScreenContext(t, http.MethodPost, "/dashboard/rooms", url.Values{
		"name": {"Lab 9"}, "floor": {"3"}, "capacity": {"20"}, "type": {"lab"},
	})

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.Contains(rec.Header().Get("Location"), "err=room_create") {
		t.Fatalf("expected error code in redirect, got %q", rec.Header().Get("Location"))
	}
}

func TestRoomHandler_UpdateUsesPathID(t *testing.T) {
	var gotID string
	var got domain.RoomInput
	rooms := &stubRooms{}
	rooms.updateFn = func(_ context.Context, id string, in domain.RoomInput) (domain.Room, error) {
		gotID, got = id, in
		return domain.Room{ID: id}, nil
	}
	h := NewRoomHandler(rooms, zerolog.Nop())

	c, rec := newScreenContext(t, http.MethodPost, "/dashboard/rooms/r1", url.Values{
		"name": {"Lab 1b"}, "floor": {"4"}, "capacity": {"18"}, "type": {"lab"},
	})
	c.SetParamNames("id")
	c.SetParamValues("r1")

	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotID != "r1" {
		t.Fatalf("expected update of r1, got %q", gotID)
	}
	if got.Name != "Lab 1b" || got.Floor != 4 || got.Capacity != 18 {
		t.Fatalf("unexpected input: %+v", got)
	}
	if rec.Header().Get("Location") != "/dashboard?section=Rooms" {
		t.Fatalf("unexpected redirect: %q", rec.Header().Get("Location"))
	}
}

func TestRoomHandler_UpdateFailureCarriesErrorCode(t *testing.T) {
	rooms := &stubRooms{}
	rooms.updateFn = func(context.Context, string, domain.RoomInput) (domain.Room, error) {
		return domain.Room{}, &backend.APIError{Status: http.StatusNotFound, Body: "{}"}
	}
	h := NewRoomHandler(rooms, zerolog.Nop())

	c, rec := newScreenContext(t, http.MethodPost, "/dashboard/rooms/r1", url.Values{
		"name": {"Lab 1b"}, "floor": {"4"}, "capacity": {"18"}, "type": {"lab"},
	})
	c.SetParamNames("id")
	c.SetParamValues("r1")

	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !strings.Contains(rec.Header().Get("Location"), "err=room_update") {
		t.Fatalf("expected error code in redirect, got %q", rec.Header().Get("Location"))
	}
}

func TestRoomHandler_DeleteUsesPathID(t *testing.T) {
	var deleted string
	rooms := &stubRooms{}
	rooms.deleteFn = func(_ context.Context, id string) error {
		deleted = id
		return nil
	}
	h := NewRoomHandler(rooms, zerolog.Nop())

	c, rec := newScreenContext(t, http.MethodPost, "/dashboard/rooms/r1/delete", nil)
	c.SetParamNames("id")
	c.SetParamValues("r1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted != "r1" {
		t.Fatalf("expected delete of r1, got %q", deleted)
	}
	if rec.Header().Get("Location") != "/dashboard?section=Rooms" {
		t.Fatalf("unexpected redirect: %q", rec.Header().Get("Location"))
	}
}

func TestEquipmentHandler_UpdateUsesPathID(t *testing.T) {
	var gotID string
	var got domain.EquipmentInput
	equipment := &stubEquipment{}
	equipment.updateFn = func(_ context.Context, id string, in domain.EquipmentInput) (domain.Equipment, error) {
		gotID, got = id, in
		return domain.Equipment{ID: id}, nil
	}
	h := NewEquipmentHandler(equipment, zerolog.Nop())

	c, rec := newScreenContext(t, http.MethodPost, "/dashboard/equipment/e1", url.Values{
		"name": {"Projector"}, "room": {"r2"}, "type": {"av"}, "status": {"repair"},
	})
	c.SetParamNames("id")
	c.SetParamValues("e1")

	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotID != "e1" {
		t.Fatalf("expected update of e1, got %q", gotID)
	}
	if got.Room != "r2" || got.Status != "repair" {
		t.Fatalf("unexpected input: %+v", got)
	}
	if rec.Header().Get("Location") != "/dashboard?section=Equipment" {
		t.Fatalf("unexpected redirect: %q", rec.Header().Get("Location"))
	}
}

func TestEquipmentHandler_CreateValidates(t *testing.T) {
	equipment := &stubEquipment{}
	equipment.createFn = func(context.Context, domain.EquipmentInput) (domain.Equipment, error) {
		t.Fatalf("invalid input must not reach the backend")
		return domain.Equipment{}, nil
	}
	h := NewEquipmentHandler(equipment, zerolog.Nop())

	// Missing required room id.
	c, rec := newScreenContext(t, http.MethodPost, "/dashboard/equipment", url.Values{
		"name": {"Projector"},
	})

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.Contains(rec.Header().Get("Location"), "err=equipment_create") {
		t.Fatalf("expected error redirect, got %q", rec.Header().Get("Location"))
	}
}
