package domain

import "time"

// Room is a bookable facility space as the backend reports it.
// The console never mutates a fetched Room locally; changes go through
// explicit create/update/delete calls and a re-fetch.
type Room struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Floor     int         `json:"floor"`
	Capacity  int         `json:"capacity"`
	Type      string      `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
	Equipment []Equipment `json:"equipment,omitempty"`
}

// RoomInput carries the writable Room fields for create and update calls.
// Updates are full replaces, so every field is sent each time.
type RoomInput struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Floor    int    `json:"floor" form:"floor"`
	Capacity int    `json:"capacity" form:"capacity" validate:"gte=0"`
	Type     string `json:"type" form:"type" validate:"required"`
}
