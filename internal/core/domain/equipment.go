package domain

import "time"

// Equipment is a piece of hardware assigned to a room. Room and RoomID both
// carry the owning room's id; the backend emits both names depending on the
// serializer and the console accepts either. Referential integrity between
// equipment and rooms is the backend's invariant, not checked here.
type Equipment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Room      string    `json:"room"`
	RoomID    string    `json:"room_id,omitempty"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	QRCode    string    `json:"qr_code"`
	CreatedAt time.Time `json:"created_at"`
}

// OwningRoom returns whichever room reference the backend populated.
func (e Equipment) OwningRoom() string {
	if e.Room != "" {
		return e.Room
	}
	return e.RoomID
}

// EquipmentInput carries the writable Equipment fields for create and update
// calls. Updates are full replaces.
type EquipmentInput struct {
	Name   string `json:"name" form:"name" validate:"required"`
	Room   string `json:"room" form:"room" validate:"required"`
	Type   string `json:"type" form:"type" validate:"required"`
	Status string `json:"status" form:"status"`
	QRCode string `json:"qr_code" form:"qr_code"`
}
