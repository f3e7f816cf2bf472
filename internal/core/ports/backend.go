package ports

import (
	"context"

	"github.com/orbit-facilities/console/internal/core/domain"
)

// AuthService exchanges credentials against the facility backend.
type AuthService interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.TokenPair, error)
	Register(ctx context.Context, reg domain.Registration) error
}

// RoomService is a stateless, typed mapping onto the backend's room API.
// No interpretation, no retries; backend failures surface unchanged.
type RoomService interface {
	List(ctx context.Context) ([]domain.Room, error)
	Get(ctx context.Context, id string) (domain.Room, error)
	Create(ctx context.Context, in domain.RoomInput) (domain.Room, error)
	Update(ctx context.Context, id string, in domain.RoomInput) (domain.Room, error)
	Delete(ctx context.Context, id string) error
}

// EquipmentService mirrors RoomService for equipment.
type EquipmentService interface {
	List(ctx context.Context) ([]domain.Equipment, error)
	Get(ctx context.Context, id string) (domain.Equipment, error)
	Create(ctx context.Context, in domain.EquipmentInput) (domain.Equipment, error)
	Update(ctx context.Context, id string, in domain.EquipmentInput) (domain.Equipment, error)
	Delete(ctx context.Context, id string) error
}
