package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/orbit-facilities/console/internal/core/domain"
)

const roomsPath = "/api/rooms/"

// RoomService maps room operations onto the backend's room API. The backend
// uses trailing-slash routes and PUT with full-replace semantics.
type RoomService struct {
	client *Client
}

func NewRoomService(client *Client) *RoomService {
	return &RoomService{client: client}
}

func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := s.client.Do(ctx, http.MethodGet, roomsPath, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) Get(ctx context.Context, id string) (domain.Room, error) {
	var room domain.Room
	if err := s.client.Do(ctx, http.MethodGet, roomsPath+url.PathEscape(id)+"/", nil, &room); err != nil {
		return domain.Room{}, err
	}
	return room, nil
}

func (s *RoomService) Create(ctx context.Context, in domain.RoomInput) (domain.Room, error) {
	var room domain.Room
	if err := s.client.Do(ctx, http.MethodPost, roomsPath, in, &room); err != nil {
		return domain.Room{}, err
	}
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, id string, in domain.RoomInput) (domain.Room, error) {
	var room domain.Room
	if err := s.client.Do(ctx, http.MethodPut, roomsPath+url.PathEscape(id)+"/", in, &room); err != nil {
		return domain.Room{}, err
	}
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, http.MethodDelete, roomsPath+url.PathEscape(id)+"/", nil, nil)
}
