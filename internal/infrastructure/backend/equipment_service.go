package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/orbit-facilities/console/internal/core/domain"
)

const equipmentPath = "/api/equipment/"

// EquipmentService mirrors RoomService for the equipment API.
type EquipmentService struct {
	client *Client
}

func NewEquipmentService(client *Client) *EquipmentService {
	return &EquipmentService{client: client}
}

func (s *EquipmentService) List(ctx context.Context) ([]domain.Equipment, error) {
	var items []domain.Equipment
	if err := s.client.Do(ctx, http.MethodGet, equipmentPath, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *EquipmentService) Get(ctx context.Context, id string) (domain.Equipment, error) {
	var item domain.Equipment
	if err := s.client.Do(ctx, http.MethodGet, equipmentPath+url.PathEscape(id)+"/", nil, &item); err != nil {
		return domain.Equipment{}, err
	}
	return item, nil
}

func (s *EquipmentService) Create(ctx context.Context, in domain.EquipmentInput) (domain.Equipment, error) {
	var item domain.Equipment
	if err := s.client.Do(ctx, http.MethodPost, equipmentPath, in, &item); err != nil {
		return domain.Equipment{}, err
	}
	return item, nil
}

func (s *EquipmentService) Update(ctx context.Context, id string, in domain.EquipmentInput) (domain.Equipment, error) {
	var item domain.Equipment
	if err := s.client.Do(ctx, http.MethodPut, equipmentPath+url.PathEscape(id)+"/", in, &item); err != nil {
		return domain.Equipment{}, err
	}
	return item, nil
}

func (s *EquipmentService) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, http.MethodDelete, equipmentPath+url.PathEscape(id)+"/", nil, nil)
}
