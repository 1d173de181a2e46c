package rider

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

const DefaultLoadCeiling = 10

type Config struct {
	// LoadCeiling курьер с таким числом активных заказов больше не получает офферы.
	LoadCeiling int
}

type Rider struct {
	repository  Repository
	loadCeiling int
}

func New(repository Repository, cfg Config) *Rider {
	ceiling := cfg.LoadCeiling
	if ceiling <= 0 {
		ceiling = DefaultLoadCeiling
	}

	return &Rider{
		repository:  repository,
		loadCeiling: ceiling,
	}
}

// CreateRider регистрирует одобренного курьера. Новый курьер выходит
// оффлайн, если статус не передан явно.
func (s *Rider) CreateRider(ctx context.Context, riderModify entities.RiderModify) (int64, error) {
	if riderModify.Name == nil || riderModify.Phone == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*riderModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*riderModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if riderModify.Status == nil {
		status := entities.DefaultRiderStatus
		riderModify.Status = &status
	}
	if !isValidStatus(*riderModify.Status) {
		return 0, ErrInvalidStatus
	}
	if riderModify.ZoneID != nil && !isValidID(*riderModify.ZoneID) {
		return 0, ErrInvalidZoneID
	}

	id, err := s.repository.Create(ctx, riderModify)
	if err != nil {
		return 0, fmt.Errorf("create rider: %w", err)
	}

	return id, nil
}

func (s *Rider) UpdateRider(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error) {
	if riderModify.ID == nil || !isValidID(*riderModify.ID) {
		return nil, ErrInvalidRiderID
	}

	if riderModify.Name == nil &&
		riderModify.Phone == nil &&
		riderModify.Status == nil &&
		riderModify.ZoneID == nil &&
		riderModify.IsActive == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if riderModify.Name != nil && !isValidName(*riderModify.Name) {
		return nil, ErrInvalidName
	}
	if riderModify.Phone != nil && !isValidPhone(*riderModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if riderModify.Status != nil && !isValidStatus(*riderModify.Status) {
		return nil, ErrInvalidStatus
	}
	if riderModify.ZoneID != nil && !isValidID(*riderModify.ZoneID) {
		return nil, ErrInvalidZoneID
	}

	rider, err := s.repository.Update(ctx, riderModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update rider: %w", err)
	}
	return rider, nil
}

func (s *Rider) GetRider(ctx context.Context, id int64) (*entities.Rider, error) {
	if !isValidID(id) {
		return nil, ErrInvalidRiderID
	}

	rider, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rider: %w", err)
	}

	return rider, nil
}

func (s *Rider) GetRiders(ctx context.Context) ([]entities.Rider, error) {
	riders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get riders: %w", err)
	}

	return riders, nil
}

// FindCandidate возвращает наименее загруженного онлайн-курьера зоны,
// не входящего в exclude. При равной загрузке побеждает меньший id.
func (s *Rider) FindCandidate(ctx context.Context, zoneID int64, exclude []int64) (*entities.Rider, error) {
	if !isValidID(zoneID) {
		return nil, ErrInvalidZoneID
	}

	rider, err := s.repository.FindLeastLoaded(ctx, zoneID, exclude, s.loadCeiling)
	if err != nil {
		return nil, fmt.Errorf("find candidate in zone %d: %w", zoneID, err)
	}

	return rider, nil
}

func (s *Rider) IncrementActiveOrders(ctx context.Context, id int64) (*entities.RiderLoad, error) {
	if !isValidID(id) {
		return nil, ErrInvalidRiderID
	}

	load, err := s.repository.IncrementActiveOrders(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("increment active orders: %w", err)
	}
	return load, nil
}

// CompleteDelivery снимает заказ с курьера и засчитывает доставку.
func (s *Rider) CompleteDelivery(ctx context.Context, id int64) (*entities.RiderLoad, error) {
	if !isValidID(id) {
		return nil, ErrInvalidRiderID
	}

	load, err := s.repository.CompleteDelivery(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("complete delivery: %w", err)
	}
	return load, nil
}

// ReleaseOrder снимает заказ с курьера без засчитывания доставки.
func (s *Rider) ReleaseOrder(ctx context.Context, id int64) (*entities.RiderLoad, error) {
	if !isValidID(id) {
		return nil, ErrInvalidRiderID
	}

	load, err := s.repository.ReleaseOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("release order: %w", err)
	}
	return load, nil
}
