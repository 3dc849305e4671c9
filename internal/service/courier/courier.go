package courier

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Courier struct {
	repository Repository
}

func New(repository Repository) *Courier {
	return &Courier{
		repository: repository,
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (int64, error) {
	if courierModify.NationalID == nil ||
		courierModify.FirstName == nil ||
		courierModify.LastName == nil ||
		courierModify.Phone == nil ||
		courierModify.Zone == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidNationalID(*courierModify.NationalID) {
		return 0, ErrInvalidNationalID
	}
	if !isValidName(*courierModify.FirstName) || !isValidName(*courierModify.LastName) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*courierModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !courierModify.Zone.IsValid() {
		return 0, ErrInvalidZone
	}

	if courierModify.Capacity == nil {
		capacity := entities.DefaultCourierCapacity
		courierModify.Capacity = &capacity
	}
	if !isValidCapacity(*courierModify.Capacity) {
		return 0, ErrInvalidCapacity
	}

	id, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}

	return id, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil || *courierModify.ID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if courierModify.NationalID == nil &&
		courierModify.FirstName == nil &&
		courierModify.LastName == nil &&
		courierModify.Phone == nil &&
		courierModify.Vehicle == nil &&
		courierModify.Zone == nil &&
		courierModify.Capacity == nil &&
		courierModify.Available == nil &&
		courierModify.Active == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if courierModify.NationalID != nil && !isValidNationalID(*courierModify.NationalID) {
		return nil, ErrInvalidNationalID
	}
	if courierModify.FirstName != nil && !isValidName(*courierModify.FirstName) {
		return nil, ErrInvalidName
	}
	if courierModify.LastName != nil && !isValidName(*courierModify.LastName) {
		return nil, ErrInvalidName
	}
	if courierModify.Phone != nil && !isValidPhone(*courierModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if courierModify.Zone != nil && !courierModify.Zone.IsValid() {
		return nil, ErrInvalidZone
	}
	if courierModify.Capacity != nil && !isValidCapacity(*courierModify.Capacity) {
		return nil, ErrInvalidCapacity
	}

	courier, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("update courier: %w", err)
	}
	return courier, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get couriers: %w", err)
	}

	return couriers, nil
}

func (s *Courier) DeleteCourier(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidCourierID
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete courier: %w", err)
	}
	return nil
}
