package courier

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"dispatch/internal/entities"
)

type Courier struct {
	repository Repository
	markers    Markers
	push       Push
	txManager  TxManager
}

func New(repository Repository, markers Markers, push Push, txManager TxManager) *Courier {
	return &Courier{
		repository: repository,
		markers:    markers,
		push:       push,
		txManager:  txManager,
	}
}

func (s *Courier) RegisterCourier(ctx context.Context, registration entities.CourierRegistration) (*entities.Courier, error) {
	if registration.UserID <= 0 {
		return nil, ErrInvalidUserID
	}
	if registration.IDCardURL == "" || registration.SelfieURL == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidVehicle(registration.Vehicle) {
		return nil, ErrInvalidVehicle
	}

	id, err := s.repository.Create(ctx, registration)
	if err != nil {
		return nil, fmt.Errorf("create courier: %w", err)
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get created courier: %w", err)
	}
	return courier, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	return courier, nil
}

// VerifyCourier помечает профиль проверенным и уведомляет курьера.
func (s *Courier) VerifyCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.Update(ctx, entities.CourierModify{
		ID:         &id,
		IsVerified: pointer.To(true),
	})
	if err != nil {
		return nil, fmt.Errorf("verify courier: %w", err)
	}

	s.push.Notify(ctx, courier.UserID, "SYSTEM",
		"Profil vérifié !",
		"Votre profil livreur a été vérifié. Vous pouvez maintenant accepter des courses.",
		nil,
	)

	return courier, nil
}

// ToggleAvailability переключает флаг онлайн. Непроверенный курьер
// не может выйти на линию.
func (s *Courier) ToggleAvailability(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidCourierID
	}

	var isOnline bool
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		if !courier.IsVerified {
			return ErrNotVerified
		}

		updated, err := s.repository.Update(ctx, entities.CourierModify{
			ID:       &id,
			IsOnline: pointer.To(!courier.IsOnline),
		})
		if err != nil {
			return fmt.Errorf("update availability: %w", err)
		}

		isOnline = updated.IsOnline
		return nil
	})
	if err != nil {
		return false, err
	}
	return isOnline, nil
}

// UpdateLocation сохраняет последнюю позицию курьера в БД и кладет её
// в кеш для быстрых чтений диспетчеризации.
func (s *Courier) UpdateLocation(ctx context.Context, id int64, lat, lng float64) error {
	if id <= 0 {
		return ErrInvalidCourierID
	}
	if !isValidCoordinates(lat, lng) {
		return ErrInvalidCoordinates
	}

	_, err := s.repository.Update(ctx, entities.CourierModify{
		ID:         &id,
		CurrentLat: &lat,
		CurrentLng: &lng,
	})
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}

	s.markers.SetCourierPosition(id, entities.Position{
		Lat:       lat,
		Lng:       lng,
		UpdatedAt: time.Now().UTC(),
	})

	return nil
}
