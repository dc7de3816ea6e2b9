package tracking

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

// Tracking ведёт трек позиций активной доставки. Порядок эффектов
// фиксирован: сперва долговечная запись в трек, затем кеш, затем
// рассылка наблюдателям. Потеря рассылки допустима, потеря точки — нет.
type Tracking struct {
	repository Repository
	markers    Markers
	broadcast  Broadcaster
}

func New(repository Repository, markers Markers, broadcast Broadcaster) *Tracking {
	return &Tracking{
		repository: repository,
		markers:    markers,
		broadcast:  broadcast,
	}
}

func (t *Tracking) RecordLocation(ctx context.Context, deliveryID int64, lat, lng float64, speed *float64) (*entities.DeliveryLocation, error) {
	if deliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, ErrInvalidCoordinates
	}

	saved, err := t.repository.Append(ctx, entities.DeliveryLocation{
		DeliveryID: deliveryID,
		Lat:        lat,
		Lng:        lng,
		Speed:      speed,
	})
	if err != nil {
		return nil, fmt.Errorf("append location: %w", err)
	}

	position := entities.Position{
		Lat:       lat,
		Lng:       lng,
		Speed:     speed,
		UpdatedAt: saved.RecordedAt,
	}
	t.markers.SetDeliveryPosition(deliveryID, position)
	t.broadcast.BroadcastLocation(deliveryID, position)

	return saved, nil
}

// LastPosition отвечает из кеша; после его протухания или рестарта
// процесса падает обратно на последнюю точку трека.
func (t *Tracking) LastPosition(ctx context.Context, deliveryID int64) (entities.Position, error) {
	if deliveryID <= 0 {
		return entities.Position{}, ErrInvalidDeliveryID
	}

	if position, ok := t.markers.DeliveryPosition(deliveryID); ok {
		return position, nil
	}

	latest, err := t.repository.GetLatest(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, ErrNoKnownPosition) {
			return entities.Position{}, ErrNoKnownPosition
		}
		return entities.Position{}, fmt.Errorf("get latest location: %w", err)
	}

	position := entities.Position{
		Lat:       latest.Lat,
		Lng:       latest.Lng,
		Speed:     latest.Speed,
		UpdatedAt: latest.RecordedAt,
	}
	// Прогреваем кеш, чтобы следующие чтения не ходили в БД.
	t.markers.SetDeliveryPosition(deliveryID, position)
	return position, nil
}
