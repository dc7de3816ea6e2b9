package location

import (
	"dispatch/internal/entities"
)

func ToDomain(l *LocationDB) *entities.DeliveryLocation {
	if l == nil {
		return nil
	}

	return &entities.DeliveryLocation{
		ID:         l.ID,
		DeliveryID: l.DeliveryID,
		Lat:        l.Lat,
		Lng:        l.Lng,
		Speed:      l.Speed,
		RecordedAt: l.RecordedAt,
	}
}
