package order

import (
	"dispatch/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:          o.ID,
		UserID:      o.UserID,
		Status:      entities.OrderStatusType(o.Status),
		PickupLat:   o.PickupLat,
		PickupLng:   o.PickupLng,
		DropoffLat:  o.DropoffLat,
		DropoffLng:  o.DropoffLng,
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
	}
}
