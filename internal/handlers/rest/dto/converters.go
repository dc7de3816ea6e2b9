package dto

import "dispatch/internal/entities"

func FromCourier(c *entities.Courier) Courier {
	return Courier{
		ID:            c.ID,
		UserID:        c.UserID,
		Vehicle:       c.Vehicle.String(),
		PlateNumber:   c.PlateNumber,
		IDCardURL:     c.IDCardURL,
		SelfieURL:     c.SelfieURL,
		IsVerified:    c.IsVerified,
		IsOnline:      c.IsOnline,
		CurrentLat:    c.CurrentLat,
		CurrentLng:    c.CurrentLng,
		AvgRating:     c.AvgRating,
		TotalRatings:  c.TotalRatings,
		WalletBalance: c.WalletBalance,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromDelivery(d *entities.Delivery) Delivery {
	return Delivery{
		ID:            d.ID,
		OrderID:       d.OrderID,
		Status:        d.Status.String(),
		CourierID:     d.CourierID,
		PickupLat:     d.PickupLat,
		PickupLng:     d.PickupLng,
		DropoffLat:    d.DropoffLat,
		DropoffLng:    d.DropoffLng,
		DeliveryFee:   d.DeliveryFee,
		AssignedAt:    d.AssignedAt,
		PickedUpAt:    d.PickedUpAt,
		DeliveredAt:   d.DeliveredAt,
		ProofPhotoURL: d.ProofPhotoURL,
		CourierShare:  d.CourierShare,
		PlatformShare: d.PlatformShare,
		RatingStars:   d.RatingStars,
		RatingComment: d.RatingComment,
		CreatedAt:     d.CreatedAt,
	}
}

// FromDeliveryForOwner дополняет ответ кодом подтверждения, который
// видит только владелец заказа.
func FromDeliveryForOwner(d *entities.Delivery) Delivery {
	deliveryDTO := FromDelivery(d)
	deliveryDTO.ConfirmationCode = d.ConfirmationCode
	return deliveryDTO
}

func FromDeliveryList(deliveries []entities.Delivery) []Delivery {
	result := make([]Delivery, len(deliveries))
	for i := range deliveries {
		result[i] = FromDelivery(&deliveries[i])
	}
	return result
}
