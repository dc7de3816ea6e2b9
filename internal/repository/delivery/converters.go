package delivery

import (
	"dispatch/internal/entities"
)

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	return &entities.Delivery{
		ID:               d.ID,
		OrderID:          d.OrderID,
		Status:           entities.DeliveryStatusType(d.Status),
		CourierID:        d.CourierID,
		PickupLat:        d.PickupLat,
		PickupLng:        d.PickupLng,
		DropoffLat:       d.DropoffLat,
		DropoffLng:       d.DropoffLng,
		DeliveryFee:      d.DeliveryFee,
		ConfirmationCode: d.ConfirmationCode,
		AssignedAt:       d.AssignedAt,
		AcceptedAt:       d.AcceptedAt,
		PickedUpAt:       d.PickedUpAt,
		DeliveredAt:      d.DeliveredAt,
		ProofPhotoURL:    d.ProofPhotoURL,
		CourierShare:     d.CourierShare,
		PlatformShare:    d.PlatformShare,
		RatingStars:      d.RatingStars,
		RatingComment:    d.RatingComment,
		CreatedAt:        d.CreatedAt,
	}
}

func ToDomainList(deliveriesDB []DeliveryDB) []entities.Delivery {
	if len(deliveriesDB) == 0 {
		return []entities.Delivery{}
	}

	result := make([]entities.Delivery, len(deliveriesDB))
	for i, deliveryDB := range deliveriesDB {
		result[i] = *ToDomain(&deliveryDB)
	}
	return result
}

func ToCourierDomain(c *AvailableCourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:            c.ID,
		UserID:        c.UserID,
		Vehicle:       entities.CourierVehicleType(c.Vehicle),
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

func ToCourierDomainList(couriersDB []AvailableCourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToCourierDomain(&courierDB)
	}
	return result
}
