package courier

import (
	"dispatch/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
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

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}
	courierDB := &CourierModifyDB{}

	if courierModify.ID != nil {
		courierDB.ID = courierModify.ID
	}
	if courierModify.Vehicle != nil {
		vehicle := courierModify.Vehicle.String()
		courierDB.Vehicle = &vehicle
	}
	if courierModify.PlateNumber != nil {
		courierDB.PlateNumber = courierModify.PlateNumber
	}
	if courierModify.IsVerified != nil {
		courierDB.IsVerified = courierModify.IsVerified
	}
	if courierModify.IsOnline != nil {
		courierDB.IsOnline = courierModify.IsOnline
	}
	if courierModify.CurrentLat != nil {
		courierDB.CurrentLat = courierModify.CurrentLat
	}
	if courierModify.CurrentLng != nil {
		courierDB.CurrentLng = courierModify.CurrentLng
	}
	if courierModify.AvgRating != nil {
		courierDB.AvgRating = courierModify.AvgRating
	}
	if courierModify.TotalRatings != nil {
		courierDB.TotalRatings = courierModify.TotalRatings
	}
	if courierModify.WalletBalance != nil {
		courierDB.WalletBalance = courierModify.WalletBalance
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
