package entities

import (
	"time"
)

type Courier struct {
	ID            int64
	UserID        int64
	Vehicle       CourierVehicleType
	PlateNumber   *string
	IDCardURL     string
	SelfieURL     string
	IsVerified    bool
	IsOnline      bool
	CurrentLat    *float64
	CurrentLng    *float64
	AvgRating     float64
	TotalRatings  int64
	WalletBalance int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasKnownPosition сообщает, присылал ли курьер хотя бы одну координату.
func (c *Courier) HasKnownPosition() bool {
	return c.CurrentLat != nil && c.CurrentLng != nil
}

type CourierVehicleType string

const (
	VehicleBicycle CourierVehicleType = "bicycle"
	VehicleScooter CourierVehicleType = "scooter"
	VehicleCar     CourierVehicleType = "car"
)

func (t CourierVehicleType) String() string {
	return string(t)
}

type CourierModify struct {
	ID            *int64
	Vehicle       *CourierVehicleType
	PlateNumber   *string
	IsVerified    *bool
	IsOnline      *bool
	CurrentLat    *float64
	CurrentLng    *float64
	AvgRating     *float64
	TotalRatings  *int64
	WalletBalance *int64
}

type CourierRegistration struct {
	UserID      int64
	Vehicle     CourierVehicleType
	PlateNumber *string
	IDCardURL   string
	SelfieURL   string
}
