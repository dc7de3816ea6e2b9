package delivery

import "time"

type DeliveryDB struct {
	ID               int64
	OrderID          string
	Status           string
	CourierID        *int64
	PickupLat        float64
	PickupLng        float64
	DropoffLat       float64
	DropoffLng       float64
	DeliveryFee      int64
	ConfirmationCode string
	AssignedAt       *time.Time
	AcceptedAt       *time.Time
	PickedUpAt       *time.Time
	DeliveredAt      *time.Time
	ProofPhotoURL    *string
	CourierShare     *int64
	PlatformShare    *int64
	RatingStars      *int32
	RatingComment    *string
	CreatedAt        time.Time
}

type AvailableCourierDB struct {
	ID            int64
	UserID        int64
	Vehicle       string
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
