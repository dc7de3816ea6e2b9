package courier

import "time"

type CourierDB struct {
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

type CourierModifyDB struct {
	ID            *int64
	Vehicle       *string
	PlateNumber   *string
	IsVerified    *bool
	IsOnline      *bool
	CurrentLat    *float64
	CurrentLng    *float64
	AvgRating     *float64
	TotalRatings  *int64
	WalletBalance *int64
}
