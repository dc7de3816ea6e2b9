// Package dto содержит транспортные структуры REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Courier struct {
	ID            int64     `json:"ID"`
	UserID        int64     `json:"user_id"`
	Vehicle       string    `json:"vehicle"`
	PlateNumber   *string   `json:"plate_number,omitempty"`
	IDCardURL     string    `json:"id_card_url"`
	SelfieURL     string    `json:"selfie_url"`
	IsVerified    bool      `json:"is_verified"`
	IsOnline      bool      `json:"is_online"`
	CurrentLat    *float64  `json:"current_lat,omitempty"`
	CurrentLng    *float64  `json:"current_lng,omitempty"`
	AvgRating     float64   `json:"avg_rating"`
	TotalRatings  int64     `json:"total_ratings"`
	WalletBalance int64     `json:"wallet_balance"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CourierRegister struct {
	UserID      int64   `json:"user_id"`
	Vehicle     string  `json:"vehicle"`
	PlateNumber *string `json:"plate_number,omitempty"`
	IDCardURL   string  `json:"id_card_url"`
	SelfieURL   string  `json:"selfie_url"`
}

type CourierAvailabilityResponse struct {
	IsOnline bool `json:"is_online"`
}

type CourierLocationUpdate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CourierCashoutResponse struct {
	Amount int64 `json:"amount"`
}

type Delivery struct {
	ID            int64      `json:"ID"`
	OrderID       string     `json:"order_id"`
	Status        string     `json:"status"`
	CourierID     *int64     `json:"courier_id,omitempty"`
	PickupLat     float64    `json:"pickup_lat"`
	PickupLng     float64    `json:"pickup_lng"`
	DropoffLat    float64    `json:"dropoff_lat"`
	DropoffLng    float64    `json:"dropoff_lng"`
	DeliveryFee   int64      `json:"delivery_fee"`
	AssignedAt    *time.Time `json:"assigned_at,omitempty"`
	PickedUpAt    *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
	ProofPhotoURL *string    `json:"proof_photo_url,omitempty"`
	CourierShare  *int64     `json:"courier_share,omitempty"`
	PlatformShare *int64     `json:"platform_share,omitempty"`
	RatingStars   *int32     `json:"rating_stars,omitempty"`
	RatingComment *string    `json:"rating_comment,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`

	// Код подтверждения отдаётся только владельцу заказа.
	ConfirmationCode string `json:"confirmation_code,omitempty"`
}

type DeliveryCreate struct {
	OrderID string `json:"order_id"`
}

type DeliveryAction struct {
	CourierID int64 `json:"courier_id"`
}

type DeliveryConfirm struct {
	CourierID        int64   `json:"courier_id"`
	ConfirmationCode string  `json:"confirmation_code"`
	ProofPhotoURL    *string `json:"proof_photo_url,omitempty"`
}

type DeliveryRate struct {
	UserID  int64   `json:"user_id"`
	Stars   int32   `json:"stars"`
	Comment *string `json:"comment,omitempty"`
}

type DeliveryHistory struct {
	Items []Delivery `json:"items"`
	Total int64      `json:"total"`
	Page  int64      `json:"page"`
	Limit int64      `json:"limit"`
}
