package order

import "time"

type OrderDB struct {
	ID          string
	UserID      int64
	Status      string
	PickupLat   float64
	PickupLng   float64
	DropoffLat  float64
	DropoffLng  float64
	TotalAmount int64
	CreatedAt   time.Time
}
