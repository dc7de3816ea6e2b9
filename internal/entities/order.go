package entities

import "time"

type Order struct {
	ID          string
	UserID      int64
	Status      OrderStatusType
	PickupLat   float64
	PickupLng   float64
	DropoffLat  float64
	DropoffLng  float64
	TotalAmount int64
	CreatedAt   time.Time
}

type OrderStatusType string

const (
	OrderCreated   OrderStatusType = "created"
	OrderPaid      OrderStatusType = "paid"
	OrderPickedUp  OrderStatusType = "picked_up"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID     *string
	Status *OrderStatusType
}
