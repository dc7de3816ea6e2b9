package entities

import (
	"errors"
	"time"
)

type Delivery struct {
	ID               int64
	OrderID          string
	Status           DeliveryStatusType
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

type DeliveryStatusType string

const (
	DeliverySearching DeliveryStatusType = "SEARCHING"
	DeliveryAssigned  DeliveryStatusType = "ASSIGNED"
	DeliveryPickedUp  DeliveryStatusType = "PICKED_UP"
	DeliveryInTransit DeliveryStatusType = "IN_TRANSIT"
	DeliveryDelivered DeliveryStatusType = "DELIVERED"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// ErrTransitionNotAllowed возвращается для перехода, отсутствующего в таблице.
var ErrTransitionNotAllowed = errors.New("delivery status transition not allowed")

// validTransitions — единственный источник правды о жизненном цикле доставки.
// DELIVERED терминальный, у SEARCHING нет перехода в отмену: исчерпание
// радиусов поиска оставляет доставку в SEARCHING для ручного вмешательства
// или фонового повтора.
var validTransitions = map[DeliveryStatusType][]DeliveryStatusType{
	DeliverySearching: {DeliveryAssigned},
	DeliveryAssigned:  {DeliverySearching, DeliveryPickedUp},
	DeliveryPickedUp:  {DeliveryInTransit, DeliveryDelivered},
	DeliveryInTransit: {DeliveryDelivered},
	DeliveryDelivered: {},
}

// CanTransitionTo проверяет переход по таблице жизненного цикла.
func (s DeliveryStatusType) CanTransitionTo(target DeliveryStatusType) error {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return nil
		}
	}
	return ErrTransitionNotAllowed
}

// IsActive сообщает, занимает ли доставка курьера прямо сейчас.
func (s DeliveryStatusType) IsActive() bool {
	switch s {
	case DeliveryAssigned, DeliveryPickedUp, DeliveryInTransit:
		return true
	default:
		return false
	}
}

type DeliveryModify struct {
	ID            *int64
	Status        *DeliveryStatusType
	CourierID     *int64
	AssignedAt    *time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time
	ProofPhotoURL *string
	CourierShare  *int64
	PlatformShare *int64
}

// DeliveryAssignment — результат успешной попытки диспетчеризации.
type DeliveryAssignment struct {
	DeliveryID int64
	CourierID  int64
	UserID     int64
	DistanceKm float64
	AssignedAt time.Time
}
