package location

import "time"

type LocationDB struct {
	ID         int64
	DeliveryID int64
	Lat        float64
	Lng        float64
	Speed      *float64
	RecordedAt time.Time
}
