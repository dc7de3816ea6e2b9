package entities

import "time"

// DeliveryLocation — точка трека доставки. Строки только добавляются,
// никогда не изменяются и не удаляются.
type DeliveryLocation struct {
	ID         int64
	DeliveryID int64
	Lat        float64
	Lng        float64
	Speed      *float64
	RecordedAt time.Time
}

// Position — последняя известная позиция для быстрых чтений из кеша.
type Position struct {
	Lat       float64
	Lng       float64
	Speed     *float64
	UpdatedAt time.Time
}
