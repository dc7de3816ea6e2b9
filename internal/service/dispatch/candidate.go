package dispatch

import (
	"sort"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
)

// Candidate существует только в памяти на время одной попытки
// диспетчеризации и никогда не сохраняется.
type Candidate struct {
	CourierID  int64
	UserID     int64
	Lat        float64
	Lng        float64
	AvgRating  float64
	DistanceKm float64
	Score      float64
}

// Веса фиксированы политикой: близость важнее рейтинга.
const (
	distanceWeight = 0.7
	ratingWeight   = 0.3
	maxRating      = 5.0
)

// buildCandidates отбирает курьеров в пределах радиуса от точки забора
// и считает каждому балл. Курьеры без известной позиции и отказавшиеся
// от этой доставки отфильтрованы вызывающим.
func buildCandidates(couriers []entities.Courier, pickupLat, pickupLng, radiusKm float64) []Candidate {
	candidates := make([]Candidate, 0, len(couriers))

	for _, courier := range couriers {
		if !courier.HasKnownPosition() {
			continue
		}

		distance := geo.DistanceKm(pickupLat, pickupLng, *courier.CurrentLat, *courier.CurrentLng)
		if distance > radiusKm {
			continue
		}

		candidates = append(candidates, Candidate{
			CourierID:  courier.ID,
			UserID:     courier.UserID,
			Lat:        *courier.CurrentLat,
			Lng:        *courier.CurrentLng,
			AvgRating:  courier.AvgRating,
			DistanceKm: distance,
			Score:      score(distance, radiusKm, courier.AvgRating),
		})
	}

	return candidates
}

// score: 1.0 за нулевую дистанцию, 0.0 на границе радиуса;
// рейтинг 0–5 нормализуется к 0–1.
func score(distanceKm, radiusKm, avgRating float64) float64 {
	distanceScore := 1 - distanceKm/radiusKm
	ratingScore := avgRating / maxRating
	return distanceWeight*distanceScore + ratingWeight*ratingScore
}

// rank сортирует кандидатов: лучший балл, при равенстве меньшая
// дистанция, дальше меньший id — выбор детерминирован.
func rank(candidates []Candidate) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}
		return ranked[i].CourierID < ranked[j].CourierID
	})

	return ranked
}
