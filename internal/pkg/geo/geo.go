package geo

import "math"

const earthRadiusKm = 6371.0

// DistanceKm возвращает расстояние по большому кругу между двумя точками
// в километрах (сферическая модель Земли).
func DistanceKm(latA, lngA, latB, lngB float64) float64 {
	latARad := latA * math.Pi / 180
	latBRad := latB * math.Pi / 180
	deltaLng := (lngB - lngA) * math.Pi / 180

	cosine := math.Sin(latARad)*math.Sin(latBRad) +
		math.Cos(latARad)*math.Cos(latBRad)*math.Cos(deltaLng)

	// Для почти совпадающих точек плавающая арифметика выводит косинус
	// чуть за пределы [-1, 1], а Acos от такого значения даёт NaN.
	cosine = math.Min(1, math.Max(-1, cosine))

	return earthRadiusKm * math.Acos(cosine)
}
