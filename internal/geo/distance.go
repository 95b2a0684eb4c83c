package geo

import "math"

// earthRadiusKm - средний радиус Земли в километрах
const earthRadiusKm = 6371

// DistanceKm вычисляет расстояние по дуге большого круга между двумя точками
// (в десятичных градусах) по формуле гаверсинусов. Формула работает на разностях
// в радианах, поэтому корректна у полюсов и через антимеридиан.
func DistanceKm(latA, lonA, latB, lonB float64) float64 {
	phiA := latA * math.Pi / 180
	phiB := latB * math.Pi / 180
	dPhi := (latB - latA) * math.Pi / 180
	dLambda := (lonB - lonA) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phiA)*math.Cos(phiB)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

// IsWithinRadius возвращает true, если точка пользователя находится не дальше
// radiusKm от точки алерта
func IsWithinRadius(userLat, userLon, alertLat, alertLon, radiusKm float64) bool {
	return DistanceKm(userLat, userLon, alertLat, alertLon) <= radiusKm
}
