package courier

import "dispatch/internal/entities"

func isValidVehicle(vehicle entities.CourierVehicleType) bool {
	switch vehicle {
	case entities.VehicleBicycle, entities.VehicleScooter, entities.VehicleCar:
		return true
	default:
		return false
	}
}

func isValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
