package repository

const (
	TourCollection    = "tour"
	VehicleCollection = "vehicle"
)
