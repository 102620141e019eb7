package model

const (
	BookingKindTour    = "tour"
	BookingKindVehicle = "vehicle"
)

// Booking is a lead left by a visitor. ItemID is opaque and never resolved
// against the tour or vehicle collections. Kind carries no tag; it is checked
// with IsBookingKind once the required fields are present.
type Booking struct {
	ID     string  `json:"id,omitempty" bson:"-"`
	Kind   string  `json:"kind" bson:"kind"`
	ItemID string  `json:"item_id" bson:"item_id" validate:"required"`
	Name   string  `json:"name" bson:"name" validate:"required"`
	Email  string  `json:"email" bson:"email" validate:"required"`
	Phone  *string `json:"phone" bson:"phone"`
	Date   string  `json:"date" bson:"date" validate:"required"`
	Notes  *string `json:"notes" bson:"notes"`
}

func IsBookingKind(kind string) bool {
	return kind == BookingKindTour || kind == BookingKindVehicle
}
