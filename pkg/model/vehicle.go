package model

import "encoding/json"

type Vehicle struct {
	ID           string  `json:"id,omitempty" bson:"-"`
	Name         string  `json:"name" bson:"name" validate:"required"`
	Type         string  `json:"type" bson:"type" validate:"required"`
	Seats        int     `json:"seats" bson:"seats" validate:"min=1"`
	PricePerDay  float64 `json:"price_per_day" bson:"price_per_day" validate:"gte=0"`
	Transmission string  `json:"transmission" bson:"transmission" validate:"required"`
	ImageURL     *string `json:"image_url" bson:"image_url"`
	Available    bool    `json:"available" bson:"available"`
}

// UnmarshalJSON defaults Available to true when the payload omits it.
func (v *Vehicle) UnmarshalJSON(data []byte) error {
	type vehicleAlias Vehicle
	decoded := vehicleAlias{Available: true}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*v = Vehicle(decoded)
	return nil
}
