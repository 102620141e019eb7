package model

type Tour struct {
	ID            string  `json:"id,omitempty" bson:"-"`
	Title         string  `json:"title" bson:"title" validate:"required"`
	Description   string  `json:"description" bson:"description" validate:"required"`
	Price         float64 `json:"price" bson:"price" validate:"gte=0"`
	DurationHours int     `json:"duration_hours" bson:"duration_hours" validate:"min=1"`
	Location      string  `json:"location" bson:"location" validate:"required"`
	ImageURL      *string `json:"image_url" bson:"image_url"`
	Featured      bool    `json:"featured" bson:"featured"`
}
