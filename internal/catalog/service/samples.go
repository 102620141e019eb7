package service

import "stlucia/pkg/model"

// Sample records inserted by Seed into empty collections.

func sampleTours() []*model.Tour {
	return []*model.Tour{
		{
			Title:         "Gros Piton Hike",
			Description:   "Guided hike up the iconic Pitons with breathtaking views.",
			Price:         95,
			DurationHours: 5,
			Location:      "Soufrière",
			ImageURL:      model.StringPtr("https://images.unsplash.com/photo-1500530855697-b586d89ba3ee"),
			Featured:      true,
		},
		{
			Title:         "Sulphur Springs & Mud Bath",
			Description:   "Revitalizing mud baths at the Caribbean's only drive-in volcano.",
			Price:         60,
			DurationHours: 2,
			Location:      "Soufrière",
			ImageURL:      model.StringPtr("https://images.unsplash.com/photo-1500375592092-40eb2168fd21"),
		},
		{
			Title:         "Rainforest Zipline Adventure",
			Description:   "High-flying zipline through lush rainforest canopies.",
			Price:         120,
			DurationHours: 3,
			Location:      "Babonneau",
			ImageURL:      model.StringPtr("https://images.unsplash.com/photo-1511497584788-876760111969"),
		},
	}
}

func sampleVehicles() []*model.Vehicle {
	return []*model.Vehicle{
		{
			Name:         "Suzuki Jimny",
			Type:         "Jeep",
			Seats:        4,
			PricePerDay:  65,
			Transmission: "Automatic",
			ImageURL:     model.StringPtr("https://images.unsplash.com/photo-1552519507-da3b142c6e3d"),
			Available:    true,
		},
		{
			Name:         "Toyota Yaris",
			Type:         "Car",
			Seats:        5,
			PricePerDay:  45,
			Transmission: "Automatic",
			ImageURL:     model.StringPtr("https://images.unsplash.com/photo-1549924231-f129b911e442"),
			Available:    true,
		},
		{
			Name:         "Nissan X-Trail",
			Type:         "SUV",
			Seats:        5,
			PricePerDay:  80,
			Transmission: "Automatic",
			ImageURL:     model.StringPtr("https://images.unsplash.com/photo-1511919884226-fd3cad34687c"),
			Available:    true,
		},
	}
}
