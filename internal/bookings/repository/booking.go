package repository

import (
	"context"
	"fmt"

	"stlucia/pkg/client"
	mongoid "stlucia/pkg/db/mongo"
	"stlucia/pkg/model"
)

const (
	CollectionName = "booking"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
}

type mongoBookingRepository struct {
	store client.CollectionProvider
}

func NewMongoBookingRepository(store client.CollectionProvider) BookingRepository {
	return &mongoBookingRepository{store: store}
}

// Create stores the booking as submitted and sets its ID to the
// store-assigned identifier.
func (r *mongoBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	collection, err := r.store.Collection(CollectionName)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	result, err := collection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = mongoid.PublicID(result.InsertedID)
	return nil
}
