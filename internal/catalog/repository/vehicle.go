package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"stlucia/pkg/client"
	mongoid "stlucia/pkg/db/mongo"
	"stlucia/pkg/model"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	FindAll(ctx context.Context) ([]*model.Vehicle, error)
	Count(ctx context.Context) (int64, error)
}

type vehicleDocument struct {
	ID            any `bson:"_id"`
	model.Vehicle `bson:",inline"`
}

type mongoVehicleRepository struct {
	store client.CollectionProvider
}

func NewMongoVehicleRepository(store client.CollectionProvider) VehicleRepository {
	return &mongoVehicleRepository{store: store}
}

func (r *mongoVehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	collection, err := r.store.Collection(VehicleCollection)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	result, err := collection.InsertOne(ctx, vehicle)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	vehicle.ID = mongoid.PublicID(result.InsertedID)
	return nil
}

func (r *mongoVehicleRepository) FindAll(ctx context.Context) ([]*model.Vehicle, error) {
	collection, err := r.store.Collection(VehicleCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}

	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []vehicleDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}

	vehicles := make([]*model.Vehicle, 0, len(docs))
	for i := range docs {
		vehicle := docs[i].Vehicle
		vehicle.ID = mongoid.PublicID(docs[i].ID)
		vehicles = append(vehicles, &vehicle)
	}
	return vehicles, nil
}

func (r *mongoVehicleRepository) Count(ctx context.Context) (int64, error) {
	collection, err := r.store.Collection(VehicleCollection)
	if err != nil {
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	count, err := collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}
	return count, nil
}
