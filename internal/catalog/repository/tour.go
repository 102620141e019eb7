package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"stlucia/pkg/client"
	mongoid "stlucia/pkg/db/mongo"
	"stlucia/pkg/model"
)

type TourRepository interface {
	Create(ctx context.Context, tour *model.Tour) error
	FindAll(ctx context.Context) ([]*model.Tour, error)
	Count(ctx context.Context) (int64, error)
}

type tourDocument struct {
	ID         any `bson:"_id"`
	model.Tour `bson:",inline"`
}

type mongoTourRepository struct {
	store client.CollectionProvider
}

func NewMongoTourRepository(store client.CollectionProvider) TourRepository {
	return &mongoTourRepository{store: store}
}

func (r *mongoTourRepository) Create(ctx context.Context, tour *model.Tour) error {
	collection, err := r.store.Collection(TourCollection)
	if err != nil {
		return fmt.Errorf("failed to create tour: %w", err)
	}

	result, err := collection.InsertOne(ctx, tour)
	if err != nil {
		return fmt.Errorf("failed to create tour: %w", err)
	}

	tour.ID = mongoid.PublicID(result.InsertedID)
	return nil
}

func (r *mongoTourRepository) FindAll(ctx context.Context) ([]*model.Tour, error) {
	collection, err := r.store.Collection(TourCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to find tours: %w", err)
	}

	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to find tours: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []tourDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode tours: %w", err)
	}

	tours := make([]*model.Tour, 0, len(docs))
	for i := range docs {
		tour := docs[i].Tour
		tour.ID = mongoid.PublicID(docs[i].ID)
		tours = append(tours, &tour)
	}
	return tours, nil
}

func (r *mongoTourRepository) Count(ctx context.Context) (int64, error) {
	collection, err := r.store.Collection(TourCollection)
	if err != nil {
		return 0, fmt.Errorf("failed to count tours: %w", err)
	}

	count, err := collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count tours: %w", err)
	}
	return count, nil
}
