package service

import (
	"context"
	"errors"
	"fmt"

	"stlucia/internal/catalog/repository"
	"stlucia/internal/catalog/validator"
	apperrors "stlucia/pkg/errors"
	"stlucia/pkg/logger"
	"stlucia/pkg/model"
	"stlucia/pkg/validation"
)

// SeedResult reports how many records Seed inserted per kind.
type SeedResult struct {
	Tours    int `json:"tours"`
	Vehicles int `json:"vehicles"`
}

type CatalogService interface {
	ListTours(ctx context.Context) ([]*model.Tour, error)
	ListVehicles(ctx context.Context) ([]*model.Vehicle, error)
	CreateTour(ctx context.Context, tour *model.Tour) error
	CreateVehicle(ctx context.Context, vehicle *model.Vehicle) error
	Seed(ctx context.Context) (*SeedResult, error)
}

type catalogService struct {
	tours     repository.TourRepository
	vehicles  repository.VehicleRepository
	validator *validator.CatalogValidator
	log       *logger.Logger
}

func NewCatalogService(
	tours repository.TourRepository,
	vehicles repository.VehicleRepository,
	validator *validator.CatalogValidator,
	log *logger.Logger,
) CatalogService {
	return &catalogService{
		tours:     tours,
		vehicles:  vehicles,
		validator: validator,
		log:       log,
	}
}

func (s *catalogService) ListTours(ctx context.Context) ([]*model.Tour, error) {
	tours, err := s.tours.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list tours", "error", err)
		return nil, apperrors.Internal("Failed to retrieve tours", err)
	}
	return tours, nil
}

func (s *catalogService) ListVehicles(ctx context.Context) ([]*model.Vehicle, error) {
	vehicles, err := s.vehicles.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list vehicles", "error", err)
		return nil, apperrors.Internal("Failed to retrieve vehicles", err)
	}
	return vehicles, nil
}

func (s *catalogService) CreateTour(ctx context.Context, tour *model.Tour) error {
	if err := s.insertTour(ctx, tour); err != nil {
		return s.translateCreateError("tour", err)
	}
	s.log.Info("Tour created successfully", "id", tour.ID, "title", tour.Title)
	return nil
}

func (s *catalogService) CreateVehicle(ctx context.Context, vehicle *model.Vehicle) error {
	if err := s.insertVehicle(ctx, vehicle); err != nil {
		return s.translateCreateError("vehicle", err)
	}
	s.log.Info("Vehicle created successfully", "id", vehicle.ID, "name", vehicle.Name)
	return nil
}

// Seed inserts the sample tours and vehicles into collections that are
// currently empty. Collections holding any record are left untouched, so
// repeated calls never duplicate data. The first store error aborts the run.
func (s *catalogService) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}

	tourCount, err := s.tours.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count tours for seeding", "error", err)
		return nil, apperrors.Internal("Failed to seed tours", err)
	}
	if tourCount == 0 {
		for _, tour := range sampleTours() {
			if err := s.insertTour(ctx, tour); err != nil {
				s.log.Error("Failed to seed tour", "title", tour.Title, "error", err)
				return nil, apperrors.Internal("Failed to seed tours", err)
			}
			result.Tours++
		}
	}

	vehicleCount, err := s.vehicles.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count vehicles for seeding", "error", err)
		return nil, apperrors.Internal("Failed to seed vehicles", err)
	}
	if vehicleCount == 0 {
		for _, vehicle := range sampleVehicles() {
			if err := s.insertVehicle(ctx, vehicle); err != nil {
				s.log.Error("Failed to seed vehicle", "name", vehicle.Name, "error", err)
				return nil, apperrors.Internal("Failed to seed vehicles", err)
			}
			result.Vehicles++
		}
	}

	s.log.Info("Seeding completed",
		"tours_created", result.Tours,
		"vehicles_created", result.Vehicles,
		"tours_existing", tourCount,
		"vehicles_existing", vehicleCount,
	)
	return result, nil
}

func (s *catalogService) insertTour(ctx context.Context, tour *model.Tour) error {
	if err := s.validator.ValidateTour(tour); err != nil {
		return err
	}
	return s.tours.Create(ctx, tour)
}

func (s *catalogService) insertVehicle(ctx context.Context, vehicle *model.Vehicle) error {
	if err := s.validator.ValidateVehicle(vehicle); err != nil {
		return err
	}
	return s.vehicles.Create(ctx, vehicle)
}

func (s *catalogService) translateCreateError(kind string, err error) error {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		s.log.Warn("Validation failed", "kind", kind, "error", err)
		return apperrors.Validation(fmt.Sprintf("Invalid %s input", kind), fieldErrs.Details())
	}
	s.log.Error("Failed to create record", "kind", kind, "error", err)
	return apperrors.Internal(fmt.Sprintf("Failed to create %s", kind), err)
}
