package validator

import (
	"github.com/go-playground/validator/v10"

	"stlucia/pkg/logger"
	"stlucia/pkg/model"
	"stlucia/pkg/validation"
)

type CatalogValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewCatalogValidator(log *logger.Logger) *CatalogValidator {
	log.Info("Catalog validator initialized successfully")

	return &CatalogValidator{
		validate: validation.New(),
		logger:   log,
	}
}

// ValidateTour enforces required text fields, price >= 0 and duration_hours >= 1.
func (v *CatalogValidator) ValidateTour(tour *model.Tour) error {
	return validation.Struct(v.validate, tour)
}

// ValidateVehicle enforces required text fields, seats >= 1 and price_per_day >= 0.
func (v *CatalogValidator) ValidateVehicle(vehicle *model.Vehicle) error {
	return validation.Struct(v.validate, vehicle)
}
