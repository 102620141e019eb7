package validator

import (
	"github.com/go-playground/validator/v10"

	bookingserrors "stlucia/internal/bookings/errors"
	"stlucia/pkg/logger"
	"stlucia/pkg/model"
	"stlucia/pkg/validation"
)

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: validation.New(),
		logger:   log,
	}
}

// Validate checks required fields first and returns validation.FieldErrors
// when any are missing. A complete booking whose kind is neither "tour" nor
// "vehicle", including an empty kind, yields ErrInvalidKind.
func (v *BookingValidator) Validate(booking *model.Booking) error {
	if err := validation.Struct(v.validate, booking); err != nil {
		return err
	}
	if !model.IsBookingKind(booking.Kind) {
		return bookingserrors.ErrInvalidKind
	}
	return nil
}
