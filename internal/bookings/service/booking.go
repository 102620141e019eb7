package service

import (
	"context"
	"errors"

	bookingserrors "stlucia/internal/bookings/errors"
	"stlucia/internal/bookings/repository"
	"stlucia/internal/bookings/validator"
	apperrors "stlucia/pkg/errors"
	"stlucia/pkg/logger"
	"stlucia/pkg/model"
	"stlucia/pkg/validation"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (string, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	leads     LeadPublisher
	log       *logger.Logger
}

// NewBookingService builds the booking service. leads may be nil, in which
// case stored bookings are not announced.
func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	leads LeadPublisher,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		leads:     leads,
		log:       log,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (string, error) {
	if err := s.validate(booking); err != nil {
		return "", err
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", "kind", booking.Kind, "item_id", booking.ItemID, "error", err)
		return "", apperrors.Internal("Failed to create booking", err)
	}

	s.log.Info("Booking created successfully",
		"id", booking.ID,
		"kind", booking.Kind,
		"item_id", booking.ItemID,
	)

	s.announce(ctx, booking)
	return booking.ID, nil
}

func (s *bookingService) validate(booking *model.Booking) error {
	err := s.validator.Validate(booking)
	if err == nil {
		return nil
	}

	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		s.log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Invalid booking input", fieldErrs.Details())
	}
	if errors.Is(err, bookingserrors.ErrInvalidKind) {
		s.log.Warn("Booking rejected", "kind", booking.Kind)
		return apperrors.InvalidInput("Invalid kind")
	}
	return apperrors.Internal("Failed to validate booking", err)
}

// announce publishes the lead event. The booking is already stored, so a
// failure here is only logged.
func (s *bookingService) announce(ctx context.Context, booking *model.Booking) {
	if s.leads == nil {
		return
	}
	if err := s.leads.PublishBookingCreated(ctx, booking); err != nil {
		s.log.Warn("Failed to publish booking lead", "id", booking.ID, "error", err)
	}
}
