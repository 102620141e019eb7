package service

import (
	"context"
	"time"

	"stlucia/pkg/kafka"
	"stlucia/pkg/middleware"
	"stlucia/pkg/model"
)

const (
	EventBookingCreated = "booking.created"
	leadSchemaVersion   = "1"
	leadSource          = "stlucia-api"
)

type LeadPublisher interface {
	PublishBookingCreated(ctx context.Context, booking *model.Booking) error
}

// BookingCreatedEvent is the payload announced for every stored booking.
type BookingCreatedEvent struct {
	BookingID string    `json:"booking_id"`
	Kind      string    `json:"kind"`
	ItemID    string    `json:"item_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Date      string    `json:"date"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type eventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type kafkaLeadPublisher struct {
	producer eventPublisher
}

// NewKafkaLeadPublisher returns a LeadPublisher backed by producer, or nil
// when lead events are disabled.
func NewKafkaLeadPublisher(producer *kafka.Producer) LeadPublisher {
	if producer == nil {
		return nil
	}
	return &kafkaLeadPublisher{producer: producer}
}

func (p *kafkaLeadPublisher) PublishBookingCreated(ctx context.Context, booking *model.Booking) error {
	msg := kafka.NewMessage().
		WithKey(booking.ID).
		WithValue(newBookingCreatedEvent(booking)).
		WithEventType(EventBookingCreated).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		WithSchemaVersion(leadSchemaVersion).
		WithSource(leadSource).
		Build()

	return p.producer.Publish(ctx, msg)
}

func newBookingCreatedEvent(booking *model.Booking) BookingCreatedEvent {
	return BookingCreatedEvent{
		BookingID: booking.ID,
		Kind:      booking.Kind,
		ItemID:    booking.ItemID,
		Name:      booking.Name,
		Email:     booking.Email,
		Phone:     booking.Phone,
		Date:      booking.Date,
		Notes:     booking.Notes,
		CreatedAt: time.Now().UTC(),
	}
}
