package events

import (
	"context"

	"reserbot/pkg/kafka"
	"reserbot/pkg/logger"
	"reserbot/pkg/model"
)

const (
	EventReservationCreated = "reserva.created"
	EventReservationDeleted = "reserva.deleted"

	schemaVersion = "1"
	source        = "reservas"
)

// Publisher emits reservation lifecycle events. Publishing is best-effort:
// callers log failures and never fail the request over them.
type Publisher interface {
	ReservationCreated(ctx context.Context, res *model.Reservation) error
	ReservationDeleted(ctx context.Context, id string) error
}

// NoopPublisher is used when eventing is disabled.
type NoopPublisher struct{}

func (NoopPublisher) ReservationCreated(ctx context.Context, res *model.Reservation) error {
	return nil
}

func (NoopPublisher) ReservationDeleted(ctx context.Context, id string) error {
	return nil
}

type KafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		log:      log,
	}
}

func (p *KafkaPublisher) ReservationCreated(ctx context.Context, res *model.Reservation) error {
	msg := kafka.NewMessage().
		WithKey(res.ID).
		WithValue(res).
		WithEventType(EventReservationCreated).
		WithSchemaVersion(schemaVersion).
		WithSource(source).
		Build()

	return p.producer.Publish(ctx, msg)
}

func (p *KafkaPublisher) ReservationDeleted(ctx context.Context, id string) error {
	payload := struct {
		ID string `json:"id"`
	}{ID: id}

	msg := kafka.NewMessage().
		WithKey(id).
		WithValue(payload).
		WithEventType(EventReservationDeleted).
		WithSchemaVersion(schemaVersion).
		WithSource(source).
		Build()

	return p.producer.Publish(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
