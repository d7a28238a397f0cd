package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	reservaserrors "reserbot/internal/reservas/errors"
	"reserbot/internal/reservas/events"
	"reserbot/internal/reservas/repository"
	"reserbot/internal/reservas/validator"
	"reserbot/pkg/config"
	apperrors "reserbot/pkg/errors"
	"reserbot/pkg/model"
	"reserbot/pkg/sanitizer"
)

type ReservationService interface {
	List(ctx context.Context) ([]*model.Reservation, error)
	Create(ctx context.Context, res *model.Reservation) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type reservationService struct {
	repo      repository.ReservationRepository
	validator *validator.ReservationValidator
	events    events.Publisher
	cfg       *config.Config
}

func NewReservationService(
	repo repository.ReservationRepository,
	validator *validator.ReservationValidator,
	events events.Publisher,
	cfg *config.Config,
) ReservationService {
	return &reservationService{
		repo:      repo,
		validator: validator,
		events:    events,
		cfg:       cfg,
	}
}

func (s *reservationService) List(ctx context.Context) ([]*model.Reservation, error) {
	reservations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.storeError("list reservations", err)
	}

	if reservations == nil {
		reservations = []*model.Reservation{}
	}
	return reservations, nil
}

func (s *reservationService) Create(ctx context.Context, res *model.Reservation) error {
	s.sanitize(res)

	if verr := s.validator.ValidateCreate(res); verr != nil {
		s.cfg.Log.Warn("Reservation validation failed", "field", verr.Field, "reason", verr.Message)
		return apperrors.Validation(verr.Message, map[string]any{"field": verr.Field})
	}

	if err := s.repo.Insert(ctx, res); err != nil {
		return s.storeError("create reservation", err)
	}

	s.cfg.Log.Info("Reservation created successfully",
		"id", res.ID,
		"fecha", res.Fecha,
		"hora", res.Hora,
		"servicio", res.Servicio,
	)

	if err := s.events.ReservationCreated(ctx, res); err != nil {
		s.cfg.Log.Warn("Failed to publish reservation created event", "id", res.ID, "error", err)
	}
	return nil
}

func (s *reservationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservaserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid reservation ID format")
		}
		return s.storeError("delete reservation", err)
	}

	s.cfg.Log.Info("Reservation deleted successfully", "id", id)

	if err := s.events.ReservationDeleted(ctx, id); err != nil {
		s.cfg.Log.Warn("Failed to publish reservation deleted event", "id", id, "error", err)
	}
	return nil
}

func (s *reservationService) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, s.storeError("count reservations", err)
	}
	return count, nil
}

// --- Helpers ---

func (s *reservationService) sanitize(res *model.Reservation) {
	res.Nombre = sanitizer.NormalizeName(res.Nombre)
	res.Servicio = sanitizer.NormalizeLabel(res.Servicio)
	res.Fecha = sanitizer.TrimAndNormalize(res.Fecha)
	res.Hora = sanitizer.TrimAndNormalize(res.Hora)
}

// storeError implements the two-tier failure taxonomy: errors the store
// reported in response to a request become caller-input-class failures
// carrying the store's message, everything else is an internal failure whose
// detail is logged but not exposed.
func (s *reservationService) storeError(op string, err error) error {
	var srvErr mongo.ServerError
	if errors.As(err, &srvErr) {
		s.cfg.Log.Warn("Record store rejected request", "operation", op, "error", err)
		return apperrors.StoreRejected(srvErr.Error(), err)
	}

	s.cfg.Log.Error("Record store call failed", "operation", op, "error", err)
	return apperrors.Internal("failed to "+op, err)
}
