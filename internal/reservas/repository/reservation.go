package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	reservaserrors "reserbot/internal/reservas/errors"
	"reserbot/pkg/config"
	"reserbot/pkg/model"
)

const (
	CollectionName = "Reservas"
)

type ReservationRepository interface {
	Insert(ctx context.Context, res *model.Reservation) error
	FindAll(ctx context.Context) ([]*model.Reservation, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoReservationRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoReservationRepository(cfg *config.Config) ReservationRepository {
	return &mongoReservationRepository{cfg: cfg}
}

// reservas resolves the collection at call time. A store client that could
// not be constructed from the configuration fails each operation here instead
// of failing service startup.
func (r *mongoReservationRepository) reservas() (*mongo.Collection, error) {
	if r.collection != nil {
		return r.collection, nil
	}

	if r.cfg.Client == nil || r.cfg.Client.Mongo == nil || r.cfg.Client.Mongo.Client == nil {
		return nil, reservaserrors.ErrStoreUnconfigured
	}

	db := r.cfg.Client.Mongo.Client.Database(r.cfg.MongoDatabaseName)
	return db.Collection(CollectionName), nil
}

// withTimeout wraps the context with a per-call timeout, respecting any
// tighter deadline already present.
func (r *mongoReservationRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoReservationRepository) Insert(ctx context.Context, res *model.Reservation) error {
	coll, err := r.reservas()
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	res.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := coll.InsertOne(ctx, res)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		res.ID = oid.Hex()
	}
	return nil
}

func (r *mongoReservationRepository) FindAll(ctx context.Context) ([]*model.Reservation, error) {
	coll, err := r.reservas()
	if err != nil {
		return nil, fmt.Errorf("failed to find reservations: %w", err)
	}

	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "fecha", Value: 1}})

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []*model.Reservation
	if err = cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}

	return reservations, nil
}

// Delete removes the reservation matching id. Zero deletions are reported as
// success: callers cannot distinguish an absent id from a deleted one.
func (r *mongoReservationRepository) Delete(ctx context.Context, id string) error {
	coll, err := r.reservas()
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", reservaserrors.ErrInvalidID, id)
	}

	filter := bson.M{"_id": objectID}
	if _, err := coll.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	return nil
}

func (r *mongoReservationRepository) Count(ctx context.Context) (int64, error) {
	coll, err := r.reservas()
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	return count, nil
}
