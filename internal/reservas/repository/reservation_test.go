package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	reservaserrors "reserbot/internal/reservas/errors"
	"reserbot/pkg/client"
	"reserbot/pkg/config"
)

func testRepoConfig() *config.Config {
	return &config.Config{
		MongoDatabaseName: "reserbot",
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      5 * time.Second,
		Client:            client.NewClient(),
	}
}

// A store client that failed to construct must fail each operation at call
// time instead of panicking or stopping startup.
func TestUnconfiguredStoreFailsAtCallTime(t *testing.T) {
	repo := NewMongoReservationRepository(testRepoConfig())
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"find all", func() error { _, err := repo.FindAll(ctx); return err }},
		{"insert", func() error { return repo.Insert(ctx, nil) }},
		{"delete", func() error { return repo.Delete(ctx, "650000000000000000000001") }},
		{"count", func() error { _, err := repo.Count(ctx); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("expected error from unconfigured store, got nil")
			}
			if !errors.Is(err, reservaserrors.ErrStoreUnconfigured) {
				t.Errorf("expected ErrStoreUnconfigured, got: %v", err)
			}
		})
	}
}

func TestFindAll_SortsByFechaAscending(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock).DatabaseName("reserbot").CollectionName(CollectionName))

	mt.Run("find uses ascending fecha sort", func(mt *mtest.T) {
		ns := "reserbot." + CollectionName
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "nombre", Value: "Ana García"},
			{Key: "fecha", Value: "2030-06-14"},
			{Key: "hora", Value: "10:30"},
			{Key: "servicio", Value: "corte"},
		})
		second := mtest.CreateCursorResponse(0, ns, mtest.NextBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "nombre", Value: "Juan Pérez"},
			{Key: "fecha", Value: "2030-06-15"},
			{Key: "hora", Value: "16:00"},
			{Key: "servicio", Value: "tinte"},
		})
		mt.AddMockResponses(first, second)

		repo := &mongoReservationRepository{
			cfg:        testRepoConfig(),
			collection: mt.Coll,
		}

		reservations, err := repo.FindAll(context.Background())
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if len(reservations) != 2 {
			mt.Fatalf("expected 2 reservations, got %d", len(reservations))
		}
		if reservations[0].Fecha != "2030-06-14" || reservations[1].Fecha != "2030-06-15" {
			mt.Errorf("store order not preserved: %s, %s", reservations[0].Fecha, reservations[1].Fecha)
		}

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "find" {
			mt.Fatalf("expected a find command, got %+v", evt)
		}

		sortVal, err := evt.Command.LookupErr("sort")
		if err != nil {
			mt.Fatal("find command carries no sort document")
		}
		fecha, ok := sortVal.Document().Lookup("fecha").Int32OK()
		if !ok || fecha != 1 {
			mt.Errorf("expected ascending sort on fecha, got %v", sortVal)
		}
	})
}
