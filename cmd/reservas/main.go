package main

import (
	"github.com/joho/godotenv"

	"reserbot/internal/reservas/events"
	"reserbot/internal/reservas/handler"
	"reserbot/internal/reservas/repository"
	"reserbot/internal/reservas/service"
	"reserbot/internal/reservas/validator"
	"reserbot/pkg/app"
	"reserbot/pkg/config"
	"reserbot/pkg/kafka"
	kafka_config "reserbot/pkg/kafka/config"
)

const ServiceName = "reservas"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Reservas service")

	publisher := initEvents(cfg)
	if closer, ok := publisher.(*events.KafkaPublisher); ok {
		defer closer.Close()
	}

	reservationService := initServices(cfg, publisher)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewReservationHandler(reservationService, cfg))
	serverApp.Run()
}

func initEvents(cfg *config.Config) events.Publisher {
	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka eventing disabled, using noop publisher")
		return events.NoopPublisher{}
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	producer, err := kafka.NewProducer(kafkaCfg, cfg.KafkaTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Kafka eventing enabled", "topic", cfg.KafkaTopic)
	return events.NewKafkaPublisher(producer, cfg.Log)
}

func initServices(cfg *config.Config, publisher events.Publisher) service.ReservationService {
	reservationValidator := validator.NewReservationValidator(cfg.Log)
	reservationRepo := repository.NewMongoReservationRepository(cfg)
	reservationService := service.NewReservationService(
		reservationRepo,
		reservationValidator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Reservation service initialized", "database", cfg.MongoDatabaseName)
	return reservationService
}
