package main

import (
	"context"

	bookinghandler "ijuruhub/internal/bookings/handler"
	bookingrepo "ijuruhub/internal/bookings/repository"
	bookingsvc "ijuruhub/internal/bookings/service"
	"ijuruhub/internal/bookings/validator"
	contacthandler "ijuruhub/internal/contacts/handler"
	contactrepo "ijuruhub/internal/contacts/repository"
	contactsvc "ijuruhub/internal/contacts/service"
	spacehandler "ijuruhub/internal/spaces/handler"
	spacerepo "ijuruhub/internal/spaces/repository"
	spacesvc "ijuruhub/internal/spaces/service"
	"ijuruhub/pkg/app"
	"ijuruhub/pkg/config"
	"ijuruhub/pkg/kafka"
	"ijuruhub/pkg/notify"

	"github.com/joho/godotenv"
)

const ServiceName = "ijuruhub-api"

func main() {
	// Missing .env is fine in production; everything falls back to real env.
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.ConnectMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting IJURU HUB API")

	dispatcher, closeProducer := initNotifications(cfg)
	defer closeProducer()

	spaceRepo := spacerepo.NewMongoSpaceRepository(cfg)
	spaceService := spacesvc.NewSpaceService(spaceRepo, cfg)

	if err := spaceService.SeedIfEmpty(context.Background()); err != nil {
		cfg.Log.Fatal("Failed to seed space catalog", "error", err)
	}

	bookingRepo := bookingrepo.NewMongoBookingRepository(cfg)
	bookingService := bookingsvc.NewBookingService(
		bookingRepo,
		spaceRepo,
		validator.NewBookingValidator(),
		dispatcher,
		cfg,
	)

	contactRepo := contactrepo.NewMongoContactRepository(cfg)
	contactService := contactsvc.NewContactService(contactRepo, dispatcher, cfg)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, dispatcher,
		spacehandler.NewSpaceHandler(spaceService, bookingService, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
		contacthandler.NewContactHandler(contactService, cfg.Log),
	)
	serverApp.Run()
}

// initNotifications wires the email and event sinks. Both are optional: the
// mailer no-ops without an API key and the event sink is skipped entirely
// when no brokers are configured.
func initNotifications(cfg *config.Config) (*notify.Dispatcher, func()) {
	sinks := []notify.Sink{
		notify.NewMailer(notify.MailerConfig{
			APIKey:         cfg.SendGridAPIKey,
			FromEmail:      cfg.EmailFrom,
			FromName:       cfg.EmailFromName,
			AdminEmail:     cfg.AdminEmail,
			SupportPhone:   cfg.SupportPhone,
			SupportAddress: cfg.SupportAddress,
			PaymentNumber:  cfg.PaymentNumber,
			Brand:          cfg.EmailFromName,
		}, cfg.Log),
	}

	closeProducer := func() {}
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaEventsTopic)
		if err != nil {
			cfg.Log.Fatal("Failed to create event producer", "error", err)
		}
		sinks = append(sinks, notify.NewEventSink(producer))
		closeProducer = func() {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close event producer", "error", err)
			}
		}
		cfg.Log.Info("Event publishing enabled", "topic", cfg.KafkaEventsTopic)
	}

	return notify.NewDispatcher(cfg.Log, cfg.RequestTimeout, sinks...), closeProducer
}
