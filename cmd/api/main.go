package main

import (
	bookingshandler "stlucia/internal/bookings/handler"
	bookingsrepository "stlucia/internal/bookings/repository"
	bookingsservice "stlucia/internal/bookings/service"
	bookingsvalidator "stlucia/internal/bookings/validator"
	cataloghandler "stlucia/internal/catalog/handler"
	catalogrepository "stlucia/internal/catalog/repository"
	catalogservice "stlucia/internal/catalog/service"
	catalogvalidator "stlucia/internal/catalog/validator"
	statushandler "stlucia/internal/status/handler"
	"stlucia/pkg/app"
	"stlucia/pkg/config"
)

const ServiceName = "api"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting St. Lucia Tours & Rentals API")
	cfg.SetMongo()
	cfg.SetLeadsProducer()

	store := cfg.Client.Mongo
	catalogService := initCatalog(cfg)
	bookingService := initBookings(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		statushandler.NewHealthHandler(store, cfg.Log),
		statushandler.NewStatusHandler(store, cfg.Log),
		cataloghandler.NewCatalogHandler(catalogService, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
	)
	serverApp.Run()
}

func initCatalog(cfg *config.Config) catalogservice.CatalogService {
	catalogService := catalogservice.NewCatalogService(
		catalogrepository.NewMongoTourRepository(cfg.Client.Mongo),
		catalogrepository.NewMongoVehicleRepository(cfg.Client.Mongo),
		catalogvalidator.NewCatalogValidator(cfg.Log),
		cfg.Log,
	)

	cfg.Log.Info("Catalog service initialized", "database", cfg.MongoDatabaseName)
	return catalogService
}

func initBookings(cfg *config.Config) bookingsservice.BookingService {
	bookingService := bookingsservice.NewBookingService(
		bookingsrepository.NewMongoBookingRepository(cfg.Client.Mongo),
		bookingsvalidator.NewBookingValidator(cfg.Log),
		bookingsservice.NewKafkaLeadPublisher(cfg.Client.Leads),
		cfg.Log,
	)

	cfg.Log.Info("Booking service initialized",
		"database", cfg.MongoDatabaseName,
		"lead_events", cfg.Client.Leads != nil,
	)
	return bookingService
}
