package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/turfbook/turf-booking-service/config"
	"github.com/turfbook/turf-booking-service/internal/handler"
	"github.com/turfbook/turf-booking-service/internal/middleware"
	"github.com/turfbook/turf-booking-service/internal/repository"
	"github.com/turfbook/turf-booking-service/internal/service"
	"github.com/turfbook/turf-booking-service/pkg/database"
	"github.com/turfbook/turf-booking-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Event publisher is optional; without a broker the API runs the same.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		log.Println("RABBITMQ_URL not set, event publishing disabled")
	}

	// Repositories
	turfRepo := repository.NewTurfRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	turfSvc := service.NewTurfService(turfRepo, publisher)
	bookingSvc := service.NewBookingService(bookingRepo, turfRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "Turf Booking API is running"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "turf-booking-service"})
	})

	handler.NewTurfHandler(turfSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)

	log.Printf("Turf Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
