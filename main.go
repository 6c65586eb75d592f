package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinagenda/config"
	"clinagenda/database"
	bookingRepo "clinagenda/database/repository/booking"
	professionalRepo "clinagenda/database/repository/professional"
	roomRepo "clinagenda/database/repository/room"
	"clinagenda/handlers"
	"clinagenda/middleware"
	"clinagenda/routes"
	"clinagenda/services/appointment"
	"clinagenda/services/availability"
	"clinagenda/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.Use(routes.CORSMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	professionals := professionalRepo.NewMongoProfessionalRepo()
	rooms := roomRepo.NewMongoRoomRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Schedule:         availability.ScheduleConfigFromApp(),
		BookingRepo:      bookings,
		ProfessionalRepo: professionals,
		RoomRepo:         rooms,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		BookingRepo:  bookings,
		Availability: availabilityService,
	}

	// handlers and routes.
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, logger)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, logger)
	professionalHandler := handlers.NewProfessionalHandler(professionals, logger)

	routes.RegisterAvailabilityRoutes(router, availabilityHandler)
	routes.RegisterAppointmentRoutes(router, appointmentHandler)
	routes.RegisterProfessionalRoutes(router, professionalHandler, appointmentHandler)
	routes.RegisterHealthRoutes(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
