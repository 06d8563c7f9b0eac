package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/venuehaven/venue-booking-backend/internal/api"
	"github.com/venuehaven/venue-booking-backend/internal/auth"
	"github.com/venuehaven/venue-booking-backend/internal/blockedperiod"
	"github.com/venuehaven/venue-booking-backend/internal/booking"
	"github.com/venuehaven/venue-booking-backend/internal/reservation"
	"github.com/venuehaven/venue-booking-backend/internal/user"
	"github.com/venuehaven/venue-booking-backend/internal/venue"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Venue Module
	venueRepo := venue.NewPgxRepository(cfg.DBPool)
	venueService := venue.NewService(venueRepo)

	// Reservation Module (bookings + blocked periods + availability)
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	blockedRepo := blockedperiod.NewPgxRepository(cfg.DBPool)
	reservationService := reservation.NewService(bookingRepo, blockedRepo, venueService)

	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		UserService:        userService,
		VenueService:       venueService,
		ReservationService: reservationService,
		JWTManager:         jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
