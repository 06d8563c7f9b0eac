package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/venuehaven/venue-booking-backend/internal/auth"
	"github.com/venuehaven/venue-booking-backend/internal/reservation"
	resHttp "github.com/venuehaven/venue-booking-backend/internal/reservation/http"
	"github.com/venuehaven/venue-booking-backend/internal/user"
	userHttp "github.com/venuehaven/venue-booking-backend/internal/user/http"
	"github.com/venuehaven/venue-booking-backend/internal/venue"
	venueHttp "github.com/venuehaven/venue-booking-backend/internal/venue/http"
)

// Config holds the services and settings the router assembles.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService        user.Service
	VenueService       venue.Service
	ReservationService reservation.Service
	JWTManager         *auth.JWTManager
}

// NewRouter initializes the HTTP router engine: global middleware (logging,
// recovery, CORS) and the per-module route registrations.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	ownerMiddleware := RequireOwner()

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	venueHandler := venueHttp.NewHandler(cfg.VenueService, cfg.ReservationService)
	bookingHandler := resHttp.NewHandler(cfg.ReservationService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		venueHttp.RegisterRoutes(v1, venueHandler, authMiddleware, ownerMiddleware)
		resHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
	}

	return r
}
