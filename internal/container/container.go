package container

import (
	"log/slog"

	"github.com/vikramKumar-01/Hotel-mangement/internal/config"
	"github.com/vikramKumar-01/Hotel-mangement/internal/helpers"
	"github.com/vikramKumar-01/Hotel-mangement/internal/models"
	"github.com/vikramKumar-01/Hotel-mangement/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client
	Repo          *models.MongodbRepo
	Tokens        *helpers.TokenIssuer

	UserService    *services.UserService
	VenueService   *services.VenuesService
	BookingService *services.BookingService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBName)

	return &Container{
		Logger:         logger,
		Config:         cfg,
		MongoDBClient:  mongoDBClient,
		Repo:           repo,
		Tokens:         helpers.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL),
		UserService:    services.NewUserService(repo),
		VenueService:   services.NewVenuesService(repo),
		BookingService: services.NewBookingService(repo),
	}
}
