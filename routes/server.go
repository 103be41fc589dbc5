package routes

import (
	"vaxbook/config"
	"vaxbook/database/repository"
	"vaxbook/handlers"
	"vaxbook/services/booking"
	"vaxbook/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewServer wires services and handlers over repos and returns the router.
func NewServer(repos *repository.Repositories, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	userService := &user.DefaultUserService{
		Repo:     repos.Users,
		TokenTTL: cfg.TokenTTL,
	}
	bookingService := booking.NewBookingService(repos)

	handlerBundle := handlers.NewHandlerBundle(
		repos.Users,
		handlers.NewAuthHandler(userService),
		handlers.NewBookingHandler(bookingService),
	)
	return NewRouter(handlerBundle, cfg, logger)
}
