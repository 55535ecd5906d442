// Router setup layer.

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Thammasok/user-api/auth"
	"github.com/Thammasok/user-api/config"
	"github.com/Thammasok/user-api/handlers"
	"github.com/Thammasok/user-api/middlewares"
	"github.com/Thammasok/user-api/services"
)

// Setup attaches middlewares and registers all endpoints.
func Setup(r *gin.Engine, svc services.UserService, cfg *config.Config) {
	m := middlewares.NewMetrics("user_api")

	r.Use(
		middlewares.CorrelationID(),
		middlewares.RequestLogger(),
		middlewares.Recovery(),
		m.Handler(),
	)

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.HealthCheck)
	r.GET("/metrics", m.Expose())

	api := r.Group("/api")
	if cfg.AuthEnabled {
		api.Use(middlewares.BearerAuth(verifierFor(cfg)))
	}

	uh := handlers.NewUserHandler(svc)
	api.GET("/users", uh.GetAll)
	api.POST("/users", uh.Create)
	api.GET("/users/:id", uh.GetByID)
	api.PUT("/users/:id", uh.Update)
	api.DELETE("/users/:id", uh.Delete)
}

// verifierFor picks the credential check for the bearer gate.
func verifierFor(cfg *config.Config) auth.TokenVerifier {
	if cfg.AuthMode == "jwt" {
		return auth.HS256{Secret: cfg.JWTSecret}
	}
	return auth.NonEmpty{}
}
