package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Thammasok/user-api/config"
	"github.com/Thammasok/user-api/events"
	"github.com/Thammasok/user-api/repositories"
	"github.com/Thammasok/user-api/routes"
	"github.com/Thammasok/user-api/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// 1) Load config from file and/or env.
	cfg := config.Load()
	log.Info().
		Str("app", cfg.AppName).
		Str("env", cfg.Env).
		Str("addr", cfg.ServerAddress()).
		Msg("starting server")

	// 2) Initialize infrastructure. DB failures are fatal; Redis and
	// RabbitMQ are optional and skipped when not configured.
	db := config.InitDB(cfg)
	rdb := config.InitRedis(cfg)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		p, err := events.NewRabbitMQPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.Fatal().Err(err).Msg("rabbitmq connect failed")
		}
		defer p.Close()
		publisher = p
		log.Info().Msg("rabbitmq connected")
	}

	// 3) Construct repository and service (dependency injection).
	userRepo := repositories.NewUserRepository(db)
	userSvc := services.NewUserService(userRepo, rdb, publisher)

	// 4) Create a bare Gin engine and wire routes.
	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	routes.Setup(r, userSvc, cfg)

	// 5) Start the HTTP server; fatal if it fails to bind.
	if err := r.Run(cfg.ServerAddress()); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
