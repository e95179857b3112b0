package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-tracker/internal/config"
	dbpkg "github.com/BruksfildServices01/client-tracker/internal/db"
	"github.com/BruksfildServices01/client-tracker/internal/routes"
	"github.com/BruksfildServices01/client-tracker/internal/session"
	"github.com/BruksfildServices01/client-tracker/internal/timezone"
	"github.com/BruksfildServices01/client-tracker/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	if !timezone.IsValid(cfg.Timezone) {
		log.Warn().Str("timezone", cfg.Timezone).Msg("unknown timezone, using server local time")
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	var revoker session.Revoker
	if cfg.RedisURL != "" {
		client, err := session.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer client.Close()
		revoker = session.NewRedisRevoker(client)
		log.Info().Msg("session revocation enabled")
	}

	if cfg.SessionSecret == config.DefaultSessionSecret {
		log.Warn().Msg("SESSION_SECRET is using the default value")
	}

	r := gin.New()
	r.Use(gin.Recovery())

	if err := routes.RegisterRoutes(r, db, cfg, revoker); err != nil {
		log.Fatal().Err(err).Msg("failed to register routes")
	}

	log.Info().Str("addr", cfg.Addr()).Bool("postgres", cfg.UsesPostgres()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
