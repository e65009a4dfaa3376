package main

import (
	"context"

	_ "contact-info-api/docs"
	"contact-info-api/internal/config"
	"contact-info-api/internal/geocoder"
	"contact-info-api/internal/handler"
	"contact-info-api/internal/repository"
	"contact-info-api/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title        Contact Info API
// @version      1.0
// @description  Contact info widgets with geocoded addresses and map links.
// @BasePath     /
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", config.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	if err := repo.CreateSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	geo := geocoder.NewClient(config.GeocodeEndpoint, config.GoogleMapsAPIKey, config.GeocodeTimeout)

	contactInfoService := service.NewContactInfoService(repo, geo, config.GoogleMapsAPIKey)
	verificationService := service.NewVerificationService(repo, config.AdminToolsURL)

	contactInfoHandler := handler.NewContactInfoHandler(contactInfoService)
	verificationHandler := handler.NewVerificationHandler(verificationService)

	r := handler.NewRouter(contactInfoHandler, verificationHandler)

	log.Info().Str("addr", config.ServerAddress).Msg("server listening")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
