package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KaarimHussain/FitFlow-sub000/config"
	"github.com/KaarimHussain/FitFlow-sub000/routes"
	"github.com/KaarimHussain/FitFlow-sub000/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	db := config.InitDB()

	if err := services.NewAuthService(db, cfg).EnsureAdmin(); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	r := routes.SetupRouter(db, cfg)
	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
