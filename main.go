// Package main is the application entry point.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/mtsk/calheat/api"
	"github.com/mtsk/calheat/config"
	"github.com/mtsk/calheat/db"
	"github.com/mtsk/calheat/logger"
	"github.com/mtsk/calheat/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Initialize("info")
		log.Fatal().Err(err).Msg("loading configuration")
	}
	logger.Initialize(cfg.LogLevel)

	sqliteStore, err := store.NewSQLiteStore(cfg.DataDir, db.Migrate)
	if err != nil {
		log.Fatal().Err(err).Msg("initializing SQLite store")
	}
	defer sqliteStore.Close()

	server := api.NewServer(sqliteStore, cfg)

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
