package main

import (
	"context"
	"database/sql"
	"flag"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jhoicas/gategroup-ops/pkg/config"
	"github.com/jhoicas/gategroup-ops/pkg/logger"
	"github.com/jhoicas/gategroup-ops/pkg/migrate"
)

func main() {
	cmd := flag.String("cmd", "up", "comando de goose: up|down|status|version|redo|reset")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{Env: "development"}).Fatal().Err(err).Msg("config")
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("migrate")

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos")
	}
	defer db.Close()

	log.Info().Str("cmd", *cmd).Msg("ejecutando migraciones")
	if err := migrate.Run(context.Background(), db, *cmd, flag.Args()...); err != nil {
		log.Error().Err(err).Msg("migración fallida")
		os.Exit(1)
	}
	log.Info().Msg("migraciones completadas")
}
