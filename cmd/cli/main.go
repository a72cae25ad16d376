package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/authdesk/internal/buildinfo"
	"github.com/dmitrijs2005/authdesk/internal/client/api"
	"github.com/dmitrijs2005/authdesk/internal/client/cli"
	"github.com/dmitrijs2005/authdesk/internal/client/config"
	"github.com/dmitrijs2005/authdesk/internal/client/services"
	"github.com/dmitrijs2005/authdesk/internal/client/session"
	"github.com/dmitrijs2005/authdesk/internal/client/storage"
	"github.com/dmitrijs2005/authdesk/internal/filex"
	"github.com/dmitrijs2005/authdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logFile, err := filex.OpenAppend(cfg.LogPath)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer logFile.Close()

	logger := logging.NewTextLogger(logFile, logging.ParseLevel(cfg.LogLevel))
	logger.Info(ctx, "starting", "api", cfg.APIBaseURL, "db", cfg.DatabasePath, "form", cfg.FormMode)

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "database init failed", "error", err)
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	store := session.NewSQLiteStore(db, logger)
	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, logger)
	authService := services.NewAuthService(apiClient, store, logger)

	app := cli.NewApp(cfg, authService, store, logger, os.Stdin, os.Stdout)
	app.Run(ctx)

	logger.Info(ctx, "bye")
}
