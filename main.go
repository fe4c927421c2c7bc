package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"fintrack/api"
	"fintrack/config"
	"fintrack/database"
	"fintrack/logger"
	"fintrack/middleware"
	"fintrack/router"
	"fintrack/service"
	"fintrack/store"
)

// @title FinTrack API
// @version 1.0
// @description Personal income tracking API with cookie-based sessions, income categories and data export
// @host localhost:8080
// @BasePath /

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "path to an external config file (optional)")
	flag.StringVar(&configFile, "c", "", "path to an external config file (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 8080 or :8080")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&showVersion, "v", false, "print version and exit (shorthand)")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println("fintrack v" + version)
		return
	}

	// Local development reads FINTRACK_* vars from .env; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
	}

	logger.Init(cfg.Server.Mode)
	middleware.InitJWT(cfg)

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	st := store.NewGorm(db)

	authService := service.NewAuthService(st)
	incomeService := service.NewIncomeService(st, st)
	categoryService := service.NewCategoryService(st, st)
	emailService := service.NewEmailService(&cfg.Email)

	r := router.Setup(cfg, router.Handlers{
		Auth:     api.NewAuthHandler(cfg, authService, emailService),
		Income:   api.NewIncomeHandler(incomeService),
		Category: api.NewCategoryHandler(categoryService),
		User:     api.NewUserHandler(authService),
		Export:   api.NewExportHandler(incomeService),
	})

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Server.Port).Str("mode", cfg.Server.Mode).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if err := database.Close(db); err != nil {
		log.Error().Err(err).Msg("closing database")
	}
	log.Info().Msg("stopped")
}
