package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carenotes/internal/config"
	"carenotes/internal/handler"
	"carenotes/internal/repository/sqlite"
	"carenotes/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

//go:embed web/static
var webFS embed.FS

func main() {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, cfgPath, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfgPath != "" {
		log.Info().Str("path", cfgPath).Msg("config loaded")
	}
	if *addr != "" {
		cfg.Listen = *addr
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("open database")
	}
	defer store.Close()

	if err := store.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("initialize database")
	}
	log.Info().Str("path", cfg.Database.Path).Msg("database ready")

	noteHandler := handler.NewNoteHandler(service.NewNoteService(store), log)

	static, err := fs.Sub(webFS, "web/static")
	if err != nil {
		log.Fatal().Err(err).Msg("embedded static content")
	}

	mux := handler.NewRouter(noteHandler, static)

	corsMiddleware := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "Accept"},
	})

	finalHandler := handler.Chain(mux,
		handler.Recover(log),
		corsMiddleware.Handler,
		handler.RequestLog(log),
	)

	server := &http.Server{
		Addr:         cfg.Listen,
		Handler:      finalHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Listen).Msg("server listening")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("server stopped")
}
