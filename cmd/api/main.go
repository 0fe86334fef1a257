package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "github.com/Erkin33/hotel-new-rent/internal/adapters/http_server"
	"github.com/Erkin33/hotel-new-rent/internal/adapters/observability"
	redisad "github.com/Erkin33/hotel-new-rent/internal/adapters/redis"
	"github.com/Erkin33/hotel-new-rent/internal/app"
	"github.com/Erkin33/hotel-new-rent/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	store := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	drafts := app.NewDraftService(store)
	bookings := app.NewBookingService(store, drafts)
	prefs := app.NewPrefsService(store)
	auth := app.NewAuthService(store)

	// http
	srv := server.New(cfg.HTTPRate)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Drafts:   drafts,
		Bookings: bookings,
		Prefs:    prefs,
		Auth:     auth,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
