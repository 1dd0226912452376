package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/lib/pq"

	"defensoria/internal/action"
	"defensoria/internal/forms"
	"defensoria/internal/lookup"
	lookupmetrics "defensoria/internal/lookup/metrics"
	"defensoria/internal/platform/config"
	"defensoria/internal/platform/httpserver"
	"defensoria/internal/platform/logger"
	"defensoria/internal/platform/redis"
	"defensoria/internal/records"
	"defensoria/internal/relay"
	relaymetrics "defensoria/internal/relay/metrics"
	"defensoria/internal/relay/session"
	httptransport "defensoria/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var store records.Store
	if cfg.RecordsDSN != "" {
		db, err := sql.Open("postgres", cfg.RecordsDSN)
		if err != nil {
			log.Error("open records database failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		store = records.NewPostgres(db)
	} else {
		store = records.NewCSVStore(cfg.RecordsCSVPath, log)
	}

	lookupMetrics := lookupmetrics.New()
	lookupSvc := lookup.NewService(store, log, lookupMetrics)

	actions := action.NewHandler(log,
		action.NewLookupAction(lookupSvc, log, lookupMetrics),
		action.NewFormValidation(forms.ConsultaProceso()),
		action.NewFormValidation(forms.PQRSDF()),
		action.NewFormValidation(forms.Contacto()),
		action.ResetPQRSSlots{},
		action.Handoff{},
	)

	bot := relay.NewClient(cfg.BotURL, cfg.BotTimeout)

	var sessions session.Store
	if redisClient != nil {
		sessions = session.NewRedis(redisClient.Client, session.DefaultTTL)
	} else {
		sessions = session.NewInMemory(session.DefaultTTL)
	}

	chat := relay.NewHandler(
		bot,
		sessions,
		relay.NewSlidingWindowLimiter(cfg.ChatRateLimit, cfg.ChatRateWindow),
		log,
		relaymetrics.New(),
	)

	router := httptransport.NewRouter(httptransport.Deps{
		Relay:    chat,
		Actions:  actions,
		Records:  store,
		Bot:      bot,
		Redis:    redisClient,
		Sessions: sessions,
		Logger:   log,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting defensoria server", "addr", cfg.Addr, "bot_url", cfg.BotURL)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
