// Package httptransport assembles the public HTTP surface: the chat relay,
// the dialogue backend's action webhook, and operational endpoints.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"defensoria/internal/action"
	"defensoria/internal/platform/redis"
	"defensoria/internal/records"
	"defensoria/internal/relay"
	"defensoria/internal/relay/session"
	"defensoria/pkg/platform/httputil"
	"defensoria/pkg/platform/middleware/metadata"
	"defensoria/pkg/platform/middleware/requestid"
)

const readinessTimeout = 5 * time.Second

// Deps carries everything the router mounts. Redis is nil when the session
// store runs in memory.
type Deps struct {
	Relay   *relay.Handler
	Actions *action.Handler

	Records  records.Store
	Bot      relay.BotClient
	Redis    *redis.Client
	Sessions session.Store

	Logger *slog.Logger
}

// NewRouter wires middleware, the two application handlers, and the
// health/metrics endpoints.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.RequestID)
	r.Use(metadata.ClientMetadata)

	deps.Relay.Register(r)
	deps.Actions.Register(r)

	r.Get("/healthz", handleHealth(deps))
	r.Get("/readyz", handleReadiness(deps))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// handleHealth reports process liveness plus how many conversations are
// currently active. The count is best-effort and never fails the probe.
func handleHealth(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var active int64
		if deps.Sessions != nil {
			n, err := deps.Sessions.ActiveCount(r.Context(), time.Now())
			if err != nil {
				deps.Logger.WarnContext(r.Context(), "session count failed", "error", err)
			} else {
				active = n
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"status":          "ok",
			"active_sessions": active,
		})
	}
}

// handleReadiness probes the record store, the dialogue backend, and Redis
// (when configured) in parallel. Any failure marks the instance not ready so
// the load balancer keeps traffic away until dependencies recover.
func handleReadiness(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			_, err := deps.Records.All(ctx)
			return err
		})
		g.Go(func() error {
			return deps.Bot.Ping(ctx)
		})
		if deps.Redis != nil {
			g.Go(func() error {
				return deps.Redis.Health(ctx)
			})
		}

		if err := g.Wait(); err != nil {
			deps.Logger.WarnContext(r.Context(), "readiness check failed", "error", err)
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"reason": err.Error(),
			})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
