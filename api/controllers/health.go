package controllers

import (
	"net/http"

	"github.com/kartzyhq/kartzy-backend/api/responses"
	"github.com/kartzyhq/kartzy-backend/pkg/logger"
	pkgredis "github.com/kartzyhq/kartzy-backend/pkg/redis"
)

// HealthLive reports process liveness.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}
}

// HealthReady reports readiness, checking the cart store when one is
// configured. A nil pinger means the service runs on in-process state
// and is always ready.
func HealthReady(pinger pkgredis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{}
		healthy := true

		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				logg.Error(r.Context(), "health.redis_unreachable", err)
				checks["redis"] = "unreachable"
				healthy = false
			} else {
				checks["redis"] = "ok"
			}
		}

		status := http.StatusOK
		body := map[string]any{"status": "ok", "checks": checks}
		if !healthy {
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
		}
		responses.WriteJSON(w, status, body)
	}
}
