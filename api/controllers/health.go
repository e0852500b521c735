package controllers

import (
	"net/http"

	"github.com/galleypos/galleypos-backend/api/responses"
	"github.com/galleypos/galleypos-backend/pkg/config"
	"github.com/galleypos/galleypos-backend/pkg/db"
	"github.com/galleypos/galleypos-backend/pkg/logger"
	"github.com/galleypos/galleypos-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-GalleyPOS-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks the dependencies the trolley needs before boarding:
// the catalog database and, when configured, Redis. Redis is optional
// equipment; a nil client is simply skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-GalleyPOS-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				checks["db"] = "down"
				healthy = false
				if logg != nil {
					logg.Error(r.Context(), "health.db", err)
				}
			} else {
				checks["db"] = "up"
			}
		}
		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				checks["redis"] = "down"
				healthy = false
				if logg != nil {
					logg.Error(r.Context(), "health.redis", err)
				}
			} else {
				checks["redis"] = "up"
			}
		}

		status := "ready"
		code := http.StatusOK
		if !healthy {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		responses.WriteSuccessStatus(w, code, map[string]any{"status": status, "checks": checks})
	}
}
