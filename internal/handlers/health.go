package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jeremyjsx/journal/internal/backend"
	amqp "github.com/rabbitmq/amqp091-go"
)

type HealthDeps struct {
	Backends    *backend.Backends
	RabbitMQURL string
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func Health(deps *HealthDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		checks := map[string]string{}
		status := "healthy"

		if deps.Backends.HasDB() {
			if err := deps.Backends.DB.PingContext(ctx); err != nil {
				checks["db"] = "unhealthy"
				status = "unhealthy"
			} else {
				checks["db"] = "ok"
			}
		} else {
			// Absent backends are a supported mode, not a failure.
			checks["db"] = "fallback"
		}

		if deps.Backends.HasBlob() {
			if _, err := deps.Backends.Blob.Exists(ctx, "__health__"); err != nil {
				checks["blob"] = "unhealthy"
				status = "unhealthy"
			} else {
				checks["blob"] = "ok"
			}
		} else {
			checks["blob"] = "inline"
		}

		if deps.RabbitMQURL != "" {
			conn, err := amqp.Dial(deps.RabbitMQURL)
			if err != nil {
				checks["rabbitmq"] = "unhealthy"
				status = "degraded"
			} else {
				_ = conn.Close()
				checks["rabbitmq"] = "ok"
			}
		} else {
			checks["rabbitmq"] = "skipped"
		}

		code := http.StatusOK
		if status == "unhealthy" {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, healthResponse{Status: status, Checks: checks})
	}
}
