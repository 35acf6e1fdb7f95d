package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nglmq/upc-validator/internal/cache"
	"github.com/nglmq/upc-validator/internal/config"
	"github.com/nglmq/upc-validator/internal/http-server/handlers"
	"github.com/nglmq/upc-validator/internal/http-server/handlers/codes"
	user_auth "github.com/nglmq/upc-validator/internal/http-server/handlers/user-auth"
	"github.com/nglmq/upc-validator/internal/metrics"
	"github.com/nglmq/upc-validator/internal/middleware/logger"
	"github.com/nglmq/upc-validator/internal/storage/postgres"
)

func Start() (http.Handler, error) {
	config.ParseFlags()

	if err := logger.Initialize("info"); err != nil {
		return nil, err
	}

	storage, err := postgres.New()
	if err != nil {
		logger.Log.Error("failed to init db")
		return nil, err
	}

	verdicts, err := cache.New(context.Background(), config.RedisAddr)
	if err != nil {
		logger.Log.Error("failed to init verdict cache")
		return nil, err
	}

	m := metrics.New()

	ticker := time.NewTicker(1 * time.Minute)
	quit := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				count, err := storage.CountChecks(context.Background())
				if err != nil {
					logger.Log.Error("failed to refresh stored checks gauge")
					continue
				}
				m.ChecksStored.Set(float64(count))
			case <-quit:
				ticker.Stop()
				return
			}
		}
	}()

	r := chi.NewRouter()

	r.Use(logger.RequestLogger)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api/user/", func(r chi.Router) {
		r.Post("/register", handlers.RegistrationHandle(storage))
		r.Post("/login", user_auth.LoginHandle(storage))
		r.Post("/codes", codes.CheckCodeHandle(storage, verdicts, m))
		r.Get("/codes", codes.GetChecksHandle(storage))
	})

	return r, nil
}
