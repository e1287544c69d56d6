package router

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Totarae/shortener-ops/internal/handlers"
	"github.com/Totarae/shortener-ops/internal/middleware"
)

// NewRouter создаёт и настраивает маршрутизатор узла.
// /set и /get принимают и GET, и POST: генератор нагрузки может слать любой из них.
func NewRouter(handler *handlers.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.GzipMiddleware)            // Gzip-сжатие

	r.Get("/set", handler.SetURL)
	r.Post("/set", handler.SetURL)
	r.Get("/get", handler.GetURL)
	r.Post("/get", handler.GetURL)
	r.Get("/ping", handler.Ping)
	return r
}
