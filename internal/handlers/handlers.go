package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Totarae/shortener-ops/internal/service"
	"github.com/Totarae/shortener-ops/internal/storage"
)

// Mappings операции узла, нужные обработчикам.
type Mappings interface {
	Set(ctx context.Context, short, long string) error
	Resolve(ctx context.Context, short string) (string, error)
	Ping(ctx context.Context) error
}

// Handler обработчики /set, /get и /ping.
type Handler struct {
	svc    Mappings
	logger *zap.Logger
}

func NewHandler(svc Mappings, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// SetURL /set?short=<token>&long=<url>, отвечает 201.
func (h *Handler) SetURL(res http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()
	short, long := query.Get("short"), query.Get("long")

	err := h.svc.Set(req.Context(), short, long)
	if errors.Is(err, service.ErrEmptyParam) {
		http.Error(res, "Invalid params", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("failed to save mapping", zap.String("short", short), zap.Error(err))
		http.Error(res, "Something went wrong", http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusCreated)
}

// GetURL /get?short=<token>, отвечает длинным URL в теле.
func (h *Handler) GetURL(res http.ResponseWriter, req *http.Request) {
	short := req.URL.Query().Get("short")

	long, err := h.svc.Resolve(req.Context(), short)
	switch {
	case errors.Is(err, service.ErrEmptyParam):
		http.Error(res, "Invalid params", http.StatusBadRequest)
		return
	case errors.Is(err, storage.ErrNotFound):
		http.Error(res, "Failed to find original URL, is the key correct?", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("failed to resolve mapping", zap.String("short", short), zap.Error(err))
		http.Error(res, "Something went wrong", http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "text/plain")
	_, _ = io.WriteString(res, long)
}

// Ping проверка живости узла.
func (h *Handler) Ping(res http.ResponseWriter, req *http.Request) {
	if err := h.svc.Ping(req.Context()); err != nil {
		h.logger.Error("ping failed", zap.Error(err))
		http.Error(res, "storage unavailable", http.StatusInternalServerError)
		return
	}
	res.WriteHeader(http.StatusOK)
}
