package handler

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/angeloszaimis/storagecheck/internal/resolver"
	"github.com/angeloszaimis/storagecheck/internal/storage"
)

// Loader returns a fresh configuration snapshot.
type Loader func() (resolver.Source, error)

type StatusHandler struct {
	logger *slog.Logger
	load   Loader
}

func NewStatusHandler(logger *slog.Logger, load Loader) *StatusHandler {
	return &StatusHandler{
		logger: logger,
		load:   load,
	}
}

// Routes registers the status endpoints on a new mux.
func (h *StatusHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /storage", h.Storage)
	mux.HandleFunc("GET /readyz", h.Ready)

	return mux
}

// Storage writes the full resolution result as JSON.
func (h *StatusHandler) Storage(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resolve(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.logger.Error("Failed to encode status", slog.Any("err", err))
	}
}

// Ready answers 200 when the active backend is configured and 503 otherwise.
func (h *StatusHandler) Ready(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resolve(w, r)
	if !ok {
		return
	}

	w.Header().Set("X-Storage-Backend", res.Active.String())

	if !res.Ready {
		h.logger.Warn("Active storage is not configured",
			slog.String("backend", res.Active.String()),
			slog.Any("missing", res.Status(res.Active).Missing))
		http.Error(w, "not ready", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ready"))
}

func (h *StatusHandler) resolve(w http.ResponseWriter, r *http.Request) (resolver.Result, bool) {
	h.logger.Debug("Received request",
		slog.String("from", extractClientIP(r)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))

	src, err := h.load()
	if err != nil {
		h.logger.Error("Failed to load configuration", slog.Any("err", err))
		http.Error(w, "failed to load configuration", http.StatusInternalServerError)
		return resolver.Result{}, false
	}

	res := resolver.Resolve(src)

	if client, err := storage.ActiveR2Client(r.Context(), src, res); err != nil {
		h.logger.Warn("R2 settings are unusable", slog.Any("err", err))
		w.Header().Set("X-Storage-Warning", "unusable R2 settings")
	} else if client != nil {
		h.logger.Debug("R2 client ready", slog.String("bucket", client.Bucket()))
	}

	return res, true
}

func extractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	host, _, _ := net.SplitHostPort(r.RemoteAddr)
	return host
}
