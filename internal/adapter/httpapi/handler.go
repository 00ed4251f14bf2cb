package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"proxmox-discord-relay/internal/domain/ports"
	"proxmox-discord-relay/internal/usecase"
)

var (
	statusOK    = []byte(`{"status": "ok"}`)
	statusError = []byte(`{"status": "error"}`)
)

// Processor consumes a decoded notification body.
type Processor interface {
	Process(ctx context.Context, body []byte) error
}

// Handler relays POSTed notifications. It never reports failures through
// the HTTP status code.
type Handler struct {
	relay   Processor
	logger  ports.Logger
	maxBody int64
}

// New creates a Handler. maxBody caps inbound payloads when positive.
func New(relay Processor, logger ports.Logger, maxBody int64) *Handler {
	return &Handler{relay: relay, logger: logger, maxBody: maxBody}
}

// Routes returns the full inbound handler: POST on any path, wrapped in the
// request logger. Paths are used as sent, never cleaned or redirected.
func (h *Handler) Routes() http.Handler {
	return RequestLog(h.logger, postOnly(h))
}

func postOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.logger.Info(ctx, "received POST request", "path", r.URL.Path)

	if err := h.handle(ctx, r); err != nil {
		stage, _ := usecase.StageOf(err)
		h.logger.Error(ctx, "relay failed",
			"stage", string(stage),
			"error", err.Error(),
			"trace", fmt.Sprintf("%+v", err),
		)
		writeStatus(w, statusError)
		return
	}

	writeStatus(w, statusOK)
}

func (h *Handler) handle(ctx context.Context, r *http.Request) error {
	body, err := ReadBody(r, h.maxBody)
	if err != nil {
		return usecase.Fail(usecase.StageDecode, err)
	}
	h.logger.Info(ctx, "raw data received", "body", string(body), "bytes", len(body))

	return h.relay.Process(ctx, body)
}

func writeStatus(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
