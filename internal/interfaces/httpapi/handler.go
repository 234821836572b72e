package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/capp-data/capp-data-server/internal/platform/logging"
	"github.com/capp-data/capp-data-server/internal/usecase"
)

// PollStatus reports the live poller's progress. It is nil when polling is
// disabled.
type PollStatus interface {
	Ready() bool
	RefreshedAt() time.Time
}

type Handler struct {
	gameService *usecase.GameFeedService
	poller      PollStatus
	logger      *logging.Logger
	validator   *validator.Validate
}

func NewHandler(gameService *usecase.GameFeedService, poller PollStatus, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		gameService: gameService,
		poller:      poller,
		logger:      logger,
		validator:   validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz fails until the poller has completed its first cycle.
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.poller == nil {
		writeSuccess(w, http.StatusOK, readinessDTO{Status: "ok", Polling: false})
		return
	}

	dto := readinessDTO{Status: "ok", Polling: true, Ready: h.poller.Ready()}
	if refreshed := h.poller.RefreshedAt(); !refreshed.IsZero() {
		dto.LastRefreshAt = &refreshed
	}
	if !dto.Ready {
		dto.Status = "warming_up"
		writeSuccess(w, http.StatusServiceUnavailable, dto)
		return
	}
	writeSuccess(w, http.StatusOK, dto)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
