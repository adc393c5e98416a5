package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"enrolld/internal/application/models"
	"enrolld/internal/platform/middleware"
	"enrolld/internal/transport/http/shared"
	dErrors "enrolld/pkg/domain-errors"
)

type Service interface {
	Submit(ctx context.Context, sub models.Submission) (int64, error)
	CountByEmail(ctx context.Context, email string) (int, error)
	ListAll(ctx context.Context) ([]models.Application, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	ledger Service
	logger *slog.Logger
}

func New(ledger Service, logger *slog.Logger) *Handler {
	return &Handler{ledger: ledger, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/applications", func(r chi.Router) {
		r.Post("/", h.handleSubmit)
		r.Get("/", h.handleListAll)
		r.Get("/count", h.handleCount)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var sub models.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	id, err := h.ledger.Submit(r.Context(), sub)
	if err != nil {
		h.logger.WarnContext(r.Context(), "application rejected",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(r.Context()),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, map[string]int64{"applicationId": id})
}

func (h *Handler) handleCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.ledger.CountByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]int{"count": count})
}

func (h *Handler) handleListAll(w http.ResponseWriter, r *http.Request) {
	apps, err := h.ledger.ListAll(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, apps)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "id must be an integer"))
		return
	}
	if err := h.ledger.Delete(r.Context(), id); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
