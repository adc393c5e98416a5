package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"enrolld/internal/institution/models"
	"enrolld/internal/transport/http/shared"
	dErrors "enrolld/pkg/domain-errors"
)

type Service interface {
	Query(ctx context.Context, filter models.Filter) ([]models.Institution, int, error)
	GetByID(ctx context.Context, id int64) (models.Institution, error)
	Create(ctx context.Context, inst models.Institution) (models.Institution, error)
	Replace(ctx context.Context, id int64, inst models.Institution) (models.Institution, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	catalog Service
	logger  *slog.Logger
}

func New(catalog Service, logger *slog.Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/institutions", func(r chi.Router) {
		r.Get("/", h.handleQuery)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleReplace)
		r.Delete("/{id}", h.handleDelete)
	})
}

type queryResponse struct {
	Institutions []models.Institution `json:"institutions"`
	Total        int                  `json:"total"`
}

func (h *Handler) handleQuery(w http.ResponseWriter, r *http.Request) {
	filter := models.Filter{
		Name:    r.URL.Query().Get("name"),
		Type:    r.URL.Query().Get("type"),
		College: r.URL.Query().Get("college"),
	}
	institutions, total, err := h.catalog.Query(r.Context(), filter)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, queryResponse{Institutions: institutions, Total: total})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	inst, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, inst)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var inst models.Institution
	if err := json.NewDecoder(r.Body).Decode(&inst); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	created, err := h.catalog.Create(r.Context(), inst)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleReplace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var inst models.Institution
	if err := json.NewDecoder(r.Body).Decode(&inst); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	replaced, err := h.catalog.Replace(r.Context(), id, inst)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, replaced)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.catalog.Delete(r.Context(), id); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "id must be an integer"))
		return 0, false
	}
	return id, true
}
