package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"enrolld/internal/account/models"
	"enrolld/internal/platform/middleware"
	"enrolld/internal/transport/http/shared"
	dErrors "enrolld/pkg/domain-errors"
)

// Service defines the registry operations the handler needs.
type Service interface {
	Signup(ctx context.Context, name, email, password string) (models.Summary, error)
	Login(ctx context.Context, email, password string) (models.Summary, error)
	ListAll(ctx context.Context) ([]models.Account, error)
}

// Handler translates account endpoints into registry calls.
type Handler struct {
	accounts Service
	logger   *slog.Logger
}

func New(accounts Service, logger *slog.Logger) *Handler {
	return &Handler{accounts: accounts, logger: logger}
}

// Register mounts the account routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/signup", h.handleSignup)
	r.Post("/login", h.handleLogin)
	r.Get("/accounts", h.handleListAll)
}

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	summary, err := h.accounts.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.logWarn(r, "signup rejected", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, summary)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	summary, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logWarn(r, "login rejected", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleListAll(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.ListAll(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, accounts)
}

func (h *Handler) logWarn(r *http.Request, msg string, err error) {
	h.logger.WarnContext(r.Context(), msg,
		"error", err.Error(),
		"request_id", middleware.GetRequestID(r.Context()),
	)
}
