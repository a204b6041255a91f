package contact

import (
	"encoding/json"
	"net/http"

	"github.com/radiancespa/siteforms/pkg/logging"
)

// Handler handles HTTP requests for the contact form
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new contact handler
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// CreateMessage handles POST /api/contact requests
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("contact: failed to decode request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("contact: failed to create message", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.logger.Info("contact message received", "id", msg.ID, "name", msg.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(msg)
}
