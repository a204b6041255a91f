package signup

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/radiancespa/siteforms/internal/directory"
	"github.com/radiancespa/siteforms/internal/feedback"
	"github.com/radiancespa/siteforms/internal/observability/metrics"
	"github.com/radiancespa/siteforms/internal/session"
	"github.com/radiancespa/siteforms/pkg/logging"
)

const formName = "signup"

// Handler exposes the signup wizard over HTTP. It rebuilds the controller
// from session state on every request and persists the result, so the
// controller itself stays free of transport concerns.
type Handler struct {
	sessions  session.Store
	dir       directory.Directory
	metrics   *metrics.FormMetrics
	presenter feedback.Presenter
	logger    *logging.Logger
}

// NewHandler creates a signup handler.
func NewHandler(sessions session.Store, dir directory.Directory, m *metrics.FormMetrics, presenter feedback.Presenter, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if presenter == nil {
		presenter = feedback.NewLogPresenter(logger)
	}
	return &Handler{
		sessions:  sessions,
		dir:       dir,
		metrics:   m,
		presenter: presenter,
		logger:    logger,
	}
}

// SessionResponse describes a wizard session's position.
type SessionResponse struct {
	SessionID  string `json:"session_id"`
	Step       string `json:"step"`
	StepIndex  int    `json:"step_index"`
	TotalSteps int    `json:"total_steps"`
}

// AdvanceResponse is the body returned by Advance.
type AdvanceResponse struct {
	SessionID string `json:"session_id"`
	AdvanceOutcome
}

// RetreatResponse is the body returned by Retreat.
type RetreatResponse struct {
	SessionID string `json:"session_id"`
	Moved     bool   `json:"moved"`
	Step      string `json:"step"`
	StepIndex int    `json:"step_index"`
}

// RegisteredIdentity is the identity echo on successful submission. The
// password is never returned.
type RegisteredIdentity struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// SubmitResponse is the body returned by Submit.
type SubmitResponse struct {
	SessionID string              `json:"session_id"`
	Status    SubmitStatus        `json:"status"`
	Message   string              `json:"message,omitempty"`
	Identity  *RegisteredIdentity `json:"identity,omitempty"`
}

// CreateSession starts a new signup wizard session.
// POST /api/signup/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessions.Create(r.Context(), formName)
	if err != nil {
		h.logger.Error("signup: failed to create session", "error", err)
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveSessionStarted(formName)
	h.logger.Info("signup session started", "session_id", state.ID)

	writeJSON(w, http.StatusCreated, h.sessionResponse(state.ID, NewController(h.dir)))
}

// GetSession returns the session's current step.
// GET /api/signup/sessions/{sessionID}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctrl, state, ok := h.loadController(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.sessionResponse(state.ID, ctrl))
}

// Advance attempts the gated forward transition with the submitted fields.
// POST /api/signup/sessions/{sessionID}/advance
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	ctrl, state, ok := h.loadController(w, r)
	if !ok {
		return
	}

	var form Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	outcome := ctrl.AttemptAdvance(form)
	if !h.saveController(w, r, state, ctrl) {
		return
	}

	resp := AdvanceResponse{SessionID: state.ID, AdvanceOutcome: outcome}
	switch outcome.Reason {
	case BlockMissingFields:
		h.metrics.ObserveAdvance(formName, string(BlockMissingFields))
		h.presenter.Flash(r.Context(), state.ID, feedback.LevelError, ErrMissingFields.Error())
		writeJSON(w, http.StatusBadRequest, resp)
	case BlockDuplicateEmail:
		h.metrics.ObserveAdvance(formName, string(BlockDuplicateEmail))
		h.presenter.Flash(r.Context(), state.ID, feedback.LevelError, directory.ErrDuplicateEmail.Error())
		writeJSON(w, http.StatusConflict, resp)
	default:
		h.metrics.ObserveAdvance(formName, "advanced")
		writeJSON(w, http.StatusOK, resp)
	}
}

// Retreat moves one step back, never gated.
// POST /api/signup/sessions/{sessionID}/retreat
func (h *Handler) Retreat(w http.ResponseWriter, r *http.Request) {
	ctrl, state, ok := h.loadController(w, r)
	if !ok {
		return
	}

	moved := ctrl.AttemptRetreat()
	if !h.saveController(w, r, state, ctrl) {
		return
	}

	writeJSON(w, http.StatusOK, RetreatResponse{
		SessionID: state.ID,
		Moved:     moved,
		Step:      string(ctrl.Current()),
		StepIndex: ctrl.StepIndex(),
	})
}

// Submit performs the final registration.
// POST /api/signup/sessions/{sessionID}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctrl, state, ok := h.loadController(w, r)
	if !ok {
		return
	}

	var form Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	outcome := ctrl.Submit(form)
	if !h.saveController(w, r, state, ctrl) {
		return
	}

	h.metrics.ObserveSubmit(formName, string(outcome.Status))

	switch outcome.Status {
	case SubmitPasswordMismatch:
		h.presenter.Flash(r.Context(), state.ID, feedback.LevelError, ErrPasswordMismatch.Error())
		writeJSON(w, http.StatusBadRequest, SubmitResponse{
			SessionID: state.ID,
			Status:    outcome.Status,
			Message:   ErrPasswordMismatch.Error(),
		})
	case SubmitDuplicateEmail:
		h.presenter.Flash(r.Context(), state.ID, feedback.LevelError, directory.ErrDuplicateEmail.Error())
		writeJSON(w, http.StatusConflict, SubmitResponse{
			SessionID: state.ID,
			Status:    outcome.Status,
			Message:   directory.ErrDuplicateEmail.Error(),
		})
	default:
		h.presenter.Flash(r.Context(), state.ID, feedback.LevelSuccess, "Account created successfully!")
		h.logger.Info("signup completed",
			"session_id", state.ID,
			"email", outcome.Identity.Email,
			"username", outcome.Identity.Username,
		)
		writeJSON(w, http.StatusCreated, SubmitResponse{
			SessionID: state.ID,
			Status:    outcome.Status,
			Identity: &RegisteredIdentity{
				Email:    outcome.Identity.Email,
				Username: outcome.Identity.Username,
			},
		})
	}
}

func (h *Handler) sessionResponse(id string, ctrl *Controller) SessionResponse {
	return SessionResponse{
		SessionID:  id,
		Step:       string(ctrl.Current()),
		StepIndex:  ctrl.StepIndex(),
		TotalSteps: len(Steps()),
	}
}

// loadController fetches session state and rehydrates a controller from it.
// On failure it writes the error response and returns ok=false.
func (h *Handler) loadController(w http.ResponseWriter, r *http.Request) (*Controller, *session.State, bool) {
	id := chi.URLParam(r, "sessionID")
	state, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
		} else {
			h.logger.Error("signup: failed to load session", "error", err, "session_id", id)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return nil, nil, false
	}
	if state.Kind != formName {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, nil, false
	}

	ctrl := NewController(h.dir)
	if err := ctrl.Restore(state.Step, FormFromMap(state.Form)); err != nil {
		h.logger.Error("signup: corrupt session state", "error", err, "session_id", id)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, nil, false
	}
	return ctrl, state, true
}

func (h *Handler) saveController(w http.ResponseWriter, r *http.Request, state *session.State, ctrl *Controller) bool {
	state.Step = ctrl.StepIndex()
	state.Form = ctrl.Form().ToMap()
	if err := h.sessions.Save(r.Context(), state); err != nil {
		h.logger.Error("signup: failed to save session", "error", err, "session_id", state.ID)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
