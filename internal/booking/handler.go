package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/radiancespa/siteforms/internal/feedback"
	"github.com/radiancespa/siteforms/internal/observability/metrics"
	"github.com/radiancespa/siteforms/internal/session"
	"github.com/radiancespa/siteforms/pkg/logging"
)

const formName = "booking"

// Handler exposes the appointment wizard over HTTP.
type Handler struct {
	sessions  session.Store
	repo      Repository
	metrics   *metrics.FormMetrics
	presenter feedback.Presenter
	logger    *logging.Logger
}

// NewHandler creates a booking handler.
func NewHandler(sessions session.Store, repo Repository, m *metrics.FormMetrics, presenter feedback.Presenter, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if presenter == nil {
		presenter = feedback.NewLogPresenter(logger)
	}
	return &Handler{
		sessions:  sessions,
		repo:      repo,
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

// SubmitResponse is the body returned by Submit.
type SubmitResponse struct {
	SessionID    string       `json:"session_id"`
	Status       string       `json:"status"`
	FailedFields []FieldID    `json:"failed_fields,omitempty"`
	Appointment  *Appointment `json:"appointment,omitempty"`
}

// CreateSession starts a new appointment wizard session.
// POST /api/booking/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessions.Create(r.Context(), formName)
	if err != nil {
		h.logger.Error("booking: failed to create session", "error", err)
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveSessionStarted(formName)
	h.logger.Info("booking session started", "session_id", state.ID)

	writeJSON(w, http.StatusCreated, SessionResponse{
		SessionID:  state.ID,
		Step:       string(StepService),
		StepIndex:  0,
		TotalSteps: len(Steps()),
	})
}

// GetSession returns the session's current step.
// GET /api/booking/sessions/{sessionID}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctrl, state, ok := h.loadController(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{
		SessionID:  state.ID,
		Step:       string(ctrl.Current()),
		StepIndex:  ctrl.StepIndex(),
		TotalSteps: len(Steps()),
	})
}

// Advance attempts the gated forward transition with the submitted fields.
// POST /api/booking/sessions/{sessionID}/advance
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
	if len(outcome.FailedFields) > 0 {
		h.metrics.ObserveAdvance(formName, "missing-fields")
		h.presenter.Flash(r.Context(), state.ID, feedback.LevelError, "Please fill in all required fields")
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	h.metrics.ObserveAdvance(formName, "advanced")
	writeJSON(w, http.StatusOK, resp)
}

// Retreat moves one step back, never gated.
// POST /api/booking/sessions/{sessionID}/retreat
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

// Submit records the appointment request.
// POST /api/booking/sessions/{sessionID}/submit
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

	outcome, err := ctrl.Submit(r.Context(), form)
	if err != nil {
		h.logger.Error("booking: failed to submit", "error", err, "session_id", state.ID)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !h.saveController(w, r, state, ctrl) {
		return
	}

	if len(outcome.FailedFields) > 0 {
		h.metrics.ObserveSubmit(formName, "missing-fields")
		h.presenter.Flash(r.Context(), state.ID, feedback.LevelError, "Please fill in all required fields")
		writeJSON(w, http.StatusBadRequest, SubmitResponse{
			SessionID:    state.ID,
			Status:       "missing-fields",
			FailedFields: outcome.FailedFields,
		})
		return
	}

	h.metrics.ObserveSubmit(formName, "success")
	h.presenter.Flash(r.Context(), state.ID, feedback.LevelSuccess, "Appointment booked! We will confirm shortly.")
	h.logger.Info("appointment booked",
		"session_id", state.ID,
		"appointment_id", outcome.Appointment.ID,
		"service", outcome.Appointment.Service,
	)
	writeJSON(w, http.StatusCreated, SubmitResponse{
		SessionID:   state.ID,
		Status:      "success",
		Appointment: outcome.Appointment,
	})
}

func (h *Handler) loadController(w http.ResponseWriter, r *http.Request) (*Controller, *session.State, bool) {
	id := chi.URLParam(r, "sessionID")
	state, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
		} else {
			h.logger.Error("booking: failed to load session", "error", err, "session_id", id)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return nil, nil, false
	}
	if state.Kind != formName {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, nil, false
	}

	ctrl := NewController(h.repo)
	if err := ctrl.Restore(state.Step, FormFromMap(state.Form)); err != nil {
		h.logger.Error("booking: corrupt session state", "error", err, "session_id", id)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, nil, false
	}
	return ctrl, state, true
}

func (h *Handler) saveController(w http.ResponseWriter, r *http.Request, state *session.State, ctrl *Controller) bool {
	state.Step = ctrl.StepIndex()
	state.Form = ctrl.Form().ToMap()
	if err := h.sessions.Save(r.Context(), state); err != nil {
		h.logger.Error("booking: failed to save session", "error", err, "session_id", state.ID)
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
