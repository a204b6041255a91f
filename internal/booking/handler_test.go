package booking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiancespa/siteforms/internal/session"
	"github.com/radiancespa/siteforms/pkg/logging"
)

func newTestRouter(repo Repository) http.Handler {
	h := NewHandler(session.NewMemory(0), repo, nil, nil, logging.New("error"))
	r := chi.NewRouter()
	r.Post("/api/booking/sessions", h.CreateSession)
	r.Get("/api/booking/sessions/{sessionID}", h.GetSession)
	r.Post("/api/booking/sessions/{sessionID}/advance", h.Advance)
	r.Post("/api/booking/sessions/{sessionID}/retreat", h.Retreat)
	r.Post("/api/booking/sessions/{sessionID}/submit", h.Submit)
	return r
}

func createSession(t *testing.T, router http.Handler) string {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/booking/sessions", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Equal(t, 3, resp.TotalSteps)
	return resp.SessionID
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data)))
	return w
}

func TestBookingFlowHappyPath(t *testing.T) {
	repo := NewInMemoryRepository()
	router := newTestRouter(repo)
	id := createSession(t, router)

	form := Form{Service: "facial"}
	w := postJSON(t, router, "/api/booking/sessions/"+id+"/advance", form)
	require.Equal(t, http.StatusOK, w.Code)

	form.PreferredDate = "2026-09-01"
	form.PreferredTime = "10:00"
	w = postJSON(t, router, "/api/booking/sessions/"+id+"/advance", form)
	require.Equal(t, http.StatusOK, w.Code)

	form.Name = "Jane Smith"
	form.Phone = "+1987654321"
	w = postJSON(t, router, "/api/booking/sessions/"+id+"/submit", form)
	require.Equal(t, http.StatusCreated, w.Code)

	var sub SubmitResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sub))
	assert.Equal(t, "success", sub.Status)
	require.NotNil(t, sub.Appointment)
	assert.Equal(t, "facial", sub.Appointment.Service)
}

func TestBookingAdvanceMissingFields(t *testing.T) {
	router := newTestRouter(NewInMemoryRepository())
	id := createSession(t, router)

	w := postJSON(t, router, "/api/booking/sessions/"+id+"/advance", Form{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var adv AdvanceResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&adv))
	assert.False(t, adv.Advanced)
	assert.Equal(t, []FieldID{FieldService}, adv.FailedFields)
}

func TestBookingSubmitMissingDetails(t *testing.T) {
	repo := NewInMemoryRepository()
	router := newTestRouter(repo)
	id := createSession(t, router)

	w := postJSON(t, router, "/api/booking/sessions/"+id+"/submit", Form{Service: "facial"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var sub SubmitResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sub))
	assert.Equal(t, "missing-fields", sub.Status)
}

func TestBookingUnknownSession(t *testing.T) {
	router := newTestRouter(NewInMemoryRepository())

	w := postJSON(t, router, "/api/booking/sessions/ghost/advance", Form{Service: "facial"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingSessionKindMismatch(t *testing.T) {
	store := session.NewMemory(0)
	h := NewHandler(store, NewInMemoryRepository(), nil, nil, logging.New("error"))
	r := chi.NewRouter()
	r.Get("/api/booking/sessions/{sessionID}", h.GetSession)

	// A signup session must not be usable through the booking endpoints.
	state, err := store.Create(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "signup")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/booking/sessions/"+state.ID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
