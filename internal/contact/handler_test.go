package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/radiancespa/siteforms/pkg/logging"
)

func TestCreateMessage_Success(t *testing.T) {
	repo := NewInMemoryRepository()
	handler := NewHandler(repo, logging.New("error"))

	reqBody := CreateMessageRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Subject: "Opening hours",
		Message: "Are you open on Saturdays?",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateMessage(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	var msg Message
	if err := json.NewDecoder(w.Body).Decode(&msg); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if msg.Name != reqBody.Name {
		t.Errorf("expected name %s, got %s", reqBody.Name, msg.Name)
	}

	if msg.ID == "" {
		t.Error("expected message ID to be set")
	}
}

func TestCreateMessage_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  CreateMessageRequest
	}{
		{"missing name", CreateMessageRequest{Email: "a@x.com", Message: "hi"}},
		{"missing email", CreateMessageRequest{Name: "A", Message: "hi"}},
		{"missing message", CreateMessageRequest{Name: "A", Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(NewInMemoryRepository(), logging.New("error"))

			body, _ := json.Marshal(tt.req)
			req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.CreateMessage(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestCreateMessage_WhitespaceCountsAsFilled(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), logging.New("error"))

	body, _ := json.Marshal(CreateMessageRequest{Name: " ", Email: " ", Message: " "})
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateMessage(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
}

func TestCreateMessage_InvalidJSON(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), logging.New("error"))

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{"))
	w := httptest.NewRecorder()

	handler.CreateMessage(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

type failingRepository struct{}

func (f failingRepository) Create(context.Context, *CreateMessageRequest) (*Message, error) {
	return nil, errors.New("boom")
}

func (f failingRepository) GetByID(context.Context, string) (*Message, error) {
	return nil, ErrMessageNotFound
}

func TestCreateMessage_RepositoryError(t *testing.T) {
	handler := NewHandler(failingRepository{}, logging.New("error"))

	body, _ := json.Marshal(CreateMessageRequest{Name: "A", Email: "a@x.com", Message: "hi"})
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateMessage(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &CreateMessageRequest{Name: "A", Email: "a@x.com", Message: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected ID %s, got %s", created.ID, found.ID)
	}
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.GetByID(context.Background(), "nonexistent")
	if !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("expected ErrMessageNotFound, got %v", err)
	}
}
