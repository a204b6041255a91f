package contact

import "time"

// Message represents a contact form submission
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMessageRequest represents the request body for the contact form
type CreateMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate checks the contact form's required fields. The emptiness rule is
// literal: values are not trimmed.
func (r *CreateMessageRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}
	if r.Email == "" {
		return ErrMissingEmail
	}
	if r.Message == "" {
		return ErrMissingMessage
	}
	return nil
}
