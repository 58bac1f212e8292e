package clients

import "time"

// ---------- requests

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company"`
	Notes   string `json:"notes"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Company *string `json:"company"`
	Notes   *string `json:"notes"`
}

// ---------- responses

type ClientDTO struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Company         string     `json:"company,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	LastContactDate *time.Time `json:"last_contact_date,omitempty"`
	ProjectCount    int64      `json:"project_count"`
	CreatedAt       time.Time  `json:"created_at"`
}
