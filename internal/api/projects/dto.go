package projects

import "time"

// ---------- requests

type CreateProjectRequest struct {
	ClientID    uint   `json:"client_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	Deadline    *time.Time `json:"deadline"`
}

type UpdateProjectRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	Deadline    *time.Time `json:"deadline"`
}

type AddNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

// ---------- responses

type ProjectDTO struct {
	ID          uint       `json:"id"`
	ClientID    uint       `json:"client_id"`
	ClientName  string     `json:"client_name,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type TimelineEventDTO struct {
	ID          uint      `json:"id"`
	EventType   string    `json:"event_type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
