package scope

import "time"

// ---------- requests

type CreateVersionRequest struct {
	Deliverables string `json:"deliverables" binding:"required"`
	OutOfScope   string `json:"out_of_scope"`
	Assumptions  string `json:"assumptions"`
}

// ---------- responses

type ScopeVersionDTO struct {
	ID            uint      `json:"id"`
	ProjectID     uint      `json:"project_id"`
	VersionNumber int       `json:"version_number"`
	Deliverables  string    `json:"deliverables"`
	OutOfScope    string    `json:"out_of_scope,omitempty"`
	Assumptions   string    `json:"assumptions,omitempty"`
	ShareToken    string    `json:"share_token"`
	ShareURL      string    `json:"share_url"`
	CreatedAt     time.Time `json:"created_at"`
}

// SharedScopeDTO is the public, read-only view behind a share token. No ids
// and no token leak back out.
type SharedScopeDTO struct {
	ProjectName   string    `json:"project_name"`
	VersionNumber int       `json:"version_number"`
	Deliverables  string    `json:"deliverables"`
	OutOfScope    string    `json:"out_of_scope,omitempty"`
	Assumptions   string    `json:"assumptions,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
