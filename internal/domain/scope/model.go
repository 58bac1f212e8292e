package scope

import (
	"freelanceros/internal/domain/projects"
	"time"
)

// ScopeVersion is an immutable-by-convention snapshot of a project's agreed
// scope. New agreements append a new row; version numbers strictly increase
// per project.
type ScopeVersion struct {
	ID        uint             `gorm:"primaryKey"`
	UserID    uint             `gorm:"not null;index"`
	ProjectID uint             `gorm:"not null;index;uniqueIndex:idx_scope_versions_project_version"`
	Project   projects.Project `gorm:"constraint:OnDelete:CASCADE"`

	VersionNumber int `gorm:"column:version_number;not null;uniqueIndex:idx_scope_versions_project_version"`

	Deliverables string
	OutOfScope   string `gorm:"column:out_of_scope"`
	Assumptions  string

	// ShareToken grants unauthenticated read access to this snapshot only.
	// There is no revocation beyond never publishing the link.
	ShareToken string `gorm:"column:share_token;type:varchar(36);not null;uniqueIndex:idx_scope_versions_share_token"`

	CreatedAt time.Time
}
