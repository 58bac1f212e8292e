package projects

import (
	"freelanceros/internal/domain/projects"

	"gorm.io/gorm"
)

func userProjectsQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&projects.Project{}).
		Where("user_id = ?", userID)
}

// LogEvent appends one timeline row. Timeline rows are never updated.
func LogEvent(db *gorm.DB, userID, projectID uint, eventType, description string) error {
	return db.Create(&projects.TimelineEvent{
		UserID:      userID,
		ProjectID:   projectID,
		EventType:   eventType,
		Description: description,
	}).Error
}
