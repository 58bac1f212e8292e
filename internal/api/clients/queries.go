package clients

import (
	"freelanceros/internal/domain/clients"
	"freelanceros/internal/domain/projects"

	"gorm.io/gorm"
)

func userClientsQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&clients.Client{}).
		Where("user_id = ?", userID)
}

func projectCount(db *gorm.DB, clientID uint) int64 {
	var n int64
	db.Model(&projects.Project{}).
		Where("client_id = ?", clientID).
		Count(&n)
	return n
}
