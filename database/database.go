package database

import (
	"fmt"
	"log"
	"os"

	"freelanceros/internal/domain/billing"
	"freelanceros/internal/domain/clients"
	"freelanceros/internal/domain/payments"
	"freelanceros/internal/domain/plans"
	"freelanceros/internal/domain/projects"
	"freelanceros/internal/domain/reminders"
	"freelanceros/internal/domain/scope"
	"freelanceros/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(Models()...); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Models lists every persisted model, in dependency order. Shared with the
// test database helper so the schemas cannot drift.
func Models() []interface{} {
	return []interface{}{
		// core
		&users.User{},
		&users.VerificationToken{},
		&plans.Plan{},
		&billing.Payment{},

		// business
		&clients.Client{},
		&projects.Project{},
		&projects.TimelineEvent{},
		&payments.Payment{},
		&payments.PaymentLineItem{},
		&reminders.Reminder{},
		&scope.ScopeVersion{},
	}
}
