package database

import (
	"fmt"
	"log"

	config "github.com/campbaraisa/camp_admin/configs"
	"github.com/campbaraisa/camp_admin/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Camper{},
		&models.Invoice{},
		&models.Payment{},
		&models.Communication{},
		&models.EmailTemplate{},
		&models.ActivityLog{},
		&models.Group{},
		&models.Room{},
		&models.Expense{},
		&models.SavedReport{},
		&models.Fee{},
		&models.Settings{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		FullName:   config.Config("ADMIN_FULL_NAME"),
		Email:      adminEmail,
		Password:   string(hashedPassword),
		Role:       "admin",
		IsApproved: true,
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

// SeedDefaults makes sure the single settings row, the default camp fee and
// the stock email/SMS templates exist on first boot.
func SeedDefaults() {
	var settingsCount int64
	DB.Model(&models.Settings{}).Count(&settingsCount)
	if settingsCount == 0 {
		if err := DB.Create(&models.Settings{CampName: "Camp Baraisa"}).Error; err != nil {
			log.Printf("🔥 Failed to seed settings: %v", err)
		}
	}

	var feeCount int64
	DB.Model(&models.Fee{}).Where("is_default = ?", true).Count(&feeCount)
	if feeCount == 0 {
		desc := "Summer 2026 Camp Fee"
		if err := DB.Create(&models.Fee{Name: "Camp Fee", Amount: 3475, Description: &desc, IsDefault: true}).Error; err != nil {
			log.Printf("🔥 Failed to seed default fee: %v", err)
		}
	}

	SeedDefaultTemplates(DB)
	log.Println("✅ Default settings, fee and templates seeded")
}

// SeedDefaultTemplates inserts the stock templates when none exist yet.
func SeedDefaultTemplates(db *gorm.DB) bool {
	var count int64
	db.Model(&models.EmailTemplate{}).Count(&count)
	if count > 0 {
		return false
	}
	for _, t := range models.DefaultTemplates() {
		tpl := t
		if err := db.Create(&tpl).Error; err != nil {
			log.Printf("🔥 Failed to seed template %s: %v", tpl.Name, err)
		}
	}
	return true
}
