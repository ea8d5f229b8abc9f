package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/campbaraisa/camp_admin/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Camper{},
		&models.Invoice{},
		&models.Payment{},
		&models.Communication{},
		&models.EmailTemplate{},
		&models.ActivityLog{},
		&models.Group{},
		&models.Room{},
		&models.Settings{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
