package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/cyra/internal/db"
	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

func mustParseDay(t *testing.T, value string) time.Time {
	t.Helper()

	day, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

func dayPtr(t *testing.T, value string) *time.Time {
	t.Helper()

	day := mustParseDay(t, value)
	return &day
}

func intPtr(value int) *int {
	return &value
}

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "cyra-services-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func createTestCustomer(t *testing.T, database *gorm.DB, email string) models.Customer {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "test-hash",
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	customer := models.Customer{UserID: user.ID}
	if err := database.Create(&customer).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return customer
}

func newTestPeriodService(t *testing.T, database *gorm.DB) *PeriodService {
	t.Helper()

	return NewPeriodService(
		database,
		db.NewPeriodRepository(database),
		db.NewPeriodProfileRepository(database),
		db.NewAppSettingsRepository(database),
		time.UTC,
	)
}

func newTestStatusService(t *testing.T, database *gorm.DB) *StatusService {
	t.Helper()

	return NewStatusService(
		db.NewPeriodRepository(database),
		db.NewPeriodProfileRepository(database),
		time.UTC,
	)
}
