package db

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(databasePath)
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

func TestOpenSQLiteAppliesMigrations(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t, filepath.Join(t.TempDir(), "cyra-migrations-test.db"))

	var appliedCount int64
	if err := database.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&appliedCount).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if appliedCount == 0 {
		t.Fatal("expected at least one applied migration")
	}

	tables := []string{
		"users",
		"customers",
		"weight_entries",
		"period_records",
		"period_profiles",
		"daily_entries",
		"symptom_types",
		"hydration_logs",
		"app_settings",
		"daily_tips",
	}
	for _, table := range tables {
		var count int64
		err := database.Raw(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count).Error
		if err != nil {
			t.Fatalf("inspect table %s: %v", table, err)
		}
		if count != 1 {
			t.Errorf("table %s missing after migrations", table)
		}
	}
}

// Reopening the same file must not reapply anything.
func TestOpenSQLiteIsIdempotent(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "cyra-reopen-test.db")

	first := openTestDatabase(t, databasePath)
	var firstCount int64
	if err := first.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&firstCount).Error; err != nil {
		t.Fatalf("count after first open: %v", err)
	}

	second := openTestDatabase(t, databasePath)
	var secondCount int64
	if err := second.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&secondCount).Error; err != nil {
		t.Fatalf("count after second open: %v", err)
	}

	if firstCount != secondCount {
		t.Errorf("applied migrations changed on reopen: %d -> %d", firstCount, secondCount)
	}
}

func TestSplitSQLStatements(t *testing.T) {
	t.Parallel()

	statements := splitSQLStatements("CREATE TABLE a (id INTEGER);\n\nCREATE TABLE b (id INTEGER);\n;")
	if len(statements) != 2 {
		t.Fatalf("statements = %d, want 2", len(statements))
	}
	if statements[0] != "CREATE TABLE a (id INTEGER)" {
		t.Errorf("first statement = %q", statements[0])
	}
}
