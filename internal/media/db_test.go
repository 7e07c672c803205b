package media

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/watchloghq/watchlog/pkg/db/models"
	"github.com/watchloghq/watchlog/pkg/enums"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache DB keeps the pool's connections on one database
	// while isolating tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Media{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}

func mustCreateTestMedia(t *testing.T, conn *gorm.DB, title string) *models.Media {
	t.Helper()
	record := &models.Media{
		Title:    title,
		Type:     enums.MediaTypeMovie,
		Director: fmt.Sprintf("Director of %s", title),
	}
	if err := conn.Create(record).Error; err != nil {
		t.Fatalf("create media %q: %v", title, err)
	}
	return record
}

func mustCreateModel(title string) *models.Media {
	return &models.Media{
		Title:    title,
		Type:     enums.MediaTypeMovie,
		Director: fmt.Sprintf("Director of %s", title),
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func stringPtr(v string) *string  { return &v }
