package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (Color, Size, Form) {
	t.Helper()

	color := Color{Name: "Red"}
	size := Size{Name: "M"}
	form := Form{Name: "Box"}
	require.NoError(t, db.Create(&color).Error)
	require.NoError(t, db.Create(&size).Error)
	require.NoError(t, db.Create(&form).Error)
	return color, size, form
}
