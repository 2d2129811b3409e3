package models

import "gorm.io/gorm"

// Migrate auto-migrates all application models. Order matters: referenced
// tables first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Client{},
		&Color{},
		&Size{},
		&Form{},
		&StandardOrder{},
		&Order{},
		&OrderReturn{},
	)
}
