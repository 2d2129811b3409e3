package models

import (
	"time"

	"gorm.io/gorm"
)

// StandardOrder is a registered standard set of order properties. An
// incoming order whose (color, size, form) triple matches a standard set
// enters assembly instantly; otherwise it waits for a manager decision.
type StandardOrder struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:25;not null" json:"name"`
	Description string    `gorm:"size:250" json:"description"`
	ColorID     uint      `gorm:"not null;uniqueIndex:idx_standard_set" json:"color_id"`
	Color       Color     `gorm:"foreignKey:ColorID;constraint:OnDelete:RESTRICT" json:"-"`
	SizeID      uint      `gorm:"not null;uniqueIndex:idx_standard_set" json:"size_id"`
	Size        Size      `gorm:"foreignKey:SizeID;constraint:OnDelete:RESTRICT" json:"-"`
	FormID      uint      `gorm:"not null;uniqueIndex:idx_standard_set" json:"form_id"`
	Form        Form      `gorm:"foreignKey:FormID;constraint:OnDelete:RESTRICT" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the StandardOrder model
func (StandardOrder) TableName() string {
	return "standard_orders"
}

// IsStandardSet reports whether the (color, size, form) triple exactly
// matches a registered standard set. Pure lookup, no side effects; only
// existence matters.
func IsStandardSet(db *gorm.DB, colorID, sizeID, formID uint) (bool, error) {
	var count int64
	err := db.Model(&StandardOrder{}).
		Where("color_id = ? AND size_id = ? AND form_id = ?", colorID, sizeID, formID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
