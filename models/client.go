package models

import "time"

// Client is the service-client profile attached to a User. A user is a
// client exactly when a Client row references it. Composition replaces the
// identity-model inheritance of the previous system.
type Client struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Address    string    `gorm:"size:250;not null" json:"address"`
	Additional string    `gorm:"size:250" json:"additional"` // personal or otherwise important info
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
