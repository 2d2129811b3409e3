package models

// Order property catalog. Colors, sizes and forms are flat reference
// data: a unique name plus an optional description. Orders and standard
// templates reference them by id; deletion is blocked while referenced.

// Color is an order color property
type Color struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;size:25;not null" json:"name"`
	Description string `gorm:"size:250" json:"description"`
}

// TableName specifies the table name for the Color model
func (Color) TableName() string {
	return "colors"
}

// Size is an order size property
type Size struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;size:25;not null" json:"name"`
	Description string `gorm:"size:250" json:"description"`
}

// TableName specifies the table name for the Size model
func (Size) TableName() string {
	return "sizes"
}

// Form is an order form property
type Form struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;size:25;not null" json:"name"`
	Description string `gorm:"size:250" json:"description"`
}

// TableName specifies the table name for the Form model
func (Form) TableName() string {
	return "forms"
}
