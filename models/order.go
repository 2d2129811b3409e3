package models

import (
	"time"

	"github.com/craftline/orders-api/utils"
	"gorm.io/gorm"
)

// Order status values.
//
//	in_process: default on order creation
//	completed:  the order was delivered to the client
//	cancelled:  the order was cancelled by the manager
//	returned:   the order is returned by the client
const (
	StatusInProcess = "in_process"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusReturned  = "returned"
)

// Order process status values.
//
//	pending:     the order expects the manager decision
//	in_assembly: the order is assembling by the picker
//	in_delivery: the order is delivering to the client
//	delivered:   the order completely delivered
const (
	ProcessPending    = "pending"
	ProcessInAssembly = "in_assembly"
	ProcessInDelivery = "in_delivery"
	ProcessDelivered  = "delivered"
)

var statusLabels = map[string]string{
	StatusInProcess: "in process",
	StatusCompleted: "completed",
	StatusCancelled: "cancelled",
	StatusReturned:  "returned",
}

var processLabels = map[string]string{
	ProcessPending:    "Expects the manager to accept it",
	ProcessInAssembly: "in assembly",
	ProcessInDelivery: "in delivery",
	ProcessDelivered:  "delivered",
}

// StatusLabel returns the human-readable label for a status value
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// ProcessLabel returns the human-readable label for a process value
func ProcessLabel(process string) string {
	if label, ok := processLabels[process]; ok {
		return label
	}
	return process
}

// Order represents a client order. The code is a random opaque primary
// key assigned at creation and never changed.
type Order struct {
	Code      string    `gorm:"primaryKey;size:40" json:"code"`
	ClientID  *uint     `gorm:"index" json:"client_id"`
	Client    *Client   `gorm:"foreignKey:ClientID;constraint:OnDelete:SET NULL" json:"-"`
	ColorID   uint      `gorm:"not null" json:"color_id"`
	Color     Color     `gorm:"foreignKey:ColorID;constraint:OnDelete:RESTRICT" json:"color"`
	SizeID    uint      `gorm:"not null" json:"size_id"`
	Size      Size      `gorm:"foreignKey:SizeID;constraint:OnDelete:RESTRICT" json:"size"`
	FormID    uint      `gorm:"not null" json:"form_id"`
	Form      Form      `gorm:"foreignKey:FormID;constraint:OnDelete:RESTRICT" json:"form"`
	Status    string    `gorm:"size:15;not null;default:'in_process'" json:"status"`
	Process   string    `gorm:"size:15;not null;default:'pending'" json:"process"`
	Comment   string    `gorm:"size:250" json:"comment"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"modified"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate assigns a random code and default statuses when unset
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Code == "" {
		code, err := utils.GenerateOrderCode()
		if err != nil {
			return err
		}
		o.Code = code
	}
	if o.Status == "" {
		o.Status = StatusInProcess
	}
	if o.Process == "" {
		o.Process = ProcessPending
	}
	return nil
}

// InitialProcess returns the process status a new order starts in:
// straight to assembly for a standard property set, otherwise pending a
// manager decision.
func InitialProcess(standard bool) string {
	if standard {
		return ProcessInAssembly
	}
	return ProcessPending
}

// IsTerminalStatus reports whether a status admits no further transitions
func IsTerminalStatus(status string) bool {
	return status == StatusCancelled || status == StatusReturned
}

// CanFinalize reports whether client-facing mutations (the return action)
// are allowed: only a delivered order that is not already returned or
// cancelled may be finalized.
func (o *Order) CanFinalize() bool {
	return o.Process == ProcessDelivered &&
		(o.Status == StatusInProcess || o.Status == StatusCompleted)
}
