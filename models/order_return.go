package models

import (
	"fmt"
	"time"
)

// Order return solution values.
//
//	pending:   the return expects the manager decision
//	money:     return money to the client
//	new_order: create a new order to replace the returned one
const (
	SolutionPending  = "pending"
	SolutionMoney    = "money"
	SolutionNewOrder = "new_order"
)

var solutionLabels = map[string]string{
	SolutionPending:  "pending",
	SolutionMoney:    "return money to the client",
	SolutionNewOrder: "create a new order to replace the returned one",
}

// SolutionLabel returns the human-readable label for a solution value
func SolutionLabel(solution string) string {
	if label, ok := solutionLabels[solution]; ok {
		return label
	}
	return solution
}

// OrderReturn records the resolution of a returned order. Exactly one
// return may exist per order; the unique index doubles as the guard
// against concurrent duplicate return submissions.
type OrderReturn struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OrderCode    string    `gorm:"uniqueIndex;size:40;not null" json:"order_code"`
	Order        Order     `gorm:"foreignKey:OrderCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
	Solution     string    `gorm:"size:15;not null;default:'pending'" json:"solution"`
	NewOrderCode *string   `gorm:"size:40" json:"new_order_code"`
	NewOrder     *Order    `gorm:"foreignKey:NewOrderCode;references:Code;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the OrderReturn model
func (OrderReturn) TableName() string {
	return "order_returns"
}

// OrderNotReturnedError reports an attempt to attach a return to an order
// that is not in the returned status. It names the order and its current
// status for operator diagnosis.
type OrderNotReturnedError struct {
	Code   string
	Status string
}

func (e *OrderNotReturnedError) Error() string {
	return fmt.Sprintf(
		"only a returned order can be related with a return solution, but order [%s] has a %q status",
		e.Code, StatusLabel(e.Status),
	)
}

// ValidateOrderReturned checks the write-time invariant that a return may
// only reference an order whose status is returned
func ValidateOrderReturned(order *Order) error {
	if order.Status != StatusReturned {
		return &OrderNotReturnedError{Code: order.Code, Status: order.Status}
	}
	return nil
}
