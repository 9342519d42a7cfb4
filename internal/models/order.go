package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Order represents a guest check
type Order struct {
	gorm.Model
	LocationID uint
	Status     string
	PaidAt     *time.Time
	Items      []OrderItem `gorm:"foreignkey:OrderID"`
}

// OrderItem represents one sold line on an order, with the modifiers the
// guest applied to it. WasMade records whether the kitchen actually fired
// the item before a void; it gates stock restoration.
type OrderItem struct {
	gorm.Model
	OrderID    uint
	MenuItemID uint
	MenuItem   *MenuItem
	Quantity   float64
	Status     string
	VoidReason string
	WasMade    bool
	Modifiers  []Modifier `gorm:"many2many:order_item_modifiers;"`
}

// OrderStatus represents the possible states of an order
type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "open"
	OrderStatusSent      OrderStatus = "sent"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusVoided    OrderStatus = "voided"
)

// VoidReason represents why an order item was voided. Reasons in the waste
// taxonomy mean product was physically consumed and stock must be deducted;
// any other reason is a no-op for inventory.
type VoidReason string

const (
	VoidKitchenError        VoidReason = "kitchen_error"
	VoidCustomerDisliked    VoidReason = "customer_disliked"
	VoidWrongOrder          VoidReason = "wrong_order"
	VoidRemade              VoidReason = "remade"
	VoidQualityIssue        VoidReason = "quality_issue"
	VoidCustomerChangedMind VoidReason = "customer_changed_mind"
	VoidServerError         VoidReason = "server_error"
)
