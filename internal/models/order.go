package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	OrderNumber     string         `json:"order_number" gorm:"unique;not null"`
	CustomerName    string         `json:"customer_name" gorm:"not null"`
	CustomerEmail   string         `json:"customer_email"`
	CustomerPhone   string         `json:"customer_phone" gorm:"not null"`
	DeliveryAddress string         `json:"delivery_address" gorm:"not null"`
	Items           []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	Total           int            `json:"total" gorm:"not null"`
	Status          string         `json:"status" gorm:"default:'pending'"` // pending, confirmed, preparing, delivering, completed, cancelled
	Comments        string         `json:"comments" gorm:"type:text"`
	PaymentMethod   string         `json:"payment_method"` // card, cash, card-courier
	DeliveryTime    string         `json:"delivery_time"`  // asap, scheduled
	ScheduledTime   *time.Time     `json:"scheduled_time"`
	CreatedBy       uint           `json:"created_by"` // customer user ID, 0 for guest checkout
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// OrderItem is an immutable snapshot of one cart line at checkout time.
type OrderItem struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	OrderID   uint           `json:"order_id" gorm:"not null;index"`
	LineKey   string         `json:"line_key" gorm:"not null"`
	PizzaID   uint           `json:"pizza_id" gorm:"not null"`
	Name      string         `json:"name" gorm:"not null"`
	Size      string         `json:"size" gorm:"not null"`
	UnitPrice int            `json:"unit_price" gorm:"not null"`
	Quantity  int            `json:"quantity" gorm:"not null"`
	LineTotal int            `json:"line_total" gorm:"not null"`
	Image     string         `json:"image"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderPreparing  OrderStatus = "preparing"
	OrderDelivering OrderStatus = "delivering"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderDelivering, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a status change is allowed. Orders move
// forward through the delivery pipeline; any non-terminal order can be
// cancelled. Completed and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return false
	}
	switch s {
	case OrderPending:
		return next == OrderConfirmed || next == OrderCancelled
	case OrderConfirmed:
		return next == OrderPreparing || next == OrderCancelled
	case OrderPreparing:
		return next == OrderDelivering || next == OrderCancelled
	case OrderDelivering:
		return next == OrderCompleted || next == OrderCancelled
	}
	return false
}

type PaymentMethod string

const (
	PaymentCard        PaymentMethod = "card"
	PaymentCash        PaymentMethod = "cash"
	PaymentCardCourier PaymentMethod = "card-courier"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentCash, PaymentCardCourier:
		return true
	}
	return false
}

type DeliveryTime string

const (
	DeliveryASAP      DeliveryTime = "asap"
	DeliveryScheduled DeliveryTime = "scheduled"
)
