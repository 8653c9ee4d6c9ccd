package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"pizza_delivery/internal/cart"
	"pizza_delivery/internal/models"
	"pizza_delivery/internal/repository"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrMissingContactInfo = errors.New("customer name, phone and delivery address are required")
)

// Notifier sends a best-effort message to the customer. Failures are logged,
// never returned.
type Notifier interface {
	SendText(phone, message string) error
}

type CheckoutRequest struct {
	CustomerName    string               `json:"customer_name"`
	CustomerEmail   string               `json:"customer_email"`
	CustomerPhone   string               `json:"customer_phone"`
	DeliveryAddress string               `json:"delivery_address"`
	Comments        string               `json:"comments"`
	PaymentMethod   models.PaymentMethod `json:"payment_method"`
	DeliveryTime    models.DeliveryTime  `json:"delivery_time"`
	ScheduledTime   *time.Time           `json:"scheduled_time"`
	UserID          uint                 `json:"-"`
}

type OrderService interface {
	Checkout(sessionID string, req *CheckoutRequest) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetOrdersByUser(userID uint) ([]models.Order, error)
	GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error)
	GetOrdersByDateRange(startDate, endDate time.Time) ([]models.Order, error)
	GetAllOrders() ([]models.Order, error)
	UpdateStatus(id uint, next models.OrderStatus) (*models.Order, error)
	RepeatOrder(id uint, userID uint) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	persister cart.Persister
	notifier  Notifier
}

// NewOrderService creates the order service. notifier may be nil, in which
// case no customer notifications are sent.
func NewOrderService(orderRepo repository.OrderRepository, persister cart.Persister, notifier Notifier) OrderService {
	return &orderService{orderRepo: orderRepo, persister: persister, notifier: notifier}
}

// Checkout snapshots the session cart into an order. The order total is the
// cart's derived total; each line keeps its own unit price and line total so
// the sum stays re-checkable. The cart is cleared only after the order is
// stored.
func (s *orderService) Checkout(sessionID string, req *CheckoutRequest) (*models.Order, error) {
	if req.CustomerName == "" || req.CustomerPhone == "" || req.DeliveryAddress == "" {
		return nil, ErrMissingContactInfo
	}
	if req.PaymentMethod != "" && !req.PaymentMethod.Valid() {
		return nil, fmt.Errorf("unknown payment method: %s", req.PaymentMethod)
	}

	store := cart.NewStore(sessionID, s.persister)
	items := store.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		OrderNumber:     generateOrderNumber(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		Total:           store.TotalPrice(),
		Status:          string(models.OrderPending),
		Comments:        req.Comments,
		PaymentMethod:   string(req.PaymentMethod),
		DeliveryTime:    string(req.DeliveryTime),
		ScheduledTime:   req.ScheduledTime,
		CreatedBy:       req.UserID,
	}
	for _, item := range items {
		order.Items = append(order.Items, models.OrderItem{
			LineKey:   item.Key,
			PizzaID:   item.PizzaID,
			Name:      item.Name,
			Size:      string(item.Size),
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.UnitPrice * item.Quantity,
			Image:     item.Image,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	store.Clear()

	s.notify(order, fmt.Sprintf("Order %s received, total %d. We'll confirm it shortly.", order.OrderNumber, order.Total))

	return order, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

func (s *orderService) GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown order status: %s", status)
	}
	return s.orderRepo.GetByStatus(string(status))
}

func (s *orderService) GetOrdersByDateRange(startDate, endDate time.Time) ([]models.Order, error) {
	return s.orderRepo.GetByDateRange(startDate, endDate)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// UpdateStatus applies an admin status transition after validating it
// against the order lifecycle graph.
func (s *orderService) UpdateStatus(id uint, next models.OrderStatus) (*models.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("unknown order status: %s", next)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	current := models.OrderStatus(order.Status)
	if !current.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}

	order.Status = string(next)
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.notify(order, fmt.Sprintf("Order %s is now %s.", order.OrderNumber, order.Status))

	return order, nil
}

// RepeatOrder clones a past order into a fresh pending one with the same
// lines and total.
func (s *orderService) RepeatOrder(id uint, userID uint) (*models.Order, error) {
	source, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	clone := &models.Order{
		OrderNumber:     generateOrderNumber(),
		CustomerName:    source.CustomerName,
		CustomerEmail:   source.CustomerEmail,
		CustomerPhone:   source.CustomerPhone,
		DeliveryAddress: source.DeliveryAddress,
		Total:           source.Total,
		Status:          string(models.OrderPending),
		Comments:        source.Comments,
		PaymentMethod:   source.PaymentMethod,
		DeliveryTime:    string(models.DeliveryASAP),
		CreatedBy:       userID,
	}
	for _, item := range source.Items {
		clone.Items = append(clone.Items, models.OrderItem{
			LineKey:   item.LineKey,
			PizzaID:   item.PizzaID,
			Name:      item.Name,
			Size:      item.Size,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
			Image:     item.Image,
		})
	}

	if err := s.orderRepo.Create(clone); err != nil {
		return nil, err
	}
	return clone, nil
}

func (s *orderService) notify(order *models.Order, message string) {
	if s.notifier == nil || order.CustomerPhone == "" {
		return
	}
	if err := s.notifier.SendText(order.CustomerPhone, message); err != nil {
		log.Printf("Warning: failed to notify customer for order %s: %v", order.OrderNumber, err)
	}
}

// generateOrderNumber builds a date-prefixed number with a 32-bit random
// suffix. The order_number unique constraint backstops the residual
// collision chance.
func generateOrderNumber() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		log.Printf("Warning: failed to generate order number suffix: %v", err)
	}
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), hex.EncodeToString(buf))
}
