package services

import (
	"sort"

	"pizza_delivery/internal/models"
	"pizza_delivery/internal/repository"
)

type PizzaSales struct {
	PizzaID  uint   `json:"pizza_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int    `json:"revenue"`
}

type DashboardStats struct {
	TotalOrders     int            `json:"total_orders"`
	TotalRevenue    int            `json:"total_revenue"`
	PendingOrders   int            `json:"pending_orders"`
	CompletedOrders int            `json:"completed_orders"`
	OrdersByStatus  map[string]int `json:"orders_by_status"`
	TopPizzas       []PizzaSales   `json:"top_pizzas"`
	RecentOrders    []models.Order `json:"recent_orders"`
}

type DashboardService interface {
	Stats() (*DashboardStats, error)
}

type dashboardService struct {
	orderRepo repository.OrderRepository
}

func NewDashboardService(orderRepo repository.OrderRepository) DashboardService {
	return &dashboardService{orderRepo: orderRepo}
}

// Stats aggregates the admin dashboard numbers from current orders.
// Cancelled orders are excluded from revenue and sales rankings.
func (s *dashboardService) Stats() (*DashboardStats, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalOrders:    len(orders),
		OrdersByStatus: make(map[string]int),
	}

	sales := make(map[uint]*PizzaSales)
	for _, order := range orders {
		stats.OrdersByStatus[order.Status]++
		switch models.OrderStatus(order.Status) {
		case models.OrderPending:
			stats.PendingOrders++
		case models.OrderCompleted:
			stats.CompletedOrders++
		case models.OrderCancelled:
			continue
		}

		stats.TotalRevenue += order.Total
		for _, item := range order.Items {
			entry, ok := sales[item.PizzaID]
			if !ok {
				entry = &PizzaSales{PizzaID: item.PizzaID, Name: item.Name}
				sales[item.PizzaID] = entry
			}
			entry.Quantity += item.Quantity
			entry.Revenue += item.LineTotal
		}
	}

	for _, entry := range sales {
		stats.TopPizzas = append(stats.TopPizzas, *entry)
	}
	sort.Slice(stats.TopPizzas, func(i, j int) bool {
		if stats.TopPizzas[i].Quantity != stats.TopPizzas[j].Quantity {
			return stats.TopPizzas[i].Quantity > stats.TopPizzas[j].Quantity
		}
		return stats.TopPizzas[i].PizzaID < stats.TopPizzas[j].PizzaID
	})
	if len(stats.TopPizzas) > 5 {
		stats.TopPizzas = stats.TopPizzas[:5]
	}

	// Repo returns orders newest first
	if len(orders) > 5 {
		stats.RecentOrders = orders[:5]
	} else {
		stats.RecentOrders = orders
	}

	return stats, nil
}
