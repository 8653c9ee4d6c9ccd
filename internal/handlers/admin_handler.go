package handlers

import (
	"net/http"
	"strconv"

	"pizza_delivery/internal/models"
	"pizza_delivery/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	catalogService   services.CatalogService
	orderService     services.OrderService
	dashboardService services.DashboardService
	userService      services.UserService
}

func NewAdminHandler(
	catalogService services.CatalogService,
	orderService services.OrderService,
	dashboardService services.DashboardService,
	userService services.UserService,
) *AdminHandler {
	return &AdminHandler{
		catalogService:   catalogService,
		orderService:     orderService,
		dashboardService: dashboardService,
		userService:      userService,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, token, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	if user.Role != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Catalog management

func (h *AdminHandler) CreatePizza(c *gin.Context) {
	var pizza models.Pizza
	if err := c.ShouldBindJSON(&pizza); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.catalogService.CreatePizza(&pizza); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pizza)
}

func (h *AdminHandler) UpdatePizza(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pizza id"})
		return
	}

	var patch models.PizzaPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	pizza, err := h.catalogService.UpdatePizza(uint(id), &patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pizza)
}

func (h *AdminHandler) DeletePizza(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pizza id"})
		return
	}

	if err := h.catalogService.DeletePizza(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Orders

func (h *AdminHandler) ListOrders(c *gin.Context) {
	status := c.Query("status")

	var (
		orders []models.Order
		err    error
	)
	if status != "" {
		orders, err = h.orderService.GetOrdersByStatus(models.OrderStatus(status))
	} else {
		orders, err = h.orderService.GetAllOrders()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *AdminHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orderService.GetOrderByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdateStatus(uint(id), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// Dashboard

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
