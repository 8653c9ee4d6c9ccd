package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"strconv"

	"pizza_delivery/internal/models"
	"pizza_delivery/internal/services"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "cart_session"
const sessionCookieMaxAge = 30 * 24 * 3600

type StorefrontHandler struct {
	catalogService services.CatalogService
	cartService    services.CartService
	orderService   services.OrderService
	userService    services.UserService
}

func NewStorefrontHandler(
	catalogService services.CatalogService,
	cartService services.CartService,
	orderService services.OrderService,
	userService services.UserService,
) *StorefrontHandler {
	return &StorefrontHandler{
		catalogService: catalogService,
		cartService:    cartService,
		orderService:   orderService,
		userService:    userService,
	}
}

// sessionID returns the cart session from the cookie, minting one on first
// touch.
func (h *StorefrontHandler) sessionID(c *gin.Context) string {
	if sid, err := c.Cookie(sessionCookie); err == nil && sid != "" {
		return sid
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		log.Printf("Warning: failed to generate cart session id: %v", err)
	}
	sid := hex.EncodeToString(buf)
	c.SetCookie(sessionCookie, sid, sessionCookieMaxAge, "/", "", false, true)
	return sid
}

// Catalog

func (h *StorefrontHandler) ListPizzas(c *gin.Context) {
	category := c.Query("category")

	var (
		pizzas []models.Pizza
		err    error
	)
	if category != "" {
		pizzas, err = h.catalogService.ListPizzasByCategory(models.PizzaCategory(category))
	} else {
		pizzas, err = h.catalogService.ListPizzas()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pizzas": pizzas})
}

func (h *StorefrontHandler) GetPizza(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pizza id"})
		return
	}

	pizza, err := h.catalogService.GetPizza(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pizza)
}

func (h *StorefrontHandler) ListExtras(c *gin.Context) {
	extras, err := h.catalogService.ListExtras()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"extras": extras})
}

// Pricing preview

func (h *StorefrontHandler) QuotePrice(c *gin.Context) {
	var req struct {
		PizzaID  uint             `json:"pizza_id"`
		Size     models.PizzaSize `json:"size"`
		Quantity int              `json:"quantity"`
		ExtraIDs []uint           `json:"extra_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	quote, err := h.cartService.Quote(req.PizzaID, req.Size, req.Quantity, req.ExtraIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Cart

func (h *StorefrontHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.Get(h.sessionID(c)))
}

func (h *StorefrontHandler) AddCartItem(c *gin.Context) {
	var req struct {
		PizzaID  uint             `json:"pizza_id"`
		Size     models.PizzaSize `json:"size"`
		Quantity int              `json:"quantity"`
		ExtraIDs []uint           `json:"extra_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	summary, err := h.cartService.AddPizza(h.sessionID(c), req.PizzaID, req.Size, req.Quantity, req.ExtraIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *StorefrontHandler) SetCartItemQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	summary, err := h.cartService.SetQuantity(h.sessionID(c), c.Param("key"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *StorefrontHandler) IncrementCartItem(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.Increment(h.sessionID(c), c.Param("key")))
}

func (h *StorefrontHandler) DecrementCartItem(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.Decrement(h.sessionID(c), c.Param("key")))
}

func (h *StorefrontHandler) RemoveCartItem(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.Remove(h.sessionID(c), c.Param("key")))
}

func (h *StorefrontHandler) ClearCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.Clear(h.sessionID(c)))
}

// Checkout

func (h *StorefrontHandler) Checkout(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// Guest checkout is allowed; attach the user when a valid token came along.
	if token := bearerToken(c); token != "" {
		if user, err := h.userService.GetUserByToken(token); err == nil {
			req.UserID = user.ID
		}
	}

	order, err := h.orderService.Checkout(h.sessionID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *StorefrontHandler) GetOrder(c *gin.Context) {
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

// Auth

func (h *StorefrontHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, token, err := h.userService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

func (h *StorefrontHandler) Login(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *StorefrontHandler) Logout(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		if err := h.userService.Logout(token); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Profile

func (h *StorefrontHandler) ListMyOrders(c *gin.Context) {
	user := currentUser(c)
	orders, err := h.orderService.GetOrdersByUser(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *StorefrontHandler) RepeatOrder(c *gin.Context) {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orderService.RepeatOrder(uint(id), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *StorefrontHandler) ListAddresses(c *gin.Context) {
	user := currentUser(c)
	addresses, err := h.userService.ListAddresses(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

func (h *StorefrontHandler) AddAddress(c *gin.Context) {
	user := currentUser(c)

	var address models.UserAddress
	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.userService.AddAddress(user.ID, &address); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, address)
}

func (h *StorefrontHandler) UpdateAddress(c *gin.Context) {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address id"})
		return
	}

	var patch models.AddressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	address, err := h.userService.UpdateAddress(user.ID, uint(id), &patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, address)
}

func (h *StorefrontHandler) DeleteAddress(c *gin.Context) {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address id"})
		return
	}

	if err := h.userService.DeleteAddress(user.ID, uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
