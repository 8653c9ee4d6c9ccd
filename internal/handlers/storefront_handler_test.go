package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pizza_delivery/internal/cart"
	"pizza_delivery/internal/models"
	"pizza_delivery/internal/pricing"
	"pizza_delivery/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Minimal in-memory stand-ins for the gorm repositories and Redis, enough to
// run the real services under the real handlers.

type memPizzaRepo struct{ pizzas map[uint]*models.Pizza }

func (r *memPizzaRepo) Create(p *models.Pizza) error { r.pizzas[p.ID] = p; return nil }
func (r *memPizzaRepo) GetByID(id uint) (*models.Pizza, error) {
	p, ok := r.pizzas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}
func (r *memPizzaRepo) GetByCategory(category string) ([]models.Pizza, error) {
	var out []models.Pizza
	for _, p := range r.pizzas {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}
func (r *memPizzaRepo) GetAll() ([]models.Pizza, error) {
	var out []models.Pizza
	for _, p := range r.pizzas {
		out = append(out, *p)
	}
	return out, nil
}
func (r *memPizzaRepo) Update(p *models.Pizza) error { r.pizzas[p.ID] = p; return nil }
func (r *memPizzaRepo) Delete(id uint) error         { delete(r.pizzas, id); return nil }

type memExtraRepo struct{ extras map[uint]*models.ExtraIngredient }

func (r *memExtraRepo) Create(e *models.ExtraIngredient) error { r.extras[e.ID] = e; return nil }
func (r *memExtraRepo) GetByID(id uint) (*models.ExtraIngredient, error) {
	e, ok := r.extras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *e
	return &copied, nil
}
func (r *memExtraRepo) GetByIDs(ids []uint) ([]models.ExtraIngredient, error) {
	var out []models.ExtraIngredient
	for _, id := range ids {
		if e, ok := r.extras[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}
func (r *memExtraRepo) GetAll() ([]models.ExtraIngredient, error) {
	var out []models.ExtraIngredient
	for _, e := range r.extras {
		out = append(out, *e)
	}
	return out, nil
}

type memOrderRepo struct {
	orders map[uint]*models.Order
	nextID uint
}

func (r *memOrderRepo) Create(o *models.Order) error {
	r.nextID++
	o.ID = r.nextID
	o.CreatedAt = time.Now()
	r.orders[o.ID] = o
	return nil
}
func (r *memOrderRepo) GetByID(id uint) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *o
	return &copied, nil
}
func (r *memOrderRepo) GetByUserID(userID uint) ([]models.Order, error) { return nil, nil }
func (r *memOrderRepo) GetByStatus(status string) ([]models.Order, error) {
	return nil, nil
}
func (r *memOrderRepo) GetByDateRange(start, end time.Time) ([]models.Order, error) {
	return nil, nil
}
func (r *memOrderRepo) Update(o *models.Order) error { r.orders[o.ID] = o; return nil }
func (r *memOrderRepo) GetAll() ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

type memPersister struct{ blobs map[string]string }

func (p *memPersister) SaveCart(sessionID string, items []cart.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	p.blobs[sessionID] = string(data)
	return nil
}
func (p *memPersister) LoadCart(sessionID string) ([]cart.Item, error) {
	raw, ok := p.blobs[sessionID]
	if !ok {
		return nil, nil
	}
	var items []cart.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}
func (p *memPersister) DeleteCart(sessionID string) error { delete(p.blobs, sessionID); return nil }

type memUserRepo struct{ users map[uint]*models.User }

func (r *memUserRepo) Create(u *models.User) error {
	u.ID = uint(len(r.users) + 1)
	r.users[u.ID] = u
	return nil
}
func (r *memUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}
func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *memUserRepo) GetAll() ([]models.User, error) { return nil, nil }
func (r *memUserRepo) Update(u *models.User) error    { r.users[u.ID] = u; return nil }
func (r *memUserRepo) Delete(id uint) error           { delete(r.users, id); return nil }

type memAddressRepo struct{ addresses map[uint]*models.UserAddress }

func (r *memAddressRepo) Create(a *models.UserAddress) error {
	a.ID = uint(len(r.addresses) + 1)
	r.addresses[a.ID] = a
	return nil
}
func (r *memAddressRepo) GetByID(id uint) (*models.UserAddress, error) {
	a, ok := r.addresses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}
func (r *memAddressRepo) GetByUserID(userID uint) ([]models.UserAddress, error) { return nil, nil }
func (r *memAddressRepo) Update(a *models.UserAddress) error                    { r.addresses[a.ID] = a; return nil }
func (r *memAddressRepo) Delete(id uint) error                                  { delete(r.addresses, id); return nil }
func (r *memAddressRepo) ClearDefault(userID uint) error                        { return nil }

type memTokenStore struct{ tokens map[string]uint }

func (s *memTokenStore) SetAuthToken(token string, userID uint) error {
	s.tokens[token] = userID
	return nil
}
func (s *memTokenStore) GetAuthToken(token string) (uint, error) {
	id, ok := s.tokens[token]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	return id, nil
}
func (s *memTokenStore) DeleteAuthToken(token string) error { delete(s.tokens, token); return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pizzaRepo := &memPizzaRepo{pizzas: map[uint]*models.Pizza{
		1: {
			ID: 1, Name: "Pepperoni", Category: string(models.CategoryClassic),
			Prices: models.PriceTable{models.SizeSmall: 399, models.SizeMedium: 599, models.SizeLarge: 799},
		},
		2: {
			ID: 2, Name: "Margherita", Category: string(models.CategoryVegetarian),
			Prices: models.PriceTable{models.SizeSmall: 349, models.SizeMedium: 499, models.SizeLarge: 699},
		},
	}}
	extraRepo := &memExtraRepo{extras: map[uint]*models.ExtraIngredient{
		1: {ID: 1, Name: "Extra cheese", Price: 50, Category: string(models.ExtraCheese)},
	}}
	orderRepo := &memOrderRepo{orders: make(map[uint]*models.Order)}
	persister := &memPersister{blobs: make(map[string]string)}

	calculator := pricing.NewCalculator(pricing.Policy{})
	catalogService := services.NewCatalogService(pizzaRepo, extraRepo)
	cartService := services.NewCartService(catalogService, calculator, persister)
	orderService := services.NewOrderService(orderRepo, persister, nil)
	userService := services.NewUserService(
		&memUserRepo{users: make(map[uint]*models.User)},
		&memAddressRepo{addresses: make(map[uint]*models.UserAddress)},
		&memTokenStore{tokens: make(map[string]uint)},
	)

	handler := NewStorefrontHandler(catalogService, cartService, orderService, userService)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/pizzas", handler.ListPizzas)
	api.GET("/pizzas/:id", handler.GetPizza)
	api.GET("/extras", handler.ListExtras)
	api.GET("/cart", handler.GetCart)
	api.POST("/cart/items", handler.AddCartItem)
	api.PUT("/cart/items/:key", handler.SetCartItemQuantity)
	api.POST("/cart/items/:key/decrement", handler.DecrementCartItem)
	api.DELETE("/cart/items/:key", handler.RemoveCartItem)
	api.DELETE("/cart", handler.ClearCart)
	api.POST("/orders", handler.Checkout)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "test-session"})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeSummary(t *testing.T, recorder *httptest.ResponseRecorder) services.Summary {
	t.Helper()
	var summary services.Summary
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &summary))
	return summary
}

func TestSessionCookieMintedOnFirstTouch(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var sid string
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == sessionCookie {
			sid = cookie.Value
		}
	}
	assert.Len(t, sid, 32, "session id is 16 random bytes hex-encoded")
}

func TestListPizzasEndpoint(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/api/pizzas", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Pizzas []models.Pizza `json:"pizzas"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body.Pizzas, 2)
}

func TestCartFlow(t *testing.T) {
	router := newTestRouter(t)

	// Add two Margherita large.
	recorder := doJSON(t, router, http.MethodPost, "/api/cart/items", gin.H{
		"pizza_id": 2, "size": "large", "quantity": 2,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	summary := decodeSummary(t, recorder)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 1398, summary.TotalPrice)

	// Same selection again merges into one line of quantity 3.
	recorder = doJSON(t, router, http.MethodPost, "/api/cart/items", gin.H{
		"pizza_id": 2, "size": "large", "quantity": 1,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	summary = decodeSummary(t, recorder)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 3, summary.Items[0].Quantity)
	assert.Equal(t, 2097, summary.TotalPrice)

	key := summary.Items[0].Key

	// Zero quantity is rejected, cart unchanged.
	recorder = doJSON(t, router, http.MethodPut, "/api/cart/items/"+key, gin.H{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	recorder = doJSON(t, router, http.MethodGet, "/api/cart", nil)
	assert.Equal(t, 3, decodeSummary(t, recorder).TotalItems)

	// Decrement down to removal.
	for i := 0; i < 3; i++ {
		recorder = doJSON(t, router, http.MethodPost, "/api/cart/items/"+key+"/decrement", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
	}
	assert.Empty(t, decodeSummary(t, recorder).Items)
}

func TestInvalidSizeRejectedAtHandler(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/cart/items", gin.H{
		"pizza_id": 2, "size": "mega", "quantity": 1,
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/api/cart", nil)
	assert.Empty(t, decodeSummary(t, recorder).Items)
}

func TestCheckoutEndpoint(t *testing.T) {
	router := newTestRouter(t)

	// Empty cart checkout is a 400.
	recorder := doJSON(t, router, http.MethodPost, "/api/orders", gin.H{
		"customer_name": "Alice", "customer_phone": "1", "delivery_address": "1 Main St",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/api/cart/items", gin.H{
		"pizza_id": 1, "size": "medium", "quantity": 2, "extra_ids": []uint{1},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/api/orders", gin.H{
		"customer_name": "Alice", "customer_phone": "1", "delivery_address": "1 Main St",
		"payment_method": "cash", "delivery_time": "asap",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &order))
	assert.Equal(t, (599+50)*2, order.Total)
	assert.Equal(t, string(models.OrderPending), order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Pepperoni (+ Extra cheese)", order.Items[0].Name)

	// Checkout cleared the cart.
	recorder = doJSON(t, router, http.MethodGet, "/api/cart", nil)
	assert.Empty(t, decodeSummary(t, recorder).Items)
}
