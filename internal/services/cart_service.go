package services

import (
	"fmt"
	"strings"
	"time"

	"pizza_delivery/internal/cart"
	"pizza_delivery/internal/models"
	"pizza_delivery/internal/pricing"
)

// Summary is the cart view handed back after every read or mutation.
type Summary struct {
	Items      []cart.Item `json:"items"`
	TotalItems int         `json:"total_items"`
	TotalPrice int         `json:"total_price"`
}

type CartService interface {
	Get(sessionID string) *Summary
	AddPizza(sessionID string, pizzaID uint, size models.PizzaSize, quantity int, extraIDs []uint) (*Summary, error)
	SetQuantity(sessionID, key string, quantity int) (*Summary, error)
	Increment(sessionID, key string) *Summary
	Decrement(sessionID, key string) *Summary
	Remove(sessionID, key string) *Summary
	Clear(sessionID string) *Summary
	Quote(pizzaID uint, size models.PizzaSize, quantity int, extraIDs []uint) (*pricing.Quote, error)
}

type cartService struct {
	catalog    CatalogService
	calculator *pricing.Calculator
	persister  cart.Persister
}

func NewCartService(catalog CatalogService, calculator *pricing.Calculator, persister cart.Persister) CartService {
	return &cartService{catalog: catalog, calculator: calculator, persister: persister}
}

func (s *cartService) load(sessionID string) *cart.Store {
	return cart.NewStore(sessionID, s.persister)
}

func summarize(store *cart.Store) *Summary {
	return &Summary{
		Items:      store.Items(),
		TotalItems: store.TotalItems(),
		TotalPrice: store.TotalPrice(),
	}
}

func (s *cartService) Get(sessionID string) *Summary {
	return summarize(s.load(sessionID))
}

// AddPizza prices the selection and merges it into the session cart. The
// cart stays unchanged when the selection fails validation.
func (s *cartService) AddPizza(sessionID string, pizzaID uint, size models.PizzaSize, quantity int, extraIDs []uint) (*Summary, error) {
	pizza, err := s.catalog.GetPizza(pizzaID)
	if err != nil {
		return nil, err
	}

	extras, err := s.catalog.GetExtrasByIDs(extraIDs)
	if err != nil {
		return nil, err
	}

	quote, err := s.calculator.Quote(pizza, size, quantity, extras)
	if err != nil {
		return nil, err
	}

	key := cart.LineKey(pizza.ID, size)
	if len(extras) > 0 {
		key = cart.LineKeyWithExtras(pizza.ID, size, time.Now())
	}

	store := s.load(sessionID)
	err = store.Add(cart.Item{
		Key:       key,
		PizzaID:   pizza.ID,
		Name:      lineName(pizza, extras),
		Size:      size,
		UnitPrice: quote.UnitPrice,
		Quantity:  quantity,
		Image:     pizza.Image,
	})
	if err != nil {
		return nil, err
	}

	return summarize(store), nil
}

func (s *cartService) SetQuantity(sessionID, key string, quantity int) (*Summary, error) {
	store := s.load(sessionID)
	if err := store.SetQuantity(key, quantity); err != nil {
		return nil, err
	}
	return summarize(store), nil
}

func (s *cartService) Increment(sessionID, key string) *Summary {
	store := s.load(sessionID)
	store.Increment(key)
	return summarize(store)
}

func (s *cartService) Decrement(sessionID, key string) *Summary {
	store := s.load(sessionID)
	store.Decrement(key)
	return summarize(store)
}

func (s *cartService) Remove(sessionID, key string) *Summary {
	store := s.load(sessionID)
	store.Remove(key)
	return summarize(store)
}

func (s *cartService) Clear(sessionID string) *Summary {
	store := s.load(sessionID)
	store.Clear()
	return summarize(store)
}

// Quote prices a selection without touching the cart, for live previews.
func (s *cartService) Quote(pizzaID uint, size models.PizzaSize, quantity int, extraIDs []uint) (*pricing.Quote, error) {
	pizza, err := s.catalog.GetPizza(pizzaID)
	if err != nil {
		return nil, err
	}
	extras, err := s.catalog.GetExtrasByIDs(extraIDs)
	if err != nil {
		return nil, err
	}
	return s.calculator.Quote(pizza, size, quantity, extras)
}

// lineName embeds the extras selection into the display name, e.g.
// "Pepperoni (+ Extra cheese, Mushrooms)".
func lineName(pizza *models.Pizza, extras []models.ExtraIngredient) string {
	if len(extras) == 0 {
		return pizza.Name
	}
	names := make([]string, len(extras))
	for i, extra := range extras {
		names[i] = extra.Name
	}
	return fmt.Sprintf("%s (+ %s)", pizza.Name, strings.Join(names, ", "))
}
