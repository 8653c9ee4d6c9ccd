package services

import (
	"errors"
	"fmt"

	"pizza_delivery/internal/models"
	"pizza_delivery/internal/repository"
)

type CatalogService interface {
	ListPizzas() ([]models.Pizza, error)
	ListPizzasByCategory(category models.PizzaCategory) ([]models.Pizza, error)
	GetPizza(id uint) (*models.Pizza, error)
	CreatePizza(pizza *models.Pizza) error
	UpdatePizza(id uint, patch *models.PizzaPatch) (*models.Pizza, error)
	DeletePizza(id uint) error
	ListExtras() ([]models.ExtraIngredient, error)
	GetExtrasByIDs(ids []uint) ([]models.ExtraIngredient, error)
}

type catalogService struct {
	pizzaRepo repository.PizzaRepository
	extraRepo repository.ExtraRepository
}

func NewCatalogService(pizzaRepo repository.PizzaRepository, extraRepo repository.ExtraRepository) CatalogService {
	return &catalogService{pizzaRepo: pizzaRepo, extraRepo: extraRepo}
}

func (s *catalogService) ListPizzas() ([]models.Pizza, error) {
	return s.pizzaRepo.GetAll()
}

func (s *catalogService) ListPizzasByCategory(category models.PizzaCategory) ([]models.Pizza, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category: %s", category)
	}
	return s.pizzaRepo.GetByCategory(string(category))
}

func (s *catalogService) GetPizza(id uint) (*models.Pizza, error) {
	return s.pizzaRepo.GetByID(id)
}

func (s *catalogService) CreatePizza(pizza *models.Pizza) error {
	if err := validatePizza(pizza); err != nil {
		return err
	}
	return s.pizzaRepo.Create(pizza)
}

func (s *catalogService) UpdatePizza(id uint, patch *models.PizzaPatch) (*models.Pizza, error) {
	pizza, err := s.pizzaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	patch.Apply(pizza)
	if err := validatePizza(pizza); err != nil {
		return nil, err
	}

	if err := s.pizzaRepo.Update(pizza); err != nil {
		return nil, err
	}
	return pizza, nil
}

func (s *catalogService) DeletePizza(id uint) error {
	return s.pizzaRepo.Delete(id)
}

func (s *catalogService) ListExtras() ([]models.ExtraIngredient, error) {
	return s.extraRepo.GetAll()
}

// GetExtrasByIDs resolves the selection against the catalog. Every requested
// ID must exist; a partial match is an error so a stale UI selection cannot
// silently price a cart line without its extras.
func (s *catalogService) GetExtrasByIDs(ids []uint) ([]models.ExtraIngredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	extras, err := s.extraRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(extras) != len(ids) {
		return nil, errors.New("unknown extra ingredient in selection")
	}
	return extras, nil
}

func validatePizza(pizza *models.Pizza) error {
	if pizza.Name == "" {
		return errors.New("pizza name is required")
	}
	if !models.PizzaCategory(pizza.Category).Valid() {
		return fmt.Errorf("unknown category: %s", pizza.Category)
	}
	for _, size := range []models.PizzaSize{models.SizeSmall, models.SizeMedium, models.SizeLarge} {
		price, ok := pizza.Prices[size]
		if !ok || price <= 0 {
			return fmt.Errorf("missing or non-positive price for size %s", size)
		}
	}
	if pizza.Discount < 0 || pizza.Discount > 100 {
		return errors.New("discount must be between 0 and 100")
	}
	return nil
}
