package repository

import (
	"pizza_delivery/internal/models"

	"gorm.io/gorm"
)

type PizzaRepository interface {
	Create(pizza *models.Pizza) error
	GetByID(id uint) (*models.Pizza, error)
	GetByCategory(category string) ([]models.Pizza, error)
	GetAll() ([]models.Pizza, error)
	Update(pizza *models.Pizza) error
	Delete(id uint) error
}

type pizzaRepository struct {
	db *gorm.DB
}

func NewPizzaRepository(db *gorm.DB) PizzaRepository {
	return &pizzaRepository{db: db}
}

func (r *pizzaRepository) Create(pizza *models.Pizza) error {
	return r.db.Create(pizza).Error
}

func (r *pizzaRepository) GetByID(id uint) (*models.Pizza, error) {
	var pizza models.Pizza
	err := r.db.First(&pizza, id).Error
	if err != nil {
		return nil, err
	}
	return &pizza, nil
}

func (r *pizzaRepository) GetByCategory(category string) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	err := r.db.Where("category = ?", category).Order("id").Find(&pizzas).Error
	return pizzas, err
}

func (r *pizzaRepository) GetAll() ([]models.Pizza, error) {
	var pizzas []models.Pizza
	err := r.db.Order("id").Find(&pizzas).Error
	return pizzas, err
}

func (r *pizzaRepository) Update(pizza *models.Pizza) error {
	return r.db.Save(pizza).Error
}

func (r *pizzaRepository) Delete(id uint) error {
	return r.db.Delete(&models.Pizza{}, id).Error
}
