package repository

import (
	"pizza_delivery/internal/models"

	"gorm.io/gorm"
)

type ExtraRepository interface {
	Create(extra *models.ExtraIngredient) error
	GetByID(id uint) (*models.ExtraIngredient, error)
	GetByIDs(ids []uint) ([]models.ExtraIngredient, error)
	GetAll() ([]models.ExtraIngredient, error)
}

type extraRepository struct {
	db *gorm.DB
}

func NewExtraRepository(db *gorm.DB) ExtraRepository {
	return &extraRepository{db: db}
}

func (r *extraRepository) Create(extra *models.ExtraIngredient) error {
	return r.db.Create(extra).Error
}

func (r *extraRepository) GetByID(id uint) (*models.ExtraIngredient, error) {
	var extra models.ExtraIngredient
	err := r.db.First(&extra, id).Error
	if err != nil {
		return nil, err
	}
	return &extra, nil
}

func (r *extraRepository) GetByIDs(ids []uint) ([]models.ExtraIngredient, error) {
	var extras []models.ExtraIngredient
	if len(ids) == 0 {
		return extras, nil
	}
	err := r.db.Where("id IN ?", ids).Order("id").Find(&extras).Error
	return extras, err
}

func (r *extraRepository) GetAll() ([]models.ExtraIngredient, error) {
	var extras []models.ExtraIngredient
	err := r.db.Order("id").Find(&extras).Error
	return extras, err
}
