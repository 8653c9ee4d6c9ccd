package models

import (
	"time"

	"gorm.io/gorm"
)

type ExtraCategory string

const (
	ExtraCheese     ExtraCategory = "cheese"
	ExtraMeat       ExtraCategory = "meat"
	ExtraVegetables ExtraCategory = "vegetables"
	ExtraSauce      ExtraCategory = "sauce"
)

// ExtraIngredient is a flat-priced add-on applicable to a cart line.
type ExtraIngredient struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Price     int            `json:"price" gorm:"not null"`
	Category  string         `json:"category" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
