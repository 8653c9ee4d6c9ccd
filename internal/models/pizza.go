package models

import (
	"time"

	"gorm.io/gorm"
)

type PizzaSize string

const (
	SizeSmall  PizzaSize = "small"
	SizeMedium PizzaSize = "medium"
	SizeLarge  PizzaSize = "large"
)

func (s PizzaSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

type PizzaCategory string

const (
	CategoryClassic    PizzaCategory = "classic"
	CategoryVegetarian PizzaCategory = "vegetarian"
	CategorySeafood    PizzaCategory = "seafood"
	CategoryGlutenFree PizzaCategory = "gluten-free"
)

func (c PizzaCategory) Valid() bool {
	switch c {
	case CategoryClassic, CategoryVegetarian, CategorySeafood, CategoryGlutenFree:
		return true
	}
	return false
}

// PriceTable maps a pizza size to its price in whole currency units.
type PriceTable map[PizzaSize]int

type Pizza struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Category    string         `json:"category" gorm:"not null"`
	Image       string         `json:"image"`
	Prices      PriceTable     `json:"prices" gorm:"serializer:json;not null"`
	Tags        []string       `json:"tags" gorm:"serializer:json"`
	IsNew       bool           `json:"is_new" gorm:"default:false"`
	Discount    int            `json:"discount" gorm:"default:0"` // percent, 0-100
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// PriceFor returns the base price for the given size.
func (p *Pizza) PriceFor(size PizzaSize) (int, bool) {
	price, ok := p.Prices[size]
	return price, ok
}

// PizzaPatch is a partial update: nil fields are left untouched,
// non-nil fields overwrite the current value.
type PizzaPatch struct {
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	Category    *string     `json:"category"`
	Image       *string     `json:"image"`
	Prices      *PriceTable `json:"prices"`
	Tags        *[]string   `json:"tags"`
	IsNew       *bool       `json:"is_new"`
	Discount    *int        `json:"discount"`
}

func (p *PizzaPatch) Apply(pizza *Pizza) {
	if p.Name != nil {
		pizza.Name = *p.Name
	}
	if p.Description != nil {
		pizza.Description = *p.Description
	}
	if p.Category != nil {
		pizza.Category = *p.Category
	}
	if p.Image != nil {
		pizza.Image = *p.Image
	}
	if p.Prices != nil {
		pizza.Prices = *p.Prices
	}
	if p.Tags != nil {
		pizza.Tags = *p.Tags
	}
	if p.IsNew != nil {
		pizza.IsNew = *p.IsNew
	}
	if p.Discount != nil {
		pizza.Discount = *p.Discount
	}
}
