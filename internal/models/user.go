package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	Email        string         `json:"email" gorm:"unique;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Phone        string         `json:"phone"`
	Role         string         `json:"role" gorm:"default:'user'"` // admin, user
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type UserAddress struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	UserID     uint           `json:"user_id" gorm:"not null;index"`
	Title      string         `json:"title" gorm:"not null"` // e.g. "Home", "Work"
	Address    string         `json:"address" gorm:"not null"`
	City       string         `json:"city"`
	PostalCode string         `json:"postal_code"`
	Phone      string         `json:"phone"`
	IsDefault  bool           `json:"is_default" gorm:"default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// AddressPatch is a partial address update; nil fields keep the current value.
type AddressPatch struct {
	Title      *string `json:"title"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	Phone      *string `json:"phone"`
	IsDefault  *bool   `json:"is_default"`
}

func (p *AddressPatch) Apply(addr *UserAddress) {
	if p.Title != nil {
		addr.Title = *p.Title
	}
	if p.Address != nil {
		addr.Address = *p.Address
	}
	if p.City != nil {
		addr.City = *p.City
	}
	if p.PostalCode != nil {
		addr.PostalCode = *p.PostalCode
	}
	if p.Phone != nil {
		addr.Phone = *p.Phone
	}
	if p.IsDefault != nil {
		addr.IsDefault = *p.IsDefault
	}
}
