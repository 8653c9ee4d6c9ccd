package repository

import (
	"pizza_delivery/internal/models"

	"gorm.io/gorm"
)

type AddressRepository interface {
	Create(address *models.UserAddress) error
	GetByID(id uint) (*models.UserAddress, error)
	GetByUserID(userID uint) ([]models.UserAddress, error)
	Update(address *models.UserAddress) error
	Delete(id uint) error
	ClearDefault(userID uint) error
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(address *models.UserAddress) error {
	return r.db.Create(address).Error
}

func (r *addressRepository) GetByID(id uint) (*models.UserAddress, error) {
	var address models.UserAddress
	err := r.db.First(&address, id).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) GetByUserID(userID uint) ([]models.UserAddress, error) {
	var addresses []models.UserAddress
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&addresses).Error
	return addresses, err
}

func (r *addressRepository) Update(address *models.UserAddress) error {
	return r.db.Save(address).Error
}

func (r *addressRepository) Delete(id uint) error {
	return r.db.Delete(&models.UserAddress{}, id).Error
}

// ClearDefault unsets the default flag on all of the user's addresses. Used
// before marking a new default so at most one address carries the flag.
func (r *addressRepository) ClearDefault(userID uint) error {
	return r.db.Model(&models.UserAddress{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}
