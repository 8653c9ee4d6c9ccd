package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"pizza_delivery/internal/models"
	"pizza_delivery/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("insufficient permissions")
)

// TokenStore keeps issued auth tokens, mapping token -> user ID.
type TokenStore interface {
	SetAuthToken(token string, userID uint) error
	GetAuthToken(token string) (uint, error)
	DeleteAuthToken(token string) error
}

type UserService interface {
	Register(name, email, password string) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	Logout(token string) error
	GetUserByToken(token string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	RequireRole(userID uint, role models.UserRole) error

	ListAddresses(userID uint) ([]models.UserAddress, error)
	AddAddress(userID uint, address *models.UserAddress) error
	UpdateAddress(userID, addressID uint, patch *models.AddressPatch) (*models.UserAddress, error)
	DeleteAddress(userID, addressID uint) error
}

type userService struct {
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	tokens      TokenStore
}

func NewUserService(userRepo repository.UserRepository, addressRepo repository.AddressRepository, tokens TokenStore) UserService {
	return &userService{userRepo: userRepo, addressRepo: addressRepo, tokens: tokens}
}

func (s *userService) Register(name, email, password string) (*models.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", errors.New("name, email and password are required")
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         string(models.RoleUser),
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !user.IsActive {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Logout(token string) error {
	return s.tokens.DeleteAuthToken(token)
}

func (s *userService) GetUserByToken(token string) (*models.User, error) {
	userID, err := s.tokens.GetAuthToken(token)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(userID)
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *userService) RequireRole(userID uint, role models.UserRole) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user.Role != string(role) {
		return ErrForbidden
	}
	return nil
}

// Address management

func (s *userService) ListAddresses(userID uint) ([]models.UserAddress, error) {
	return s.addressRepo.GetByUserID(userID)
}

// AddAddress stores a new delivery address. Marking it default unsets the
// previous default so at most one address per user carries the flag.
func (s *userService) AddAddress(userID uint, address *models.UserAddress) error {
	if address.Title == "" || address.Address == "" {
		return errors.New("address title and street address are required")
	}

	address.UserID = userID
	if address.IsDefault {
		if err := s.addressRepo.ClearDefault(userID); err != nil {
			return err
		}
	}
	return s.addressRepo.Create(address)
}

func (s *userService) UpdateAddress(userID, addressID uint, patch *models.AddressPatch) (*models.UserAddress, error) {
	address, err := s.addressRepo.GetByID(addressID)
	if err != nil {
		return nil, err
	}
	if address.UserID != userID {
		return nil, ErrForbidden
	}

	patch.Apply(address)
	if patch.IsDefault != nil && *patch.IsDefault {
		if err := s.addressRepo.ClearDefault(userID); err != nil {
			return nil, err
		}
		// ClearDefault ran before Save, so the patched address keeps the flag.
		address.IsDefault = true
	}

	if err := s.addressRepo.Update(address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *userService) DeleteAddress(userID, addressID uint) error {
	address, err := s.addressRepo.GetByID(addressID)
	if err != nil {
		return err
	}
	if address.UserID != userID {
		return ErrForbidden
	}
	return s.addressRepo.Delete(addressID)
}

func (s *userService) issueToken(userID uint) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.tokens.SetAuthToken(token, userID); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return token, nil
}
