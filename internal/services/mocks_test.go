package services

import (
	"encoding/json"
	"errors"
	"time"

	"pizza_delivery/internal/cart"
	"pizza_delivery/internal/models"

	"gorm.io/gorm"
)

// In-memory fakes standing in for the gorm repositories and Redis.

type fakePizzaRepo struct {
	pizzas map[uint]*models.Pizza
	nextID uint
}

func newFakePizzaRepo() *fakePizzaRepo {
	return &fakePizzaRepo{pizzas: make(map[uint]*models.Pizza), nextID: 1}
}

func (r *fakePizzaRepo) Create(pizza *models.Pizza) error {
	if pizza.ID == 0 {
		pizza.ID = r.nextID
		r.nextID++
	}
	stored := *pizza
	r.pizzas[pizza.ID] = &stored
	return nil
}

func (r *fakePizzaRepo) GetByID(id uint) (*models.Pizza, error) {
	pizza, ok := r.pizzas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *pizza
	return &copied, nil
}

func (r *fakePizzaRepo) GetByCategory(category string) ([]models.Pizza, error) {
	var out []models.Pizza
	for _, pizza := range r.pizzas {
		if pizza.Category == category {
			out = append(out, *pizza)
		}
	}
	return out, nil
}

func (r *fakePizzaRepo) GetAll() ([]models.Pizza, error) {
	var out []models.Pizza
	for _, pizza := range r.pizzas {
		out = append(out, *pizza)
	}
	return out, nil
}

func (r *fakePizzaRepo) Update(pizza *models.Pizza) error {
	if _, ok := r.pizzas[pizza.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *pizza
	r.pizzas[pizza.ID] = &stored
	return nil
}

func (r *fakePizzaRepo) Delete(id uint) error {
	delete(r.pizzas, id)
	return nil
}

type fakeExtraRepo struct {
	extras map[uint]*models.ExtraIngredient
}

func newFakeExtraRepo(extras ...models.ExtraIngredient) *fakeExtraRepo {
	repo := &fakeExtraRepo{extras: make(map[uint]*models.ExtraIngredient)}
	for i := range extras {
		stored := extras[i]
		repo.extras[stored.ID] = &stored
	}
	return repo
}

func (r *fakeExtraRepo) Create(extra *models.ExtraIngredient) error {
	stored := *extra
	r.extras[extra.ID] = &stored
	return nil
}

func (r *fakeExtraRepo) GetByID(id uint) (*models.ExtraIngredient, error) {
	extra, ok := r.extras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *extra
	return &copied, nil
}

func (r *fakeExtraRepo) GetByIDs(ids []uint) ([]models.ExtraIngredient, error) {
	var out []models.ExtraIngredient
	for _, id := range ids {
		if extra, ok := r.extras[id]; ok {
			out = append(out, *extra)
		}
	}
	return out, nil
}

func (r *fakeExtraRepo) GetAll() ([]models.ExtraIngredient, error) {
	var out []models.ExtraIngredient
	for _, extra := range r.extras {
		out = append(out, *extra)
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders map[uint]*models.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*models.Order), nextID: 1}
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	order.ID = r.nextID
	r.nextID++
	order.CreatedAt = time.Now()
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) GetByUserID(userID uint) ([]models.Order, error) {
	var out []models.Order
	for _, order := range r.orders {
		if order.CreatedBy == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetByStatus(status string) ([]models.Order, error) {
	var out []models.Order
	for _, order := range r.orders {
		if order.Status == status {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetByDateRange(startDate, endDate time.Time) ([]models.Order, error) {
	var out []models.Order
	for _, order := range r.orders {
		if !order.CreatedAt.Before(startDate) && !order.CreatedAt.After(endDate) {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) GetAll() ([]models.Order, error) {
	var out []models.Order
	for _, order := range r.orders {
		out = append(out, *order)
	}
	return out, nil
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

type fakeAddressRepo struct {
	addresses map[uint]*models.UserAddress
	nextID    uint
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: make(map[uint]*models.UserAddress), nextID: 1}
}

func (r *fakeAddressRepo) Create(address *models.UserAddress) error {
	address.ID = r.nextID
	r.nextID++
	stored := *address
	r.addresses[address.ID] = &stored
	return nil
}

func (r *fakeAddressRepo) GetByID(id uint) (*models.UserAddress, error) {
	address, ok := r.addresses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *address
	return &copied, nil
}

func (r *fakeAddressRepo) GetByUserID(userID uint) ([]models.UserAddress, error) {
	var out []models.UserAddress
	for _, address := range r.addresses {
		if address.UserID == userID {
			out = append(out, *address)
		}
	}
	return out, nil
}

func (r *fakeAddressRepo) Update(address *models.UserAddress) error {
	if _, ok := r.addresses[address.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *address
	r.addresses[address.ID] = &stored
	return nil
}

func (r *fakeAddressRepo) Delete(id uint) error {
	delete(r.addresses, id)
	return nil
}

func (r *fakeAddressRepo) ClearDefault(userID uint) error {
	for _, address := range r.addresses {
		if address.UserID == userID {
			address.IsDefault = false
		}
	}
	return nil
}

// fakePersister matches the Redis cart blob semantics.
type fakePersister struct {
	blobs map[string]string
}

func newFakePersister() *fakePersister {
	return &fakePersister{blobs: make(map[string]string)}
}

func (p *fakePersister) SaveCart(sessionID string, items []cart.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	p.blobs[sessionID] = string(data)
	return nil
}

func (p *fakePersister) LoadCart(sessionID string) ([]cart.Item, error) {
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

func (p *fakePersister) DeleteCart(sessionID string) error {
	delete(p.blobs, sessionID)
	return nil
}

type fakeTokenStore struct {
	tokens map[string]uint
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]uint)}
}

func (s *fakeTokenStore) SetAuthToken(token string, userID uint) error {
	s.tokens[token] = userID
	return nil
}

func (s *fakeTokenStore) GetAuthToken(token string) (uint, error) {
	userID, ok := s.tokens[token]
	if !ok {
		return 0, errors.New("token not found")
	}
	return userID, nil
}

func (s *fakeTokenStore) DeleteAuthToken(token string) error {
	delete(s.tokens, token)
	return nil
}

type recordingNotifier struct {
	messages []string
	fail     bool
}

func (n *recordingNotifier) SendText(phone, message string) error {
	if n.fail {
		return errors.New("gateway unreachable")
	}
	n.messages = append(n.messages, message)
	return nil
}
