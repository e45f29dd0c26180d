package services_test

import (
	"context"
	"errors"
	"strings"

	"play-cards-store/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

var errConnReset = errors.New("connection reset by peer")

// --- In-memory product repository ---

type memProductRepo struct {
	products map[string]models.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]models.Product)}
}

func (m *memProductRepo) add(name string, price float64) string {
	p := models.Product{
		ID:     primitive.NewObjectID(),
		Name:   name,
		Price:  price,
		Rarity: "Common",
	}
	m.products[p.ID.Hex()] = p
	return p.ID.Hex()
}

func (m *memProductRepo) FindByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &p, nil
}

func (m *memProductRepo) Find(_ context.Context, _ bson.M, _ *options.FindOptions) ([]models.Product, error) {
	result := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		result = append(result, p)
	}
	return result, nil
}

func (m *memProductRepo) Count(_ context.Context, _ bson.M) (int64, error) {
	return int64(len(m.products)), nil
}

func (m *memProductRepo) DistinctCategories(_ context.Context) ([]string, error) {
	return m.distinct(func(p models.Product) string { return p.Category }), nil
}

func (m *memProductRepo) DistinctRarities(_ context.Context) ([]string, error) {
	return m.distinct(func(p models.Product) string { return p.Rarity }), nil
}

func (m *memProductRepo) distinct(field func(models.Product) string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, p := range m.products {
		if v := field(p); v != "" && !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}

func (m *memProductRepo) Insert(_ context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	m.products[product.ID.Hex()] = *product
	return nil
}

func (m *memProductRepo) Update(_ context.Context, id string, updates bson.M) (int64, error) {
	p, ok := m.products[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["price"].(float64); ok {
		p.Price = v
	}
	if v, ok := updates["name"].(string); ok {
		p.Name = v
	}
	m.products[id] = p
	return 1, nil
}

func (m *memProductRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := m.products[id]; !ok {
		return 0, nil
	}
	delete(m.products, id)
	return 1, nil
}

// flakyProductRepo fails lookups for one product ID.
type flakyProductRepo struct {
	*memProductRepo
	failID string
}

func (f *flakyProductRepo) FindByID(ctx context.Context, id string) (*models.Product, error) {
	if id == f.failID {
		return nil, errConnReset
	}
	return f.memProductRepo.FindByID(ctx, id)
}

// --- In-memory cart repository ---

type memCartRepo struct {
	carts    map[string]models.Cart
	pendings map[string]models.PendingOrder
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{
		carts:    make(map[string]models.Cart),
		pendings: make(map[string]models.PendingOrder),
	}
}

func (m *memCartRepo) GetCart(_ context.Context, sessionID string) (*models.Cart, error) {
	cart, ok := m.carts[sessionID]
	if !ok {
		return nil, nil
	}
	copied := cart
	copied.Items = append([]models.CartItem(nil), cart.Items...)
	return &copied, nil
}

func (m *memCartRepo) SaveCart(_ context.Context, cart *models.Cart) error {
	copied := *cart
	copied.Items = append([]models.CartItem(nil), cart.Items...)
	m.carts[cart.SessionID] = copied
	return nil
}

func (m *memCartRepo) DeleteCart(_ context.Context, sessionID string) error {
	delete(m.carts, sessionID)
	return nil
}

func (m *memCartRepo) GetPendingOrder(_ context.Context, sessionID string) (*models.PendingOrder, error) {
	pending, ok := m.pendings[sessionID]
	if !ok {
		return nil, nil
	}
	copied := pending
	return &copied, nil
}

func (m *memCartRepo) SavePendingOrder(_ context.Context, pending *models.PendingOrder) error {
	m.pendings[pending.SessionID] = *pending
	return nil
}

func (m *memCartRepo) DeletePendingOrder(_ context.Context, sessionID string) error {
	delete(m.pendings, sessionID)
	return nil
}

// --- In-memory order repository ---

type memOrderRepo struct {
	orders map[string]models.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]models.Order)}
}

func (m *memOrderRepo) Insert(_ context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	m.orders[order.ID.Hex()] = *order
	return nil
}

func (m *memOrderRepo) FindByID(_ context.Context, id string) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &order, nil
}

func (m *memOrderRepo) FindByEmail(_ context.Context, email string) ([]models.Order, error) {
	var orders []models.Order
	for _, o := range m.orders {
		if o.Customer.Email == email {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (m *memOrderRepo) FindAll(_ context.Context, _, _ int) ([]models.Order, int64, error) {
	orders := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		orders = append(orders, o)
	}
	return orders, int64(len(orders)), nil
}

func (m *memOrderRepo) UpdateStatus(_ context.Context, id string, status models.OrderStatus) error {
	order, ok := m.orders[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	order.Status = status
	m.orders[id] = order
	return nil
}

// flakyOrderRepo fails every lookup.
type flakyOrderRepo struct {
	*memOrderRepo
}

func (f *flakyOrderRepo) FindByID(_ context.Context, _ string) (*models.Order, error) {
	return nil, errConnReset
}

// --- In-memory coupon repository ---

type memCouponRepo struct {
	coupons map[string]models.Coupon
	err     error
}

func newMemCouponRepo() *memCouponRepo {
	return &memCouponRepo{coupons: make(map[string]models.Coupon)}
}

func (m *memCouponRepo) Create(_ context.Context, coupon *models.Coupon) error {
	m.coupons[strings.ToLower(coupon.Code)] = *coupon
	return nil
}

func (m *memCouponRepo) FindByCode(_ context.Context, code string) (*models.Coupon, error) {
	if m.err != nil {
		return nil, m.err
	}
	coupon, ok := m.coupons[strings.ToLower(code)]
	if !ok || !coupon.Active {
		return nil, gorm.ErrRecordNotFound
	}
	return &coupon, nil
}

func (m *memCouponRepo) Deactivate(_ context.Context, code string) error {
	coupon, ok := m.coupons[strings.ToLower(code)]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	coupon.Active = false
	m.coupons[strings.ToLower(code)] = coupon
	return nil
}

func (m *memCouponRepo) FindAll(_ context.Context, _, _ int) ([]models.Coupon, int64, error) {
	coupons := make([]models.Coupon, 0, len(m.coupons))
	for _, c := range m.coupons {
		coupons = append(coupons, c)
	}
	return coupons, int64(len(coupons)), nil
}
