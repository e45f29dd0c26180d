package services

import (
	"context"
	"errors"

	"play-cards-store/models"
	"play-cards-store/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CartService implements the per-session cart operations. A session's cart
// is only ever mutated by one request at a time, so no locking is needed
// beyond what Redis provides per command.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (s *CartService) loadCart(ctx context.Context, sessionID string) (*models.Cart, *ServiceError) {
	cart, err := s.cartRepo.GetCart(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to load cart"}
	}
	if cart == nil {
		cart = &models.Cart{SessionID: sessionID, Items: []models.CartItem{}}
	}
	return cart, nil
}

func (s *CartService) saveCart(ctx context.Context, cart *models.Cart) *ServiceError {
	if err := s.cartRepo.SaveCart(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("session_id", cart.SessionID), zap.Error(err))
		return &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to save cart"}
	}
	return nil
}

// Add appends quantity units of a product to the cart, accumulating onto an
// existing entry. Returns the cart's total item count.
func (s *CartService) Add(ctx context.Context, sessionID, productID string, quantity int) (int, *ServiceError) {
	if quantity < 1 {
		quantity = 1
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, &ServiceError{Kind: KindNotFound, StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to load product", zap.String("product_id", productID), zap.Error(err))
		return 0, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to load product"}
	}

	cart, svcErr := s.loadCart(ctx, sessionID)
	if svcErr != nil {
		return 0, svcErr
	}

	found := false
	for i, item := range cart.Items {
		if item.ProductID == productID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{ProductID: productID, Quantity: quantity})
	}

	if svcErr := s.saveCart(ctx, cart); svcErr != nil {
		return 0, svcErr
	}
	return cart.Count(), nil
}

// Update sets an entry's quantity; zero or negative removes the entry. An
// absent product is a silent no-op.
func (s *CartService) Update(ctx context.Context, sessionID, productID string, quantity int) (int, *ServiceError) {
	cart, svcErr := s.loadCart(ctx, sessionID)
	if svcErr != nil {
		return 0, svcErr
	}

	for i, item := range cart.Items {
		if item.ProductID == productID {
			if quantity <= 0 {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			} else {
				cart.Items[i].Quantity = quantity
			}
			break
		}
	}

	if svcErr := s.saveCart(ctx, cart); svcErr != nil {
		return 0, svcErr
	}
	return cart.Count(), nil
}

// Remove drops an entry from the cart; no-op when absent.
func (s *CartService) Remove(ctx context.Context, sessionID, productID string) (int, *ServiceError) {
	cart, svcErr := s.loadCart(ctx, sessionID)
	if svcErr != nil {
		return 0, svcErr
	}

	newItems := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != productID {
			newItems = append(newItems, item)
		}
	}
	cart.Items = newItems

	if svcErr := s.saveCart(ctx, cart); svcErr != nil {
		return 0, svcErr
	}
	return cart.Count(), nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) *ServiceError {
	if err := s.cartRepo.DeleteCart(ctx, sessionID); err != nil {
		s.logger.Error("Failed to clear cart", zap.String("session_id", sessionID), zap.Error(err))
		return &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to clear cart"}
	}
	return nil
}

// Snapshot resolves every cart entry against the live catalog. Entries
// whose product no longer exists are silently dropped, so a catalog delete
// mid-session never breaks checkout.
func (s *CartService) Snapshot(ctx context.Context, sessionID string) ([]models.SnapshotItem, *ServiceError) {
	cart, svcErr := s.loadCart(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	snapshot := make([]models.SnapshotItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Debug("Dropping cart entry for missing product",
				zap.String("session_id", sessionID),
				zap.String("product_id", item.ProductID),
			)
			continue
		}
		if err != nil {
			s.logger.Error("Failed to resolve cart entry",
				zap.String("session_id", sessionID),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to load cart"}
		}
		snapshot = append(snapshot, models.SnapshotItem{
			Product:   *product,
			Quantity:  item.Quantity,
			LineTotal: product.Price * float64(item.Quantity),
		})
	}
	return snapshot, nil
}
