package services

import (
	"context"
	"errors"

	"play-cards-store/models"
	"play-cards-store/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ListProductsParams are the catalog browse filters.
type ListProductsParams struct {
	Page      int
	Limit     int
	Category  string
	Rarity    string
	MinPrice  *float64
	MaxPrice  *float64
	SortBy    string
	SortOrder string
}

// ProductService exposes catalog reads plus the admin CRUD operations.
type ProductService struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(repo repository.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

var sortableFields = map[string]bool{
	"created_at": true,
	"price":      true,
	"name":       true,
	"rarity":     true,
}

// ListProducts returns a filtered, sorted, paginated slice of the catalog
// plus the total match count.
func (s *ProductService) ListProducts(ctx context.Context, params ListProductsParams) ([]models.Product, int64, *ServiceError) {
	filter := bson.M{}
	if params.Category != "" {
		filter["category"] = params.Category
	}
	if params.Rarity != "" {
		filter["rarity"] = params.Rarity
	}
	if params.MinPrice != nil || params.MaxPrice != nil {
		price := bson.M{}
		if params.MinPrice != nil {
			price["$gte"] = *params.MinPrice
		}
		if params.MaxPrice != nil {
			price["$lte"] = *params.MaxPrice
		}
		filter["price"] = price
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to count products", zap.Error(err))
		return nil, 0, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to fetch products"}
	}

	sortBy := params.SortBy
	if !sortableFields[sortBy] {
		sortBy = "created_at"
	}
	order := -1
	if params.SortOrder == "asc" {
		order = 1
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetSkip(int64((params.Page - 1) * params.Limit)).
		SetLimit(int64(params.Limit))

	products, err := s.repo.Find(ctx, filter, findOptions)
	if err != nil {
		s.logger.Error("Failed to fetch products", zap.Error(err))
		return nil, 0, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to fetch products"}
	}
	return products, total, nil
}

// GetProduct retrieves a single product by ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &ServiceError{Kind: KindNotFound, StatusCode: 404, Message: "Product not found"}
	}
	if err != nil {
		s.logger.Error("Failed to fetch product", zap.String("product_id", id), zap.Error(err))
		return nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to fetch product"}
	}
	return product, nil
}

// ListFilters returns the distinct categories and rarities for the browse
// filter dropdowns.
func (s *ProductService) ListFilters(ctx context.Context) ([]string, []string, *ServiceError) {
	categories, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch categories", zap.Error(err))
		return nil, nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to fetch filters"}
	}
	rarities, err := s.repo.DistinctRarities(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch rarities", zap.Error(err))
		return nil, nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to fetch filters"}
	}
	return categories, rarities, nil
}

// CreateProduct inserts a new catalog entry.
func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	if req.Price < 0 {
		return nil, &ServiceError{Kind: KindValidationFailure, StatusCode: 400, Message: "Price must be non-negative"}
	}

	product := &models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Rarity:      req.Rarity,
		Image:       req.Image,
		Description: req.Description,
	}
	if err := s.repo.Insert(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to create product"}
	}

	s.logger.Info("Product created", zap.String("product_id", product.ID.Hex()), zap.String("name", product.Name))
	return product, nil
}

// UpdateProduct replaces the editable fields of a catalog entry.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *models.CreateProductRequest) *ServiceError {
	if req.Price < 0 {
		return &ServiceError{Kind: KindValidationFailure, StatusCode: 400, Message: "Price must be non-negative"}
	}

	updates := bson.M{
		"name":        req.Name,
		"price":       req.Price,
		"category":    req.Category,
		"rarity":      req.Rarity,
		"image":       req.Image,
		"description": req.Description,
	}
	matched, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		s.logger.Error("Failed to update product", zap.String("product_id", id), zap.Error(err))
		return &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to update product"}
	}
	if matched == 0 {
		return &ServiceError{Kind: KindNotFound, StatusCode: 404, Message: "Product not found"}
	}
	return nil
}

// DeleteProduct removes a catalog entry. Orders already placed keep their
// snapshotted line items; open carts drop the entry at snapshot time.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) *ServiceError {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete product", zap.String("product_id", id), zap.Error(err))
		return &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to delete product"}
	}
	if deleted == 0 {
		return &ServiceError{Kind: KindNotFound, StatusCode: 404, Message: "Product not found"}
	}
	return nil
}
