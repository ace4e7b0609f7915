package repositories

import (
	"context"
	"strings"

	"github.com/modashop/go-catalog/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FilterConstraints is the explicit constraint set for catalog filtering.
// Empty slices and nil bounds are no-ops. ScopeCategoryID pre-scopes the base
// set to one category before the other predicates apply (category pages).
type FilterConstraints struct {
	CategoryIDs     []string
	SizeIDs         []string
	ColorIDs        []string
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal
	ScopeCategoryID *string
}

// Empty reports whether the constraints narrow anything at all.
func (c FilterConstraints) Empty() bool {
	return len(c.CategoryIDs) == 0 && len(c.SizeIDs) == 0 && len(c.ColorIDs) == 0 &&
		c.MinPrice == nil && c.MaxPrice == nil && c.ScopeCategoryID == nil
}

type ProductRepositoryImpl interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Filter(ctx context.Context, constraints FilterConstraints) ([]models.Product, error)
	Search(ctx context.Context, keyword string, limit int) ([]models.Product, error)
	GetRelated(ctx context.Context, categoryID, excludeProductID string) ([]models.Product, error)
	GetLiked(ctx context.Context, userID string) ([]models.Product, error)
	IsLiked(ctx context.Context, productID, userID string) (bool, error)
	AddLike(ctx context.Context, productID, userID string) error
	RemoveLike(ctx context.Context, productID, userID string) error
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) preloadVariants(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("product_variants.created_at, product_variants.id") }).
		Preload("Variants.Size").
		Preload("Variants.Color").
		Preload("Variants.Images")
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.preloadVariants(p.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Filter builds the whole constraint query in one place so the composition
// order stays auditable. Price bounds are inclusive and must hold on a single
// variant; size and color use existence semantics, so a product matches when
// any of its variants does. The result set is distinct by product.
func (p *productRepository) Filter(ctx context.Context, c FilterConstraints) ([]models.Product, error) {
	q := p.db.WithContext(ctx).Model(&models.Product{})

	if c.ScopeCategoryID != nil {
		q = q.Where("products.category_id = ?", *c.ScopeCategoryID)
	}

	switch {
	case c.MinPrice != nil && c.MaxPrice != nil:
		q = q.Where(
			"EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = products.id AND pv.price >= ? AND pv.price <= ?)",
			*c.MinPrice, *c.MaxPrice)
	case c.MinPrice != nil:
		q = q.Where(
			"EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = products.id AND pv.price >= ?)",
			*c.MinPrice)
	case c.MaxPrice != nil:
		q = q.Where(
			"EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = products.id AND pv.price <= ?)",
			*c.MaxPrice)
	}

	if len(c.CategoryIDs) > 0 {
		q = q.Where("products.category_id IN ?", c.CategoryIDs)
	}
	if len(c.SizeIDs) > 0 {
		q = q.Where(
			"EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = products.id AND pv.size_id IN ?)",
			c.SizeIDs)
	}
	if len(c.ColorIDs) > 0 {
		q = q.Where(
			"EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = products.id AND pv.color_id IN ?)",
			c.ColorIDs)
	}

	var products []models.Product
	err := p.preloadVariants(q).
		Order("products.created_at, products.id").
		Find(&products).Error
	return products, err
}

func (p *productRepository) Search(ctx context.Context, keyword string, limit int) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + strings.ToLower(keyword) + "%"
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetRelated(ctx context.Context, categoryID, excludeProductID string) ([]models.Product, error) {
	var products []models.Product
	err := p.preloadVariants(p.db.WithContext(ctx)).
		Where("category_id = ? AND id <> ?", categoryID, excludeProductID).
		Order("products.created_at, products.id").
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetLiked(ctx context.Context, userID string) ([]models.Product, error) {
	var products []models.Product
	err := p.preloadVariants(p.db.WithContext(ctx)).
		Joins("JOIN product_likes pl ON pl.product_id = products.id").
		Where("pl.user_id = ?", userID).
		Find(&products).Error
	return products, err
}

func (p *productRepository) IsLiked(ctx context.Context, productID, userID string) (bool, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&models.ProductLike{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&count).Error
	return count > 0, err
}

func (p *productRepository) AddLike(ctx context.Context, productID, userID string) error {
	return p.db.WithContext(ctx).Create(&models.ProductLike{ProductID: productID, UserID: userID}).Error
}

func (p *productRepository) RemoveLike(ctx context.Context, productID, userID string) error {
	return p.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Delete(&models.ProductLike{}).Error
}

func (p *productRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
