package repositories

import (
	"context"

	"github.com/modashop/go-catalog/app/models"
	"gorm.io/gorm"
)

type VariantRepositoryImpl interface {
	GetFeatured(ctx context.Context) ([]models.ProductVariant, error)
	GetByProduct(ctx context.Context, productID string) ([]models.ProductVariant, error)
}

type variantRepository struct {
	db *gorm.DB
}

func NewVariantRepository(db *gorm.DB) VariantRepositoryImpl {
	return &variantRepository{db}
}

// GetFeatured returns the variants flagged for the main page, one listing
// entry each, with their owning product preloaded.
func (r *variantRepository) GetFeatured(ctx context.Context) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		Preload("Size").
		Preload("Color").
		Where("show_in_main_page = ?", true).
		Order("created_at, id").
		Find(&variants).Error
	return variants, err
}

func (r *variantRepository) GetByProduct(ctx context.Context, productID string) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.WithContext(ctx).
		Preload("Size").
		Preload("Color").
		Preload("Images").
		Where("product_id = ?", productID).
		Order("created_at, id").
		Find(&variants).Error
	return variants, err
}
