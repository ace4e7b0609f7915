package repositories

import (
	"context"

	"github.com/modashop/go-catalog/app/models"
	"gorm.io/gorm"
)

// DiscountScope identifies the rows a discount resolution considers. Any of
// the three ids may be empty when the context has no value for that level.
type DiscountScope struct {
	VariantID  string
	ProductID  string
	CategoryID string
}

type DiscountRepositoryImpl interface {
	GetCandidates(ctx context.Context, scope DiscountScope) ([]models.Discount, error)
	GetByCategory(ctx context.Context, categoryID string) ([]models.Discount, error)
}

type discountRepository struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) DiscountRepositoryImpl {
	return &discountRepository{db}
}

// GetCandidates fetches every discount targeting any level of the scope,
// ordered by id so the resolver's tie-break stays stable. Validity is not
// checked here; the resolver evaluates it against a single timestamp.
func (r *discountRepository) GetCandidates(ctx context.Context, scope DiscountScope) ([]models.Discount, error) {
	q := r.db.WithContext(ctx).Model(&models.Discount{})

	cond := r.db.Where("1 = 0")
	if scope.VariantID != "" {
		cond = cond.Or("variant_id = ?", scope.VariantID)
	}
	if scope.ProductID != "" {
		cond = cond.Or("product_id = ?", scope.ProductID)
	}
	if scope.CategoryID != "" {
		cond = cond.Or("category_id = ?", scope.CategoryID)
	}

	var discounts []models.Discount
	err := q.Where(cond).Order("id").Find(&discounts).Error
	return discounts, err
}

func (r *discountRepository) GetByCategory(ctx context.Context, categoryID string) ([]models.Discount, error) {
	var discounts []models.Discount
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&discounts).Error
	return discounts, err
}
