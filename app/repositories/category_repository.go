package repositories

import (
	"context"

	"github.com/modashop/go-catalog/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetTopLevel(ctx context.Context) ([]models.Category, error)
	GetFirst(ctx context.Context, limit int) ([]models.Category, error)
	GetMainCategories(ctx context.Context) ([]models.MainCategory, error)
	GetAllSizes(ctx context.Context) ([]models.Size, error)
	GetAllColors(ctx context.Context) ([]models.Color, error)
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetTopLevel(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("main_category_id IS NULL").
		Order("name").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) GetFirst(ctx context.Context, limit int) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("id").Limit(limit).Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) GetMainCategories(ctx context.Context) ([]models.MainCategory, error) {
	var mains []models.MainCategory
	err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("categories.name") }).
		Order("name").
		Find(&mains).Error
	return mains, err
}

func (r *categoryRepository) GetAllSizes(ctx context.Context) ([]models.Size, error) {
	var sizes []models.Size
	err := r.db.WithContext(ctx).Order("label").Find(&sizes).Error
	return sizes, err
}

func (r *categoryRepository) GetAllColors(ctx context.Context) ([]models.Color, error) {
	var colors []models.Color
	err := r.db.WithContext(ctx).Order("name").Find(&colors).Error
	return colors, err
}

// Delete severs products from the category instead of deleting them. Not
// every store enforces ON DELETE SET NULL on this link, so the unlink runs
// explicitly in the same transaction.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, "id = ?", id).Error
	})
}
