package services

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/modashop/go-catalog/app/models"
	"github.com/modashop/go-catalog/app/models/migrations"
	"github.com/modashop/go-catalog/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, migrations.AutoMigrate(db), "failed to migrate test database")

	return db
}

func testContext() context.Context {
	return context.Background()
}

// testServices wires the full service graph over one database so assembly
// tests exercise the same composition the router builds.
type testServices struct {
	db       *gorm.DB
	catalog  *CatalogService
	pricing  *PricingService
	search   *SearchService
	reviews  *ReviewService
	wishlist *WishlistService
	blogs    *BlogService
	site     *SiteService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db := setupTestDB(t)
	productRepo := repositories.NewProductRepository(db)
	variantRepo := repositories.NewVariantRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	discountRepo := repositories.NewDiscountRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	searchRepo := repositories.NewSearchRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	siteRepo := repositories.NewSiteRepository(db)
	userRepo := repositories.NewUserRepository(db)

	validate := validator.New()
	pricing := NewPricingService(discountRepo)

	return &testServices{
		db:       db,
		pricing:  pricing,
		catalog:  NewCatalogService(productRepo, variantRepo, categoryRepo, discountRepo, reviewRepo, blogRepo, pricing),
		search:   NewSearchService(productRepo, blogRepo, searchRepo),
		reviews:  NewReviewService(reviewRepo, productRepo, validate),
		wishlist: NewWishlistService(productRepo, userRepo),
		blogs:    NewBlogService(blogRepo, validate),
		site:     NewSiteService(siteRepo, categoryRepo, productRepo, validate),
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{ID: uuid.New().String(), Email: email, FirstName: "Test"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name, slug string) models.Category {
	t.Helper()
	category := models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createSize(t *testing.T, db *gorm.DB, name, label string) models.Size {
	t.Helper()
	size := models.Size{ID: uuid.New().String(), Name: name, Label: label}
	require.NoError(t, db.Create(&size).Error)
	return size
}

func createColor(t *testing.T, db *gorm.DB, name, code string) models.Color {
	t.Helper()
	color := models.Color{ID: uuid.New().String(), Name: name, Code: code}
	require.NoError(t, db.Create(&color).Error)
	return color
}

func createProduct(t *testing.T, db *gorm.DB, name string, categoryID *string) models.Product {
	t.Helper()
	product := models.Product{
		ID:          uuid.New().String(),
		CategoryID:  categoryID,
		Name:        name,
		Description: name + " description",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func createVariant(t *testing.T, db *gorm.DB, productID string, size models.Size, color models.Color, price string, featured bool) models.ProductVariant {
	t.Helper()
	variant := models.ProductVariant{
		ID:             uuid.New().String(),
		ProductID:      productID,
		SizeID:         size.ID,
		ColorID:        color.ID,
		Price:          mustDecimal(t, price),
		Image:          "/images/products/test.jpg",
		Stock:          5,
		ShowInMainPage: featured,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	require.NoError(t, db.Create(&variant).Error)
	return variant
}

func createDiscount(t *testing.T, db *gorm.DB, id string, amount int64, productID, categoryID, variantID *string) models.Discount {
	t.Helper()
	discount := models.Discount{
		ID:         id,
		Name:       "discount " + id,
		Amount:     decimal.NewFromInt(amount),
		Active:     true,
		ProductID:  productID,
		CategoryID: categoryID,
		VariantID:  variantID,
		StartDate:  time.Now().Add(-time.Hour),
		CreatedAt:  time.Now(),
	}
	require.NoError(t, db.Create(&discount).Error)
	return discount
}
