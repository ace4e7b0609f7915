package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/modashop/go-catalog/app/models"
	"github.com/modashop/go-catalog/app/models/migrations"
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

func seedSize(t *testing.T, db *gorm.DB, name, label string) models.Size {
	t.Helper()
	size := models.Size{ID: uuid.New().String(), Name: name, Label: label}
	require.NoError(t, db.Create(&size).Error)
	return size
}

func seedColor(t *testing.T, db *gorm.DB, name, code string) models.Color {
	t.Helper()
	color := models.Color{ID: uuid.New().String(), Name: name, Code: code}
	require.NoError(t, db.Create(&color).Error)
	return color
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) models.Category {
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

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		ID:        uuid.New().String(),
		Email:     email,
		FirstName: "Test",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, categoryID *string) models.Product {
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

func seedVariant(t *testing.T, db *gorm.DB, productID string, size models.Size, color models.Color, price string) models.ProductVariant {
	t.Helper()
	amount, err := decimal.NewFromString(price)
	require.NoError(t, err)
	variant := models.ProductVariant{
		ID:        uuid.New().String(),
		ProductID: productID,
		SizeID:    size.ID,
		ColorID:   color.ID,
		Price:     amount,
		Image:     "/images/products/test.jpg",
		Stock:     5,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&variant).Error)
	return variant
}

func priceBound(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return &d
}
