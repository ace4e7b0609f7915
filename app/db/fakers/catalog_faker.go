package fakers

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/modashop/go-catalog/app/models"
	"github.com/shopspring/decimal"
)

func UserFaker() *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		Email:     faker.Email(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func MainCategoryFaker(name string) *models.MainCategory {
	return &models.MainCategory{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug.Make(name),
		Icon:      "/images/icons/" + slug.Make(name) + ".svg",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// CategoryFaker builds a category, optionally grouped under a main category.
// Pass nil for a top-level entry.
func CategoryFaker(name string, main *models.MainCategory) *models.Category {
	category := &models.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: faker.Sentence(),
		Image:       "/images/categories/" + slug.Make(name) + ".jpg",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if main != nil {
		category.MainCategoryID = &main.ID
	}
	return category
}

// SizeSet and ColorSet are fixed palettes rather than random data; the
// storefront filter widget expects stable names.
func SizeSet() []models.Size {
	return []models.Size{
		{ID: uuid.New().String(), Name: "Small", Label: "S"},
		{ID: uuid.New().String(), Name: "Medium", Label: "M"},
		{ID: uuid.New().String(), Name: "Large", Label: "L"},
		{ID: uuid.New().String(), Name: "Extra Large", Label: "XL"},
	}
}

func ColorSet() []models.Color {
	return []models.Color{
		{ID: uuid.New().String(), Name: "Black", Code: "#000000"},
		{ID: uuid.New().String(), Name: "White", Code: "#ffffff"},
		{ID: uuid.New().String(), Name: "Red", Code: "#c0392b"},
		{ID: uuid.New().String(), Name: "Blue", Code: "#2980b9"},
	}
}

// DiscountFaker targets exactly one scope level; the other two ids stay nil.
func DiscountFaker(productID, categoryID, variantID *string) *models.Discount {
	now := time.Now()
	end := now.AddDate(0, 1, 0)
	return &models.Discount{
		ID:         uuid.New().String(),
		Name:       faker.Word() + " sale",
		Amount:     decimal.NewFromInt(int64(rand.Intn(40) + 5)),
		Active:     true,
		StartDate:  now.AddDate(0, 0, -1),
		EndDate:    &end,
		ProductID:  productID,
		CategoryID: categoryID,
		VariantID:  variantID,
		CreatedAt:  now,
	}
}

func BlogCategoryFaker(name string) *models.BlogCategory {
	return &models.BlogCategory{
		ID:   uuid.New().String(),
		Name: name,
		Slug: slug.Make(name),
	}
}

func BlogFaker(category *models.BlogCategory) *models.Blog {
	title := faker.Sentence()
	return &models.Blog{
		ID:               uuid.New().String(),
		CategoryID:       &category.ID,
		Title:            title,
		Slug:             slug.Make(title),
		ShortDescription: faker.Sentence(),
		Content:          faker.Paragraph(),
		Image:            "/images/blogs/cover.jpg",
		Author:           faker.Name(),
		IsPublished:      true,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}
