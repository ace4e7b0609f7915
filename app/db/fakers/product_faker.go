package fakers

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/modashop/go-catalog/app/models"
	"github.com/shopspring/decimal"
)

var productImagePaths = []string{
	"/images/products/look-1.jpg",
	"/images/products/look-2.jpg",
	"/images/products/look-3.jpg",
}

// ProductFaker builds a product with one variant per size/color pair drawn
// from the given palettes. Variant prices vary around a shared base so the
// price filter has something to bite on.
func ProductFaker(category *models.Category, sizes []models.Size, colors []models.Color) *models.Product {
	name := faker.Word() + " " + faker.Word()
	productID := uuid.New().String()

	basePrice := fakePrice()

	numVariants := rand.Intn(4) + 1
	variants := make([]models.ProductVariant, 0, numVariants)
	for i := 0; i < numVariants; i++ {
		size := sizes[rand.Intn(len(sizes))]
		color := colors[rand.Intn(len(colors))]
		if hasVariant(variants, size.ID, color.ID) {
			continue
		}

		img := productImagePaths[rand.Intn(len(productImagePaths))]
		variantID := uuid.New().String()
		variants = append(variants, models.ProductVariant{
			ID:             variantID,
			ProductID:      productID,
			SizeID:         size.ID,
			ColorID:        color.ID,
			Price:          decimal.NewFromFloat(precision(basePrice+rand.Float64()*10, 2)),
			Image:          img,
			ImageHover:     img,
			Stock:          uint(rand.Intn(20) + 1),
			ShowInMainPage: i == 0 && rand.Intn(3) == 0,
			Images: []models.ProductVariantImage{
				{
					ID:        uuid.New().String(),
					VariantID: variantID,
					Image:     img,
					AltText:   name,
				},
			},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
	}

	categoryID := category.ID
	return &models.Product{
		ID:          productID,
		CategoryID:  &categoryID,
		Name:        name,
		Description: faker.Paragraph(),
		Brand:       faker.LastName(),
		Variants:    variants,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func hasVariant(variants []models.ProductVariant, sizeID, colorID string) bool {
	for _, v := range variants {
		if v.SizeID == sizeID && v.ColorID == colorID {
			return true
		}
	}
	return false
}

func fakePrice() float64 {
	return precision(10+rand.Float64()*190, 2)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a
}
