package seeders

import (
	"math/rand"

	"github.com/modashop/go-catalog/app/db/fakers"
	"github.com/modashop/go-catalog/app/models"
	"gorm.io/gorm"
)

const productsPerCategory = 4

// DBSeed fills an empty database with a browsable storefront: category tree,
// size/color palettes, products with variants, a few discounts and some
// published blogs. Not idempotent; run against a fresh schema.
func DBSeed(db *gorm.DB) error {
	sizes := fakers.SizeSet()
	colors := fakers.ColorSet()
	if err := db.Create(&sizes).Error; err != nil {
		return err
	}
	if err := db.Create(&colors).Error; err != nil {
		return err
	}

	for i := 0; i < 3; i++ {
		user := fakers.UserFaker()
		if err := db.Create(user).Error; err != nil {
			return err
		}
	}

	women := fakers.MainCategoryFaker("Women")
	men := fakers.MainCategoryFaker("Men")
	if err := db.Create(&[]*models.MainCategory{women, men}).Error; err != nil {
		return err
	}

	categories := []*models.Category{
		fakers.CategoryFaker("Dresses", women),
		fakers.CategoryFaker("Tops", women),
		fakers.CategoryFaker("Shirts", men),
		fakers.CategoryFaker("Trousers", men),
		fakers.CategoryFaker("Accessories", nil),
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	for _, category := range categories {
		for i := 0; i < productsPerCategory; i++ {
			product := fakers.ProductFaker(category, sizes, colors)
			if err := db.Create(product).Error; err != nil {
				return err
			}

			if rand.Intn(4) == 0 {
				discount := fakers.DiscountFaker(&product.ID, nil, nil)
				if err := db.Create(discount).Error; err != nil {
					return err
				}
			}
		}

		if rand.Intn(3) == 0 {
			discount := fakers.DiscountFaker(nil, &category.ID, nil)
			if err := db.Create(discount).Error; err != nil {
				return err
			}
		}
	}

	blogCategory := fakers.BlogCategoryFaker("Lookbook")
	if err := db.Create(blogCategory).Error; err != nil {
		return err
	}
	for i := 0; i < 5; i++ {
		if err := db.Create(fakers.BlogFaker(blogCategory)).Error; err != nil {
			return err
		}
	}

	return nil
}
