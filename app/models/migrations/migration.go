package migrations

import (
	"github.com/modashop/go-catalog/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MainCategory{},
		&models.Category{},
		&models.Size{},
		&models.Color{},
		&models.Product{},
		&models.ProductVariant{},
		&models.ProductVariantImage{},
		&models.ProductLike{},
		&models.Discount{},
		&models.Review{},
		&models.RecentSearch{},
		&models.BlogCategory{},
		&models.Blog{},
		&models.BlogComment{},
		&models.BlogReply{},
		&models.ContactInfo{},
		&models.ContactMessage{},
		&models.AboutPage{},
		&models.SocialLinks{},
	)
}
