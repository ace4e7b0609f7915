package repositories

import (
	"context"
	"errors"

	"github.com/modashop/go-catalog/app/models"
	"gorm.io/gorm"
)

// SiteRepositoryImpl reads singleton-like site content. "Current" always
// means the row with the highest id, not whichever row was inserted last.
type SiteRepositoryImpl interface {
	CurrentContactInfo(ctx context.Context) (*models.ContactInfo, error)
	CurrentAboutPage(ctx context.Context) (*models.AboutPage, error)
	CurrentSocialLinks(ctx context.Context) (*models.SocialLinks, error)
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error
}

type siteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) SiteRepositoryImpl {
	return &siteRepository{db}
}

func (r *siteRepository) CurrentContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	var info models.ContactInfo
	err := r.db.WithContext(ctx).Order("id DESC").First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *siteRepository) CurrentAboutPage(ctx context.Context) (*models.AboutPage, error) {
	var about models.AboutPage
	err := r.db.WithContext(ctx).Order("id DESC").First(&about).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &about, nil
}

func (r *siteRepository) CurrentSocialLinks(ctx context.Context) (*models.SocialLinks, error) {
	var links models.SocialLinks
	err := r.db.WithContext(ctx).Order("id DESC").First(&links).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &links, nil
}

func (r *siteRepository) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}
