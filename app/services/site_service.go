package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/modashop/go-catalog/app/models"
	"github.com/modashop/go-catalog/app/repositories"
)

type ContactMessageForm struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// BaseContext is the data every page shares: navigation groups, footer
// content and the viewer's wishlist state.
type BaseContext struct {
	MainCategories   []models.MainCategory `json:"main_categories"`
	SingleCategories []models.Category     `json:"single_categories"`
	FirstCategories  []models.Category     `json:"first_categories"`
	SocialLinks      *models.SocialLinks   `json:"social_links"`
	ContactInfo      *models.ContactInfo   `json:"contact_info"`
	AboutPage        *models.AboutPage     `json:"about_page"`
	LikedProducts    []models.Product      `json:"liked_products"`
	LikedCount       int                   `json:"liked_count"`
}

type SiteService struct {
	siteRepo     repositories.SiteRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	validate     *validator.Validate
}

func NewSiteService(
	siteRepo repositories.SiteRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	validate *validator.Validate,
) *SiteService {
	return &SiteService{
		siteRepo:     siteRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		validate:     validate,
	}
}

func (s *SiteService) ContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	return s.siteRepo.CurrentContactInfo(ctx)
}

func (s *SiteService) AboutPage(ctx context.Context) (*models.AboutPage, error) {
	return s.siteRepo.CurrentAboutPage(ctx)
}

func (s *SiteService) SocialLinks(ctx context.Context) (*models.SocialLinks, error) {
	return s.siteRepo.CurrentSocialLinks(ctx)
}

// SubmitContactMessage stores a visitor message. A phone number that does not
// parse as digits is treated as absent rather than rejected.
func (s *SiteService) SubmitContactMessage(ctx context.Context, form ContactMessageForm) (*models.ContactMessage, error) {
	if err := s.validate.Struct(&form); err != nil {
		return nil, validationFields(err)
	}

	var phone *int64
	if p, err := strconv.ParseInt(strings.TrimSpace(form.Phone), 10, 64); err == nil {
		phone = &p
	}

	msg := &models.ContactMessage{
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.TrimSpace(form.Email),
		Phone:     phone,
		Text:      strings.TrimSpace(form.Message),
		CreatedAt: time.Now(),
	}
	if err := s.siteRepo.CreateContactMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

const firstCategoriesCount = 6

// BaseContext assembles the shared page data. userID may be empty for
// anonymous visitors, which yields an empty wishlist.
func (s *SiteService) BaseContext(ctx context.Context, userID string) (*BaseContext, error) {
	mains, err := s.categoryRepo.GetMainCategories(ctx)
	if err != nil {
		return nil, err
	}
	singles, err := s.categoryRepo.GetTopLevel(ctx)
	if err != nil {
		return nil, err
	}
	first, err := s.categoryRepo.GetFirst(ctx, firstCategoriesCount)
	if err != nil {
		return nil, err
	}
	links, err := s.siteRepo.CurrentSocialLinks(ctx)
	if err != nil {
		return nil, err
	}
	contact, err := s.siteRepo.CurrentContactInfo(ctx)
	if err != nil {
		return nil, err
	}
	about, err := s.siteRepo.CurrentAboutPage(ctx)
	if err != nil {
		return nil, err
	}

	base := &BaseContext{
		MainCategories:   mains,
		SingleCategories: singles,
		FirstCategories:  first,
		SocialLinks:      links,
		ContactInfo:      contact,
		AboutPage:        about,
		LikedProducts:    []models.Product{},
	}

	if userID != "" {
		liked, err := s.productRepo.GetLiked(ctx, userID)
		if err != nil {
			return nil, err
		}
		base.LikedProducts = liked
		base.LikedCount = len(liked)
	}

	return base, nil
}
