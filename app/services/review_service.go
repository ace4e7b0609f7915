package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/modashop/go-catalog/app/models"
	"github.com/modashop/go-catalog/app/repositories"
	"gorm.io/gorm"
)

type ReviewForm struct {
	Name   string `json:"name" validate:"required,max=100"`
	Detail string `json:"detail" validate:"required"`
	Rating uint   `json:"rating" validate:"omitempty,min=1,max=5"`
	Image  string `json:"image" validate:"omitempty,max=255"`
}

type ReviewService struct {
	reviewRepo  repositories.ReviewRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	validate    *validator.Validate
}

func NewReviewService(
	reviewRepo repositories.ReviewRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	validate *validator.Validate,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		validate:    validate,
	}
}

// Submit appends a review to a product. Reviews are never updated afterwards.
// A missing rating defaults to five stars.
func (s *ReviewService) Submit(ctx context.Context, productID string, form ReviewForm) (*models.Review, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.validate.Struct(&form); err != nil {
		return nil, validationFields(err)
	}

	rating := form.Rating
	if rating == 0 {
		rating = 5
	}

	review := &models.Review{
		ID:        uuid.New().String(),
		ProductID: productID,
		Name:      form.Name,
		Image:     form.Image,
		Detail:    form.Detail,
		Rating:    rating,
		CreatedAt: time.Now(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// validationFields flattens validator errors into field messages.
func validationFields(err error) error {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return newValidationError(fields)
	}
	return err
}
