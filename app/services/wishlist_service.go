package services

import (
	"context"
	"errors"

	"github.com/modashop/go-catalog/app/models"
	"github.com/modashop/go-catalog/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WishlistEntry struct {
	Product models.Product        `json:"product"`
	Variant models.ProductVariant `json:"variant"`
	Price   decimal.Decimal       `json:"price"`
	Image   string                `json:"image"`
	Stock   uint                  `json:"stock"`
	Size    string                `json:"size"`
	Color   string                `json:"color"`
}

type WishlistService struct {
	productRepo repositories.ProductRepositoryImpl
	userRepo    repositories.UserRepositoryImpl
}

func NewWishlistService(productRepo repositories.ProductRepositoryImpl, userRepo repositories.UserRepositoryImpl) *WishlistService {
	return &WishlistService{productRepo: productRepo, userRepo: userRepo}
}

// ToggleLike flips the user's membership in the product's liking set and
// returns the new state. Two toggles land back where they started. The like
// row carries a foreign key to users, so a stale session id is rejected
// before the write.
func (s *WishlistService) ToggleLike(ctx context.Context, productID, userID string) (bool, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	liked, err := s.productRepo.IsLiked(ctx, productID, userID)
	if err != nil {
		return false, err
	}
	if liked {
		return false, s.productRepo.RemoveLike(ctx, productID, userID)
	}
	return true, s.productRepo.AddLike(ctx, productID, userID)
}

// Wishlist lists the user's liked products. The shown variant prefers one
// flagged for the main page, then falls back to the first; products without
// variants are skipped.
func (s *WishlistService) Wishlist(ctx context.Context, userID string) ([]WishlistEntry, error) {
	products, err := s.productRepo.GetLiked(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]WishlistEntry, 0, len(products))
	for i := range products {
		product := &products[i]
		variant := pickWishlistVariant(product.Variants)
		if variant == nil {
			continue
		}
		entries = append(entries, WishlistEntry{
			Product: *product,
			Variant: *variant,
			Price:   variant.Price,
			Image:   variant.Image,
			Stock:   variant.Stock,
			Size:    variant.Size.Label,
			Color:   variant.Color.Name,
		})
	}
	return entries, nil
}

func pickWishlistVariant(variants []models.ProductVariant) *models.ProductVariant {
	for i := range variants {
		if variants[i].ShowInMainPage {
			return &variants[i]
		}
	}
	if len(variants) > 0 {
		return &variants[0]
	}
	return nil
}
