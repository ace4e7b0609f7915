package services

import (
	"context"
	"time"

	"github.com/modashop/go-catalog/app/models"
	"github.com/modashop/go-catalog/app/repositories"
	"github.com/modashop/go-catalog/app/utils/calc"
	"github.com/shopspring/decimal"
)

// PriceQuote is the resolved price of one variant at one instant.
type PriceQuote struct {
	OriginalPrice   decimal.Decimal `json:"original_price"`
	FinalPrice      decimal.Decimal `json:"final_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountEnd     *time.Time      `json:"discount_end,omitempty"`
	HasDiscount     bool            `json:"has_discount"`
}

// PricingService resolves the single applicable discount for a variant and
// computes its final price. Resolution itself is pure; the service only adds
// the candidate fetch.
type PricingService struct {
	discountRepo repositories.DiscountRepositoryImpl
}

func NewPricingService(discountRepo repositories.DiscountRepositoryImpl) *PricingService {
	return &PricingService{discountRepo: discountRepo}
}

// ResolveDiscount picks the discount that wins for the given scope at the
// given instant. Most specific wins: variant over product over category.
// Within one level the candidate with the lowest id wins; amounts never break
// ties. Candidates that are inactive or outside their window are skipped.
// Returns nil when nothing applies.
func ResolveDiscount(candidates []models.Discount, at time.Time, scope repositories.DiscountScope) *models.Discount {
	var byVariant, byProduct, byCategory *models.Discount

	for i := range candidates {
		d := &candidates[i]
		if !d.IsValidAt(at) {
			continue
		}
		switch {
		case d.VariantID != nil && scope.VariantID != "" && *d.VariantID == scope.VariantID:
			if byVariant == nil || d.ID < byVariant.ID {
				byVariant = d
			}
		case d.ProductID != nil && scope.ProductID != "" && *d.ProductID == scope.ProductID:
			if byProduct == nil || d.ID < byProduct.ID {
				byProduct = d
			}
		case d.CategoryID != nil && scope.CategoryID != "" && *d.CategoryID == scope.CategoryID:
			if byCategory == nil || d.ID < byCategory.ID {
				byCategory = d
			}
		}
	}

	if byVariant != nil {
		return byVariant
	}
	if byProduct != nil {
		return byProduct
	}
	return byCategory
}

// ApplyDiscount computes price - price*amount/100. A nil discount, or one not
// valid at the instant, leaves the price unchanged.
func ApplyDiscount(d *models.Discount, price decimal.Decimal, at time.Time) decimal.Decimal {
	if d == nil || !d.IsValidAt(at) {
		return price
	}
	return calc.DiscountedPrice(price, d.Amount)
}

// QuoteVariant resolves and applies the discount for one variant. The caller
// supplies `at` so every quote inside one assembly shares a timestamp and a
// borderline discount cannot flip validity mid-response.
func (s *PricingService) QuoteVariant(ctx context.Context, at time.Time, variant *models.ProductVariant, product *models.Product) (PriceQuote, error) {
	scope := repositories.DiscountScope{
		VariantID: variant.ID,
		ProductID: variant.ProductID,
	}
	if product != nil && product.CategoryID != nil {
		scope.CategoryID = *product.CategoryID
	}

	candidates, err := s.discountRepo.GetCandidates(ctx, scope)
	if err != nil {
		return PriceQuote{}, err
	}

	return QuoteFromCandidates(candidates, at, scope, variant.Price), nil
}

// QuoteFromCandidates is the pure tail of QuoteVariant, split out so listing
// assemblers and tests can price without a store round-trip.
func QuoteFromCandidates(candidates []models.Discount, at time.Time, scope repositories.DiscountScope, price decimal.Decimal) PriceQuote {
	quote := PriceQuote{
		OriginalPrice:   price,
		FinalPrice:      price,
		DiscountPercent: decimal.Zero,
	}

	discount := ResolveDiscount(candidates, at, scope)
	if discount == nil {
		return quote
	}

	quote.FinalPrice = ApplyDiscount(discount, price, at)
	quote.DiscountPercent = discount.Amount
	quote.DiscountEnd = discount.EndDate
	quote.HasDiscount = true
	return quote
}
