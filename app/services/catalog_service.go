package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/modashop/go-catalog/app/models"
	"github.com/modashop/go-catalog/app/repositories"
	"gorm.io/gorm"
)

// ColorOption is one visual swatch on a listing card. There is one entry per
// variant rather than per distinct color: two variants entered with the same
// color name may carry different images, and collapsing them would hide one.
type ColorOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	Image      string `json:"image"`
	ImageHover string `json:"image_hover"`
}

// VariantGroup is a product's variants folded into display shape.
type VariantGroup struct {
	Colors  []ColorOption          `json:"colors"`
	Sizes   []string               `json:"sizes"`
	Default *models.ProductVariant `json:"default_variant"`
}

// ListingItem is one product card on the home, shop or category surfaces.
type ListingItem struct {
	Product models.Product         `json:"product"`
	Variant models.ProductVariant  `json:"variant"`
	Colors  []ColorOption          `json:"colors"`
	Sizes   []string               `json:"sizes"`
	Price   PriceQuote             `json:"price"`
}

type GalleryImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type CategorySummary struct {
	Category        models.Category `json:"category"`
	DiscountPercent string          `json:"discount_percent"`
	ProductCount    int64           `json:"product_count"`
}

type HomePage struct {
	Categories       []CategorySummary     `json:"categories"`
	MainCategories   []models.MainCategory `json:"main_categories"`
	SingleCategories []models.Category     `json:"single_categories"`
	Featured         []ListingItem         `json:"featured"`
	Blogs            []models.Blog         `json:"blogs"`
}

type ShopListing struct {
	Items      []ListingItem     `json:"items"`
	Categories []models.Category `json:"categories"`
	Sizes      []models.Size     `json:"sizes"`
	Colors     []models.Color    `json:"colors"`
}

type CategoryListing struct {
	Category models.Category `json:"category"`
	Items    []ListingItem   `json:"items"`
	Sizes    []models.Size   `json:"sizes"`
	Colors   []models.Color  `json:"colors"`
}

type ProductDetail struct {
	Product         models.Product         `json:"product"`
	Variant         models.ProductVariant  `json:"variant"`
	Colors          []models.Color         `json:"colors"`
	Sizes           []models.Size          `json:"sizes"`
	Gallery         []GalleryImage         `json:"gallery"`
	Price           PriceQuote             `json:"price"`
	SelectedColorID string                 `json:"selected_color_id,omitempty"`
	SelectedSizeID  string                 `json:"selected_size_id,omitempty"`
	Reviews         []models.Review        `json:"reviews"`
	Related         []ListingItem          `json:"related_products"`
}

// CatalogService composes the filter engine, the variant aggregator and the
// discount resolver into the page-level assemblies.
type CatalogService struct {
	productRepo  repositories.ProductRepositoryImpl
	variantRepo  repositories.VariantRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	discountRepo repositories.DiscountRepositoryImpl
	reviewRepo   repositories.ReviewRepositoryImpl
	blogRepo     repositories.BlogRepositoryImpl
	pricing      *PricingService
}

func NewCatalogService(
	productRepo repositories.ProductRepositoryImpl,
	variantRepo repositories.VariantRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	discountRepo repositories.DiscountRepositoryImpl,
	reviewRepo repositories.ReviewRepositoryImpl,
	blogRepo repositories.BlogRepositoryImpl,
	pricing *PricingService,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		categoryRepo: categoryRepo,
		discountRepo: discountRepo,
		reviewRepo:   reviewRepo,
		blogRepo:     blogRepo,
		pricing:      pricing,
	}
}

// AggregateVariants folds a product's variants into display shape. The second
// return is false for products with no variants; those have no price and no
// image and are excluded from every listing.
func AggregateVariants(product *models.Product) (VariantGroup, bool) {
	if len(product.Variants) == 0 {
		return VariantGroup{}, false
	}

	group := VariantGroup{
		Colors:  make([]ColorOption, 0, len(product.Variants)),
		Default: &product.Variants[0],
	}

	seenSizes := make(map[string]struct{})
	for i := range product.Variants {
		v := &product.Variants[i]
		group.Colors = append(group.Colors, ColorOption{
			ID:         v.ColorID,
			Name:       v.Color.Name,
			Code:       v.Color.Code,
			Image:      v.Image,
			ImageHover: v.ImageHover,
		})
		if _, ok := seenSizes[v.Size.Label]; !ok {
			seenSizes[v.Size.Label] = struct{}{}
			group.Sizes = append(group.Sizes, v.Size.Label)
		}
	}

	return group, true
}

// SelectVariant picks the representative variant for an explicit color/size
// choice. Fallback chain: exact color+size match, color-only, size-only,
// first variant.
func SelectVariant(variants []models.ProductVariant, colorID, sizeID string) *models.ProductVariant {
	if len(variants) == 0 {
		return nil
	}
	if colorID != "" && sizeID != "" {
		for i := range variants {
			if variants[i].ColorID == colorID && variants[i].SizeID == sizeID {
				return &variants[i]
			}
		}
	}
	if colorID != "" {
		for i := range variants {
			if variants[i].ColorID == colorID {
				return &variants[i]
			}
		}
	}
	if sizeID != "" {
		for i := range variants {
			if variants[i].SizeID == sizeID {
				return &variants[i]
			}
		}
	}
	return &variants[0]
}

// BuildGallery lists the representative variant's images for the detail page.
// Alt text falls back to the product name when an image carries none.
func BuildGallery(product *models.Product, variant *models.ProductVariant) []GalleryImage {
	if variant == nil {
		return nil
	}
	var gallery []GalleryImage
	if variant.Image != "" {
		gallery = append(gallery, GalleryImage{URL: variant.Image, Alt: product.Name + " main image"})
	}
	if variant.ImageHover != "" {
		gallery = append(gallery, GalleryImage{URL: variant.ImageHover, Alt: product.Name + " hover image"})
	}
	for _, img := range variant.Images {
		alt := img.AltText
		if alt == "" {
			alt = product.Name
		}
		gallery = append(gallery, GalleryImage{URL: img.Image, Alt: alt})
	}
	return gallery
}

func (s *CatalogService) quote(ctx context.Context, at time.Time, variant *models.ProductVariant, product *models.Product) (PriceQuote, error) {
	return s.pricing.QuoteVariant(ctx, at, variant, product)
}

// HomePage assembles the landing surface: category summaries, navigation
// groups, featured variant cards and the published blog roll.
func (s *CatalogService) HomePage(ctx context.Context) (*HomePage, error) {
	now := time.Now()

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]CategorySummary, 0, len(categories))
	for _, cat := range categories {
		discounts, err := s.discountRepo.GetByCategory(ctx, cat.ID)
		if err != nil {
			return nil, err
		}
		percent := "0"
		for i := range discounts {
			if discounts[i].IsValidAt(now) {
				percent = discounts[i].Amount.String()
				break
			}
		}
		count, err := s.productRepo.CountByCategory(ctx, cat.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, CategorySummary{
			Category:        cat,
			DiscountPercent: percent,
			ProductCount:    count,
		})
	}

	mains, err := s.categoryRepo.GetMainCategories(ctx)
	if err != nil {
		return nil, err
	}
	singles, err := s.categoryRepo.GetTopLevel(ctx)
	if err != nil {
		return nil, err
	}

	featuredVariants, err := s.variantRepo.GetFeatured(ctx)
	if err != nil {
		return nil, err
	}

	// One card per flagged variant; a product flagged twice appears twice.
	featured := make([]ListingItem, 0, len(featuredVariants))
	for i := range featuredVariants {
		fv := &featuredVariants[i]
		if fv.Product == nil {
			continue
		}
		product, err := s.productRepo.GetByID(ctx, fv.ProductID)
		if err != nil {
			return nil, err
		}
		group, ok := AggregateVariants(product)
		if !ok {
			continue
		}
		quote, err := s.quote(ctx, now, fv, product)
		if err != nil {
			return nil, err
		}
		featured = append(featured, ListingItem{
			Product: *product,
			Variant: *fv,
			Colors:  group.Colors,
			Sizes:   group.Sizes,
			Price:   quote,
		})
	}

	blogs, err := s.blogRepo.GetPublished(ctx)
	if err != nil {
		return nil, err
	}

	return &HomePage{
		Categories:       summaries,
		MainCategories:   mains,
		SingleCategories: singles,
		Featured:         featured,
		Blogs:            blogs,
	}, nil
}

// ShopListing filters the full catalog and builds a priced card per product.
// Listing surfaces price uniformly: shop cards resolve discounts the same way
// category cards do.
func (s *CatalogService) ShopListing(ctx context.Context, constraints repositories.FilterConstraints) (*ShopListing, error) {
	now := time.Now()

	products, err := s.productRepo.Filter(ctx, constraints)
	if err != nil {
		return nil, err
	}

	items, err := s.buildListingItems(ctx, now, products)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sizes, err := s.categoryRepo.GetAllSizes(ctx)
	if err != nil {
		return nil, err
	}
	colors, err := s.categoryRepo.GetAllColors(ctx)
	if err != nil {
		return nil, err
	}

	return &ShopListing{
		Items:      items,
		Categories: categories,
		Sizes:      sizes,
		Colors:     colors,
	}, nil
}

// CategoryListing is the shop listing pre-scoped to one category.
func (s *CatalogService) CategoryListing(ctx context.Context, slug string, constraints repositories.FilterConstraints) (*CategoryListing, error) {
	now := time.Now()

	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	constraints.ScopeCategoryID = &category.ID
	products, err := s.productRepo.Filter(ctx, constraints)
	if err != nil {
		return nil, err
	}

	items, err := s.buildListingItems(ctx, now, products)
	if err != nil {
		return nil, err
	}

	sizes, err := s.categoryRepo.GetAllSizes(ctx)
	if err != nil {
		return nil, err
	}
	colors, err := s.categoryRepo.GetAllColors(ctx)
	if err != nil {
		return nil, err
	}

	return &CategoryListing{
		Category: *category,
		Items:    items,
		Sizes:    sizes,
		Colors:   colors,
	}, nil
}

func (s *CatalogService) buildListingItems(ctx context.Context, at time.Time, products []models.Product) ([]ListingItem, error) {
	items := make([]ListingItem, 0, len(products))
	for i := range products {
		product := &products[i]
		group, ok := AggregateVariants(product)
		if !ok {
			continue
		}
		quote, err := s.quote(ctx, at, group.Default, product)
		if err != nil {
			return nil, err
		}
		items = append(items, ListingItem{
			Product: *product,
			Variant: *group.Default,
			Colors:  group.Colors,
			Sizes:   group.Sizes,
			Price:   quote,
		})
	}
	return items, nil
}

// ProductDetail assembles the detail page around the representative variant
// picked from the submitted color/size choice.
func (s *CatalogService) ProductDetail(ctx context.Context, productID, colorID, sizeID string) (*ProductDetail, error) {
	now := time.Now()

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	variant := SelectVariant(product.Variants, colorID, sizeID)
	if variant == nil {
		return nil, ErrNotFound
	}

	quote, err := s.quote(ctx, now, variant, product)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.GetByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	related, err := s.relatedProducts(ctx, now, product)
	if err != nil {
		return nil, err
	}

	detail := &ProductDetail{
		Product:         *product,
		Variant:         *variant,
		Colors:          distinctColors(product.Variants),
		Sizes:           sortedSizes(product.Variants),
		Gallery:         BuildGallery(product, variant),
		Price:           quote,
		SelectedColorID: variant.ColorID,
		SelectedSizeID:  variant.SizeID,
		Reviews:         reviews,
		Related:         related,
	}
	return detail, nil
}

// relatedProducts lists every other product in the same category, one card
// each, first variant as representative, each priced independently.
func (s *CatalogService) relatedProducts(ctx context.Context, at time.Time, product *models.Product) ([]ListingItem, error) {
	if product.CategoryID == nil {
		return nil, nil
	}
	others, err := s.productRepo.GetRelated(ctx, *product.CategoryID, product.ID)
	if err != nil {
		return nil, err
	}
	return s.buildListingItems(ctx, at, others)
}

// distinctColors dedups by color identity for the detail swatch row, unlike
// listing cards which keep one entry per variant.
func distinctColors(variants []models.ProductVariant) []models.Color {
	seen := make(map[string]struct{})
	var colors []models.Color
	for i := range variants {
		if _, ok := seen[variants[i].ColorID]; ok {
			continue
		}
		seen[variants[i].ColorID] = struct{}{}
		colors = append(colors, variants[i].Color)
	}
	return colors
}

func sortedSizes(variants []models.ProductVariant) []models.Size {
	seen := make(map[string]struct{})
	var sizes []models.Size
	for i := range variants {
		if _, ok := seen[variants[i].SizeID]; ok {
			continue
		}
		seen[variants[i].SizeID] = struct{}{}
		sizes = append(sizes, variants[i].Size)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i].Label < sizes[j].Label })
	return sizes
}
