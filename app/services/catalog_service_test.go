package services

import (
	"testing"

	"github.com/modashop/go-catalog/app/models"
	"github.com/modashop/go-catalog/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func variantFixture(id, sizeID, sizeLabel, colorID, colorName string) models.ProductVariant {
	return models.ProductVariant{
		ID:      id,
		SizeID:  sizeID,
		Size:    models.Size{ID: sizeID, Name: sizeLabel, Label: sizeLabel},
		ColorID: colorID,
		Color:   models.Color{ID: colorID, Name: colorName, Code: "#000000"},
		Image:   "/images/" + id + ".jpg",
	}
}

func TestAggregateVariantsZeroVariants(t *testing.T) {
	product := models.Product{ID: "p1", Name: "Empty"}

	_, ok := AggregateVariants(&product)
	assert.False(t, ok)
}

func TestAggregateVariantsKeepsOneColorEntryPerVariant(t *testing.T) {
	product := models.Product{
		ID:   "p1",
		Name: "Shirt",
		Variants: []models.ProductVariant{
			variantFixture("v1", "s1", "S", "c1", "Black"),
			variantFixture("v2", "s2", "M", "c1", "Black"),
			variantFixture("v3", "s2", "M", "c2", "White"),
		},
	}

	group, ok := AggregateVariants(&product)
	require.True(t, ok)

	// Two variants share the color but keep separate swatches; the size row
	// dedups on label.
	assert.Len(t, group.Colors, 3)
	assert.Equal(t, []string{"S", "M"}, group.Sizes)
	require.NotNil(t, group.Default)
	assert.Equal(t, "v1", group.Default.ID)
}

func TestSelectVariantFallbackChain(t *testing.T) {
	variants := []models.ProductVariant{
		variantFixture("v1", "s1", "S", "c1", "Black"),
		variantFixture("v2", "s2", "M", "c1", "Black"),
		variantFixture("v3", "s2", "M", "c2", "White"),
	}

	exact := SelectVariant(variants, "c2", "s2")
	require.NotNil(t, exact)
	assert.Equal(t, "v3", exact.ID)

	// No variant is White in S; the color-only match wins over size-only.
	colorOnly := SelectVariant(variants, "c2", "s1")
	require.NotNil(t, colorOnly)
	assert.Equal(t, "v3", colorOnly.ID)

	sizeOnly := SelectVariant(variants, "", "s2")
	require.NotNil(t, sizeOnly)
	assert.Equal(t, "v2", sizeOnly.ID)

	first := SelectVariant(variants, "c-missing", "s-missing")
	require.NotNil(t, first)
	assert.Equal(t, "v1", first.ID)

	assert.Nil(t, SelectVariant(nil, "c1", "s1"))
}

func TestBuildGalleryAltTextFallsBackToProductName(t *testing.T) {
	product := models.Product{ID: "p1", Name: "Linen Shirt"}
	variant := variantFixture("v1", "s1", "S", "c1", "Black")
	variant.ImageHover = "/images/v1-hover.jpg"
	variant.Images = []models.ProductVariantImage{
		{ID: "i1", Image: "/images/extra-1.jpg", AltText: "Detail shot"},
		{ID: "i2", Image: "/images/extra-2.jpg"},
	}

	gallery := BuildGallery(&product, &variant)
	require.Len(t, gallery, 4)
	assert.Equal(t, "Linen Shirt main image", gallery[0].Alt)
	assert.Equal(t, "Linen Shirt hover image", gallery[1].Alt)
	assert.Equal(t, "Detail shot", gallery[2].Alt)
	assert.Equal(t, "Linen Shirt", gallery[3].Alt)
}

func TestShopListingSkipsProductsWithoutVariants(t *testing.T) {
	svc := newTestServices(t)
	ctx := testContext()

	size := createSize(t, svc.db, "Medium", "M")
	color := createColor(t, svc.db, "Black", "#000000")

	withVariant := createProduct(t, svc.db, "Has variant", nil)
	createVariant(t, svc.db, withVariant.ID, size, color, "20.00", false)
	createProduct(t, svc.db, "No variant", nil)

	listing, err := svc.catalog.ShopListing(ctx, repositories.FilterConstraints{})
	require.NoError(t, err)

	require.Len(t, listing.Items, 1)
	assert.Equal(t, withVariant.ID, listing.Items[0].Product.ID)
	assert.Len(t, listing.Sizes, 1)
	assert.Len(t, listing.Colors, 1)
}

func TestShopListingPricesDefaultVariantWithDiscount(t *testing.T) {
	svc := newTestServices(t)
	ctx := testContext()

	size := createSize(t, svc.db, "Medium", "M")
	color := createColor(t, svc.db, "Black", "#000000")
	product := createProduct(t, svc.db, "Discounted", nil)
	createVariant(t, svc.db, product.ID, size, color, "100.00", false)
	createDiscount(t, svc.db, "d-1", 20, &product.ID, nil, nil)

	listing, err := svc.catalog.ShopListing(ctx, repositories.FilterConstraints{})
	require.NoError(t, err)

	require.Len(t, listing.Items, 1)
	price := listing.Items[0].Price
	assert.True(t, price.HasDiscount)
	assert.Equal(t, "80", price.FinalPrice.String())
}

func TestCategoryListingUnknownSlug(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.catalog.CategoryListing(testContext(), "missing", repositories.FilterConstraints{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryListingScopesToTheCategory(t *testing.T) {
	svc := newTestServices(t)
	ctx := testContext()

	size := createSize(t, svc.db, "Medium", "M")
	color := createColor(t, svc.db, "Black", "#000000")
	dresses := createCategory(t, svc.db, "Dresses", "dresses")
	tops := createCategory(t, svc.db, "Tops", "tops")

	inCategory := createProduct(t, svc.db, "Dress", &dresses.ID)
	createVariant(t, svc.db, inCategory.ID, size, color, "30.00", false)
	elsewhere := createProduct(t, svc.db, "Top", &tops.ID)
	createVariant(t, svc.db, elsewhere.ID, size, color, "30.00", false)

	listing, err := svc.catalog.CategoryListing(ctx, "dresses", repositories.FilterConstraints{})
	require.NoError(t, err)

	assert.Equal(t, dresses.ID, listing.Category.ID)
	require.Len(t, listing.Items, 1)
	assert.Equal(t, inCategory.ID, listing.Items[0].Product.ID)
}

func TestProductDetailSelectsVariantAndDedupsSwatches(t *testing.T) {
	svc := newTestServices(t)
	ctx := testContext()

	sizeS := createSize(t, svc.db, "Small", "S")
	sizeM := createSize(t, svc.db, "Medium", "M")
	black := createColor(t, svc.db, "Black", "#000000")
	white := createColor(t, svc.db, "White", "#ffffff")
	dresses := createCategory(t, svc.db, "Dresses", "dresses")

	product := createProduct(t, svc.db, "Dress", &dresses.ID)
	createVariant(t, svc.db, product.ID, sizeS, black, "40.00", false)
	target := createVariant(t, svc.db, product.ID, sizeM, black, "45.00", false)
	createVariant(t, svc.db, product.ID, sizeM, white, "45.00", false)

	other := createProduct(t, svc.db, "Other dress", &dresses.ID)
	createVariant(t, svc.db, other.ID, sizeS, black, "60.00", false)

	detail, err := svc.catalog.ProductDetail(ctx, product.ID, black.ID, sizeM.ID)
	require.NoError(t, err)

	assert.Equal(t, target.ID, detail.Variant.ID)
	assert.Equal(t, black.ID, detail.SelectedColorID)
	assert.Equal(t, sizeM.ID, detail.SelectedSizeID)

	// Black appears on two variants but only once in the swatch row.
	assert.Len(t, detail.Colors, 2)
	assert.Len(t, detail.Sizes, 2)

	require.Len(t, detail.Related, 1)
	assert.Equal(t, other.ID, detail.Related[0].Product.ID)
}

func TestProductDetailUnknownProduct(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.catalog.ProductDetail(testContext(), "missing", "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductDetailWithoutVariants(t *testing.T) {
	svc := newTestServices(t)
	ctx := testContext()

	product := createProduct(t, svc.db, "Bare", nil)

	_, err := svc.catalog.ProductDetail(ctx, product.ID, "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHomePageFeaturedOneCardPerFlaggedVariant(t *testing.T) {
	svc := newTestServices(t)
	ctx := testContext()

	size := createSize(t, svc.db, "Medium", "M")
	black := createColor(t, svc.db, "Black", "#000000")
	white := createColor(t, svc.db, "White", "#ffffff")

	product := createProduct(t, svc.db, "Twice featured", nil)
	createVariant(t, svc.db, product.ID, size, black, "30.00", true)
	createVariant(t, svc.db, product.ID, size, white, "35.00", true)
	unfeatured := createProduct(t, svc.db, "Plain", nil)
	createVariant(t, svc.db, unfeatured.ID, size, black, "10.00", false)

	page, err := svc.catalog.HomePage(ctx)
	require.NoError(t, err)

	require.Len(t, page.Featured, 2)
	assert.Equal(t, product.ID, page.Featured[0].Product.ID)
	assert.Equal(t, product.ID, page.Featured[1].Product.ID)
	assert.NotEqual(t, page.Featured[0].Variant.ID, page.Featured[1].Variant.ID)
}

func TestHomePageCategorySummaries(t *testing.T) {
	svc := newTestServices(t)
	ctx := testContext()

	dresses := createCategory(t, svc.db, "Dresses", "dresses")
	createProduct(t, svc.db, "One", &dresses.ID)
	createProduct(t, svc.db, "Two", &dresses.ID)
	createDiscount(t, svc.db, "d-1", 25, nil, &dresses.ID, nil)

	page, err := svc.catalog.HomePage(ctx)
	require.NoError(t, err)

	require.Len(t, page.Categories, 1)
	summary := page.Categories[0]
	assert.Equal(t, int64(2), summary.ProductCount)
	assert.Equal(t, "25", summary.DiscountPercent)
}
