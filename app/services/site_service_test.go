package services

import (
	"testing"

	"github.com/modashop/go-catalog/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitContactMessageParsesPhone(t *testing.T) {
	svc := newTestServices(t)
	ctx := testContext()

	msg, err := svc.site.SubmitContactMessage(ctx, ContactMessageForm{
		Name:    "Visitor",
		Phone:   "5551234",
		Message: "Where is my order?",
	})
	require.NoError(t, err)
	require.NotNil(t, msg.Phone)
	assert.Equal(t, int64(5551234), *msg.Phone)
}

func TestSubmitContactMessageBadPhoneDegradesToNil(t *testing.T) {
	svc := newTestServices(t)
	ctx := testContext()

	msg, err := svc.site.SubmitContactMessage(ctx, ContactMessageForm{
		Name:    "Visitor",
		Phone:   "call me maybe",
		Message: "Hello",
	})
	require.NoError(t, err)
	assert.Nil(t, msg.Phone)
}

func TestSubmitContactMessageValidatesRequiredFields(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.site.SubmitContactMessage(testContext(), ContactMessageForm{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestContactInfoPicksHighestID(t *testing.T) {
	svc := newTestServices(t)
	ctx := testContext()

	require.NoError(t, svc.db.Create(&models.ContactInfo{
		Email: "old@example.com", PhoneNumber: "1", Address: "Old St",
	}).Error)
	require.NoError(t, svc.db.Create(&models.ContactInfo{
		Email: "new@example.com", PhoneNumber: "2", Address: "New St",
	}).Error)

	info, err := svc.site.ContactInfo(ctx)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "new@example.com", info.Email)
}

func TestContactInfoEmptyTableIsNotAnError(t *testing.T) {
	svc := newTestServices(t)

	info, err := svc.site.ContactInfo(testContext())
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestBaseContextAnonymousHasEmptyWishlist(t *testing.T) {
	svc := newTestServices(t)
	ctx := testContext()

	createCategory(t, svc.db, "Accessories", "accessories")

	base, err := svc.site.BaseContext(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, base.LikedProducts)
	assert.Zero(t, base.LikedCount)
	assert.Len(t, base.SingleCategories, 1)
}

func TestBaseContextCountsLikedProducts(t *testing.T) {
	svc := newTestServices(t)
	ctx := testContext()

	user := createUser(t, svc.db, "shopper@example.com")
	product := createProduct(t, svc.db, "Liked", nil)
	_, err := svc.wishlist.ToggleLike(ctx, product.ID, user.ID)
	require.NoError(t, err)

	base, err := svc.site.BaseContext(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, base.LikedCount)
	require.Len(t, base.LikedProducts, 1)
	assert.Equal(t, product.ID, base.LikedProducts[0].ID)
}
