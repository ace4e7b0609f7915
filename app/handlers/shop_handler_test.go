package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConstraintsReadsFilterWidgetFields(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/shop?category=c1&category=c2&size=s1&color=&min_price=10.50&max_price=99", nil)

	c := parseConstraints(r)

	assert.Equal(t, []string{"c1", "c2"}, c.CategoryIDs)
	assert.Equal(t, []string{"s1"}, c.SizeIDs)
	assert.Nil(t, c.ColorIDs)
	require.NotNil(t, c.MinPrice)
	assert.Equal(t, "10.5", c.MinPrice.String())
	require.NotNil(t, c.MaxPrice)
	assert.Equal(t, "99", c.MaxPrice.String())
}

func TestParseConstraintsMalformedPriceIsAbsent(t *testing.T) {
	r := httptest.NewRequest("GET", "/shop?min_price=cheap&max_price=", nil)

	c := parseConstraints(r)

	assert.Nil(t, c.MinPrice)
	assert.Nil(t, c.MaxPrice)
	assert.True(t, c.Empty())
}
