package helpers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
)

// UserID returns the authenticated user id placed in the request context by
// the session middleware, or "" for anonymous visitors.
func UserID(r *http.Request) string {
	if id, ok := r.Context().Value(ContextKeyUserID).(string); ok {
		return id
	}
	return ""
}

// ParsePriceBound reads an optional price bound. Anything that does not parse
// as a decimal is treated as an absent field, not an error.
func ParsePriceBound(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// ParseRating reads a 1..5 rating, defaulting to 5 when missing or malformed.
func ParseRating(s string) uint {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 5 {
		return 5
	}
	return uint(n)
}

// IDList drops empty entries from a submitted id set.
func IDList(values []string) []string {
	var ids []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			ids = append(ids, v)
		}
	}
	return ids
}
