package services

import (
	"context"
	"strings"

	"github.com/modashop/go-catalog/app/models"
	"github.com/modashop/go-catalog/app/repositories"
)

const (
	productSearchLimit = 10
	blogSearchLimit    = 5
	recentSearchLimit  = 5
)

type ProductSearchResult struct {
	Results        []models.Product      `json:"results"`
	RecentSearches []models.RecentSearch `json:"recent_searches"`
}

type SearchService struct {
	productRepo repositories.ProductRepositoryImpl
	blogRepo    repositories.BlogRepositoryImpl
	searchRepo  repositories.SearchRepositoryImpl
}

func NewSearchService(
	productRepo repositories.ProductRepositoryImpl,
	blogRepo repositories.BlogRepositoryImpl,
	searchRepo repositories.SearchRepositoryImpl,
) *SearchService {
	return &SearchService{
		productRepo: productRepo,
		blogRepo:    blogRepo,
		searchRepo:  searchRepo,
	}
}

// SearchProducts matches the query against product name and description,
// case-insensitively, capped at ten results. For an authenticated user the
// query lands in their search log (once per distinct query) and their five
// most recent searches come back alongside the results.
func (s *SearchService) SearchProducts(ctx context.Context, userID, query string) (*ProductSearchResult, error) {
	result := &ProductSearchResult{}

	query = strings.TrimSpace(query)
	if query != "" {
		products, err := s.productRepo.Search(ctx, query, productSearchLimit)
		if err != nil {
			return nil, err
		}
		result.Results = products

		if userID != "" {
			if err := s.searchRepo.Record(ctx, userID, query); err != nil {
				return nil, err
			}
		}
	}

	if userID != "" {
		recent, err := s.searchRepo.GetRecent(ctx, userID, recentSearchLimit)
		if err != nil {
			return nil, err
		}
		result.RecentSearches = recent
	}

	return result, nil
}

// SearchBlogs matches published blogs on title, short description and
// content, capped at five results.
func (s *SearchService) SearchBlogs(ctx context.Context, query string) ([]models.Blog, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	return s.blogRepo.Search(ctx, query, blogSearchLimit)
}
