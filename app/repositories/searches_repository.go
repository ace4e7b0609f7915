package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modashop/go-catalog/app/models"
	"gorm.io/gorm"
)

type SearchRepositoryImpl interface {
	Record(ctx context.Context, userID, query string) error
	GetRecent(ctx context.Context, userID string, limit int) ([]models.RecentSearch, error)
}

type searchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) SearchRepositoryImpl {
	return &searchRepository{db}
}

// Record appends the query to the user's search log unless the exact query is
// already logged for them.
func (r *searchRepository) Record(ctx context.Context, userID, query string) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RecentSearch{}).
		Where("user_id = ? AND query = ?", userID, query).
		Count(&count).Error
	if err != nil || count > 0 {
		return err
	}
	return r.db.WithContext(ctx).Create(&models.RecentSearch{
		ID:        uuid.New().String(),
		UserID:    userID,
		Query:     query,
		CreatedAt: time.Now(),
	}).Error
}

func (r *searchRepository) GetRecent(ctx context.Context, userID string, limit int) ([]models.RecentSearch, error) {
	var searches []models.RecentSearch
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&searches).Error
	return searches, err
}
