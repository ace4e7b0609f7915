package repositories

import (
	"context"
	"strings"

	"github.com/modashop/go-catalog/app/models"
	"gorm.io/gorm"
)

type BlogRepositoryImpl interface {
	GetPublished(ctx context.Context) ([]models.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)
	Search(ctx context.Context, keyword string, limit int) ([]models.Blog, error)
	GetComments(ctx context.Context, blogID string) ([]models.BlogComment, error)
	GetCommentByID(ctx context.Context, id string) (*models.BlogComment, error)
	CreateComment(ctx context.Context, comment *models.BlogComment) error
	CreateReply(ctx context.Context, reply *models.BlogReply) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepositoryImpl {
	return &blogRepository{db}
}

func (r *blogRepository) GetPublished(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&blogs).Error
	return blogs, err
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&blog, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) Search(ctx context.Context, keyword string, limit int) ([]models.Blog, error) {
	var blogs []models.Blog
	pattern := "%" + strings.ToLower(keyword) + "%"
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Where("LOWER(title) LIKE ? OR LOWER(short_description) LIKE ? OR LOWER(content) LIKE ?",
			pattern, pattern, pattern).
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

func (r *blogRepository) GetComments(ctx context.Context, blogID string) ([]models.BlogComment, error) {
	var comments []models.BlogComment
	err := r.db.WithContext(ctx).
		Preload("Replies", func(db *gorm.DB) *gorm.DB { return db.Order("blog_replies.created_at") }).
		Where("blog_id = ?", blogID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *blogRepository) GetCommentByID(ctx context.Context, id string) (*models.BlogComment, error) {
	var comment models.BlogComment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *blogRepository) CreateComment(ctx context.Context, comment *models.BlogComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *blogRepository) CreateReply(ctx context.Context, reply *models.BlogReply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}
