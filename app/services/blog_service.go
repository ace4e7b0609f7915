package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/modashop/go-catalog/app/models"
	"github.com/modashop/go-catalog/app/repositories"
	"gorm.io/gorm"
)

type CommentForm struct {
	Name    string `json:"name" validate:"required,max=100"`
	Comment string `json:"comment" validate:"required"`
	Image   string `json:"image" validate:"omitempty,max=255"`
}

type ReplyForm struct {
	Name      string `json:"name" validate:"required,max=100"`
	ReplyText string `json:"reply_text" validate:"required"`
	Image     string `json:"image" validate:"omitempty,max=255"`
}

type BlogDetail struct {
	Blog     models.Blog          `json:"blog"`
	Comments []models.BlogComment `json:"comments"`
}

type BlogService struct {
	blogRepo repositories.BlogRepositoryImpl
	validate *validator.Validate
}

func NewBlogService(blogRepo repositories.BlogRepositoryImpl, validate *validator.Validate) *BlogService {
	return &BlogService{blogRepo: blogRepo, validate: validate}
}

func (s *BlogService) List(ctx context.Context) ([]models.Blog, error) {
	return s.blogRepo.GetPublished(ctx)
}

// Detail returns a blog with its comments newest-first, replies threaded
// under each comment oldest-first.
func (s *BlogService) Detail(ctx context.Context, slug string) (*BlogDetail, error) {
	blog, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comments, err := s.blogRepo.GetComments(ctx, blog.ID)
	if err != nil {
		return nil, err
	}

	return &BlogDetail{Blog: *blog, Comments: comments}, nil
}

func (s *BlogService) AddComment(ctx context.Context, slug string, form CommentForm) (*models.BlogComment, error) {
	blog, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.validate.Struct(&form); err != nil {
		return nil, validationFields(err)
	}

	comment := &models.BlogComment{
		ID:        uuid.New().String(),
		BlogID:    blog.ID,
		Name:      form.Name,
		Image:     form.Image,
		Comment:   form.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.blogRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *BlogService) AddReply(ctx context.Context, commentID string, form ReplyForm) (*models.BlogReply, error) {
	comment, err := s.blogRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.validate.Struct(&form); err != nil {
		return nil, validationFields(err)
	}

	reply := &models.BlogReply{
		ID:        uuid.New().String(),
		CommentID: comment.ID,
		Name:      form.Name,
		Image:     form.Image,
		ReplyText: form.ReplyText,
		CreatedAt: time.Now(),
	}
	if err := s.blogRepo.CreateReply(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}
