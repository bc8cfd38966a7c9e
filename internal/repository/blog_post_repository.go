package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

type BlogPostRepository struct {
	db *gorm.DB
}

func NewBlogPostRepository(db *gorm.DB) *BlogPostRepository {
	return &BlogPostRepository{db: db}
}

func (r *BlogPostRepository) Create(post *model.BlogPost) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("create blog post failed: %w", err)
	}
	return nil
}

func (r *BlogPostRepository) ListNewestFirst() ([]model.BlogPost, error) {
	var posts []model.BlogPost
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list blog posts failed: %w", err)
	}
	return posts, nil
}

func (r *BlogPostRepository) GetByID(id uint) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query blog post by id failed: %w", err)
	}
	return &post, nil
}

func (r *BlogPostRepository) DeleteByID(id uint) error {
	if err := r.db.Delete(&model.BlogPost{}, id).Error; err != nil {
		return fmt.Errorf("delete blog post failed: %w", err)
	}
	return nil
}

// GetByTitle returns the oldest post with the given title, nil when absent.
// Used by the offline admin CLI.
func (r *BlogPostRepository) GetByTitle(title string) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.Where("title = ?", title).Order("created_at ASC").First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query blog post by title failed: %w", err)
	}
	return &post, nil
}

func (r *BlogPostRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.BlogPost{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count blog posts failed: %w", err)
	}
	return count, nil
}
