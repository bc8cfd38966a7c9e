package app

import (
	"errors"
	"strings"
	"unicode/utf8"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPostNotFound = errors.New("blog post not found")
)

const maxTitleLen = 200

type BlogService struct {
	postRepo *repository.BlogPostRepository
}

type CreatePostInput struct {
	Title   string
	Content string
}

func NewBlogService(postRepo *repository.BlogPostRepository) *BlogService {
	return &BlogService{postRepo: postRepo}
}

func (s *BlogService) CreatePost(input CreatePostInput) (*model.BlogPost, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" || utf8.RuneCountInString(title) > maxTitleLen {
		return nil, ErrInvalidInput
	}

	post := &model.BlogPost{
		Title:   title,
		Content: content,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) ListPosts() ([]model.BlogPost, error) {
	return s.postRepo.ListNewestFirst()
}

func (s *BlogService) GetPost(id uint) (*model.BlogPost, error) {
	if id == 0 {
		return nil, ErrPostNotFound
	}
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *BlogService) DeletePost(id uint) error {
	post, err := s.GetPost(id)
	if err != nil {
		return err
	}
	return s.postRepo.DeleteByID(post.ID)
}
