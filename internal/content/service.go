package content

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khaldoun-digital/baytkum-backend/pkg/db/models"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/pagination"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// PostInput carries the admin payload for a blog post.
type PostInput struct {
	Slug          string
	Title         i18n.Text
	Excerpt       i18n.Text
	Body          i18n.Text
	CoverImageURL *string
	IsPublished   *bool
}

// TestimonialInput carries the admin payload for a testimonial.
type TestimonialInput struct {
	AuthorName string
	Quote      i18n.Text
	Rating     int
	IsActive   *bool
	SortOrder  *int
}

// Service exposes the public read path and the admin CRUD surface for
// blog posts, testimonials and site settings.
type Service interface {
	GetPublishedPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	ListPublishedPosts(ctx context.Context, page pagination.Params) ([]models.BlogPost, int64, error)
	ListActiveTestimonials(ctx context.Context) ([]models.Testimonial, error)
	ListSettings(ctx context.Context) ([]models.Setting, error)

	CreatePost(ctx context.Context, input PostInput) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, id uuid.UUID, input PostInput) (*models.BlogPost, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
	ListPosts(ctx context.Context, page pagination.Params) ([]models.BlogPost, int64, error)

	CreateTestimonial(ctx context.Context, input TestimonialInput) (*models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id uuid.UUID, input TestimonialInput) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)

	PutSetting(ctx context.Context, key string, value i18n.Text) (*models.Setting, error)
}

type service struct {
	repo Repository
}

// NewService builds the content service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("content repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetPublishedPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.repo.FindPostBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load post")
	}
	if !post.IsPublished {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
	}
	return post, nil
}

func (s *service) ListPublishedPosts(ctx context.Context, page pagination.Params) ([]models.BlogPost, int64, error) {
	posts, total, err := s.repo.ListPosts(ctx, BlogFilter{PublishedOnly: true}, page)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list posts")
	}
	return posts, total, nil
}

func (s *service) ListActiveTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	items, err := s.repo.ListTestimonials(ctx, true)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list testimonials")
	}
	return items, nil
}

func (s *service) ListSettings(ctx context.Context) ([]models.Setting, error) {
	settings, err := s.repo.ListSettings(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list settings")
	}
	return settings, nil
}

func validatePostInput(input PostInput) error {
	details := map[string]string{}
	if !slugPattern.MatchString(input.Slug) {
		details["slug"] = "must be lowercase letters, digits and hyphens"
	}
	if strings.TrimSpace(input.Title.EN) == "" && strings.TrimSpace(input.Title.AR) == "" {
		details["title"] = "at least one language is required"
	}
	if input.Body.IsEmpty() {
		details["body"] = "required"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid post").WithDetails(details)
	}
	return nil
}

func (s *service) CreatePost(ctx context.Context, input PostInput) (*models.BlogPost, error) {
	if err := validatePostInput(input); err != nil {
		return nil, err
	}

	post := &models.BlogPost{
		Slug:          input.Slug,
		Title:         input.Title,
		Excerpt:       input.Excerpt,
		Body:          input.Body,
		CoverImageURL: input.CoverImageURL,
	}
	if input.IsPublished != nil && *input.IsPublished {
		now := time.Now().UTC()
		post.IsPublished = true
		post.PublishedAt = &now
	}

	created, err := s.repo.CreatePost(ctx, post)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create post")
	}
	return created, nil
}

func (s *service) UpdatePost(ctx context.Context, id uuid.UUID, input PostInput) (*models.BlogPost, error) {
	if err := validatePostInput(input); err != nil {
		return nil, err
	}

	post, err := s.repo.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load post")
	}

	post.Slug = input.Slug
	post.Title = input.Title
	post.Excerpt = input.Excerpt
	post.Body = input.Body
	post.CoverImageURL = input.CoverImageURL
	if input.IsPublished != nil {
		if *input.IsPublished && !post.IsPublished {
			now := time.Now().UTC()
			post.PublishedAt = &now
		}
		post.IsPublished = *input.IsPublished
	}

	updated, err := s.repo.UpdatePost(ctx, post)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update post")
	}
	return updated, nil
}

func (s *service) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeletePost(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete post")
	}
	return nil
}

func (s *service) ListPosts(ctx context.Context, page pagination.Params) ([]models.BlogPost, int64, error) {
	posts, total, err := s.repo.ListPosts(ctx, BlogFilter{}, page)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list posts")
	}
	return posts, total, nil
}

func validateTestimonialInput(input TestimonialInput) error {
	details := map[string]string{}
	if strings.TrimSpace(input.AuthorName) == "" {
		details["authorName"] = "required"
	}
	if input.Quote.IsEmpty() {
		details["quote"] = "required"
	}
	if input.Rating < 1 || input.Rating > 5 {
		details["rating"] = "must be between 1 and 5"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid testimonial").WithDetails(details)
	}
	return nil
}

func (s *service) CreateTestimonial(ctx context.Context, input TestimonialInput) (*models.Testimonial, error) {
	if err := validateTestimonialInput(input); err != nil {
		return nil, err
	}

	item := &models.Testimonial{
		AuthorName: strings.TrimSpace(input.AuthorName),
		Quote:      input.Quote,
		Rating:     input.Rating,
		IsActive:   true,
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}

	created, err := s.repo.CreateTestimonial(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create testimonial")
	}
	return created, nil
}

func (s *service) UpdateTestimonial(ctx context.Context, id uuid.UUID, input TestimonialInput) (*models.Testimonial, error) {
	if err := validateTestimonialInput(input); err != nil {
		return nil, err
	}

	item, err := s.repo.FindTestimonialByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "testimonial not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load testimonial")
	}

	item.AuthorName = strings.TrimSpace(input.AuthorName)
	item.Quote = input.Quote
	item.Rating = input.Rating
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}

	updated, err := s.repo.UpdateTestimonial(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update testimonial")
	}
	return updated, nil
}

func (s *service) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteTestimonial(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "testimonial not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete testimonial")
	}
	return nil
}

func (s *service) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	items, err := s.repo.ListTestimonials(ctx, false)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list testimonials")
	}
	return items, nil
}

func (s *service) PutSetting(ctx context.Context, key string, value i18n.Text) (*models.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "setting key is required")
	}
	if value.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "setting value is required")
	}

	setting := &models.Setting{Key: key, Value: value}
	if err := s.repo.UpsertSetting(ctx, setting); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save setting")
	}
	return setting, nil
}
