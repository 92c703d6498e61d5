// Package blog serves the blog list, search and detail views and forwards edits to
// the backend.
package blog

import (
	"bytes"
	"context"
	"fmt"

	"letsheal/models"
	"letsheal/services/listing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// API is the blog part of the remote client.
type API interface {
	Blogs(ctx context.Context, token string) ([]models.Blog, error)
	MyBlogs(ctx context.Context, token string) ([]models.Blog, error)
	Blog(ctx context.Context, token string, blogID int64) (*models.Blog, error)
	CreateBlog(ctx context.Context, token string, in models.BlogInput) (*models.Blog, error)
	UpdateBlog(ctx context.Context, token string, blogID int64, in models.BlogInput) (*models.Blog, error)
	DeleteBlog(ctx context.Context, token string, blogID int64) error
}

// ImageResolver turns stored image references into loadable URLs.
type ImageResolver interface {
	Resolve(ref string) string
}

// mdRenderer renders post bodies. Raw HTML in a post is dropped.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// RenderMarkdown converts a post body to HTML.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type Service struct {
	api    API
	images ImageResolver
}

func NewService(api API, images ImageResolver) *Service {
	return &Service{api: api, images: images}
}

// List returns every post matching the filter state.
func (s *Service) List(ctx context.Context, token string, state models.FilterState) ([]models.Blog, error) {
	blogs, err := s.api.Blogs(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.present(listing.Apply(blogs, listing.BlogSchema, state)), nil
}

// Mine returns the caller's own posts matching the filter state.
func (s *Service) Mine(ctx context.Context, token string, state models.FilterState) ([]models.Blog, error) {
	blogs, err := s.api.MyBlogs(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.present(listing.Apply(blogs, listing.BlogSchema, state)), nil
}

// Detail loads one post with its body rendered to HTML.
func (s *Service) Detail(ctx context.Context, token string, blogID string) (*models.BlogDetail, error) {
	id, err := models.ParseID(blogID)
	if err != nil {
		return nil, err
	}
	b, err := s.api.Blog(ctx, token, id)
	if err != nil {
		return nil, err
	}
	html, err := RenderMarkdown(b.Content)
	if err != nil {
		return nil, fmt.Errorf("render blog %d: %w", id, err)
	}
	return &models.BlogDetail{
		Blog:        *b,
		ImageURL:    s.images.Resolve(b.Image),
		ContentHTML: html,
	}, nil
}

func (s *Service) Create(ctx context.Context, token string, in models.BlogInput) (*models.Blog, error) {
	return s.api.CreateBlog(ctx, token, in)
}

func (s *Service) Update(ctx context.Context, token string, blogID string, in models.BlogInput) (*models.Blog, error) {
	id, err := models.ParseID(blogID)
	if err != nil {
		return nil, err
	}
	return s.api.UpdateBlog(ctx, token, id, in)
}

func (s *Service) Delete(ctx context.Context, token string, blogID string) error {
	id, err := models.ParseID(blogID)
	if err != nil {
		return err
	}
	return s.api.DeleteBlog(ctx, token, id)
}

func (s *Service) present(blogs []models.Blog) []models.Blog {
	for i := range blogs {
		blogs[i].Image = s.images.Resolve(blogs[i].Image)
	}
	return blogs
}
