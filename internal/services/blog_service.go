package services

import (
	"errors"
	"log"

	"monacowatch/internal/models"
	"monacowatch/internal/repositories"
)

// BlogService handles read access to localized blog posts.
type BlogService struct {
	repo   repositories.BlogRepository
	seeder *SeedService
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo repositories.BlogRepository, seeder *SeedService) *BlogService {
	return &BlogService{
		repo:   repo,
		seeder: seeder,
	}
}

// ListPosts retrieves blog posts for a locale, bounded by limit, seeding
// demo data on first read against an empty collection. A missing store
// degrades to an empty result, not an error.
func (s *BlogService) ListPosts(locale string, limit int) ([]models.BlogPostOut, error) {
	if n, err := s.repo.Count(); err == nil && n == 0 {
		if seedErr := s.seeder.SeedBlogPosts(false); seedErr != nil {
			log.Printf("Failed to seed blog posts on empty read: %v", seedErr)
		}
	}

	posts, err := s.repo.Find(map[string]interface{}{"locale": locale}, limit)
	if err != nil {
		if errors.Is(err, repositories.ErrStoreUnavailable) {
			return []models.BlogPostOut{}, nil
		}
		return nil, err
	}

	out := make([]models.BlogPostOut, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ToOut())
	}
	return out, nil
}

// GetPostBySlug retrieves exactly one post by its (slug, locale) natural key.
// Absence is a hard miss (repositories.ErrNotFound); no seeding or
// defaulting is applied here, and a missing store is an error.
func (s *BlogService) GetPostBySlug(slug, locale string) (*models.BlogPostOut, error) {
	post, err := s.repo.FindBySlugAndLocale(slug, locale)
	if err != nil {
		return nil, err
	}
	out := post.ToOut()
	return &out, nil
}
