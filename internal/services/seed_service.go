package services

import (
	"errors"
	"fmt"
	"log"

	"monacowatch/internal/models"
	"monacowatch/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// SeedService ensures the demo fixtures exist in the store, without ever
// duplicating entries, and supports an operator-triggered force refresh.
//
// Known limitation: two concurrent cold-start requests can both observe an
// empty collection and both seed; inserts are lookup-then-insert rather than
// atomic upserts, so concurrent first access can produce duplicates.
type SeedService struct {
	watches  repositories.WatchRepository
	blogs    repositories.BlogRepository
	validate *validator.Validate
}

// NewSeedService creates a new SeedService.
func NewSeedService(watches repositories.WatchRepository, blogs repositories.BlogRepository) *SeedService {
	return &SeedService{
		watches:  watches,
		blogs:    blogs,
		validate: validator.New(),
	}
}

// SeedAll seeds both collections.
func (s *SeedService) SeedAll(force bool) error {
	if err := s.SeedWatches(force); err != nil {
		return err
	}
	return s.SeedBlogPosts(force)
}

// SeedWatches ensures the demo watches exist, matched by name.
//
// Without force, a non-empty collection is treated as already seeded and
// left alone entirely; a partially seeded collection is only repaired by
// force. With force, each demo watch replaces any existing document with
// the same name; documents outside the demo set are never touched.
// A missing store makes this a no-op, not an error.
func (s *SeedService) SeedWatches(force bool) error {
	if !force {
		n, err := s.watches.Count()
		if err != nil {
			if errors.Is(err, repositories.ErrStoreUnavailable) {
				return nil
			}
			return err
		}
		if n > 0 {
			return nil
		}
	}

	for i := range models.DemoWatches {
		watch := models.DemoWatches[i]
		if err := s.validate.Struct(&watch); err != nil {
			return fmt.Errorf("invalid demo watch %q: %w", watch.Name, err)
		}

		existing, err := s.watches.FindByName(watch.Name)
		switch {
		case errors.Is(err, repositories.ErrStoreUnavailable):
			return nil
		case errors.Is(err, repositories.ErrNotFound):
			// Not present, insert below.
		case err != nil:
			return err
		default:
			if !force {
				continue
			}
			if delErr := s.watches.DeleteByID(existing.ID); delErr != nil && !errors.Is(delErr, repositories.ErrNotFound) {
				return delErr
			}
		}

		if err := s.watches.Insert(&watch); err != nil {
			if errors.Is(err, repositories.ErrStoreUnavailable) {
				return nil
			}
			return err
		}
		log.Printf("Seeded watch: %s", watch.Name)
	}
	return nil
}

// SeedBlogPosts ensures the demo blog posts exist, matched by (slug, locale).
// Semantics are identical to SeedWatches.
func (s *SeedService) SeedBlogPosts(force bool) error {
	if !force {
		n, err := s.blogs.Count()
		if err != nil {
			if errors.Is(err, repositories.ErrStoreUnavailable) {
				return nil
			}
			return err
		}
		if n > 0 {
			return nil
		}
	}

	for i := range models.DemoBlogPosts {
		post := models.DemoBlogPosts[i]
		if err := s.validate.Struct(&post); err != nil {
			return fmt.Errorf("invalid demo blog post %q: %w", post.Slug, err)
		}

		existing, err := s.blogs.FindBySlugAndLocale(post.Slug, post.Locale)
		switch {
		case errors.Is(err, repositories.ErrStoreUnavailable):
			return nil
		case errors.Is(err, repositories.ErrNotFound):
			// Not present, insert below.
		case err != nil:
			return err
		default:
			if !force {
				continue
			}
			if delErr := s.blogs.DeleteByID(existing.ID); delErr != nil && !errors.Is(delErr, repositories.ErrNotFound) {
				return delErr
			}
		}

		if err := s.blogs.Insert(&post); err != nil {
			if errors.Is(err, repositories.ErrStoreUnavailable) {
				return nil
			}
			return err
		}
		log.Printf("Seeded blog post: %s (%s)", post.Slug, post.Locale)
	}
	return nil
}
