package services

import (
	"errors"
	"log"

	"monacowatch/internal/models"
	"monacowatch/internal/repositories"
)

// CatalogService handles read access to the watch catalog.
type CatalogService struct {
	repo   repositories.WatchRepository
	seeder *SeedService
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.WatchRepository, seeder *SeedService) *CatalogService {
	return &CatalogService{
		repo:   repo,
		seeder: seeder,
	}
}

// ListWatches retrieves watches, optionally filtered to a featured flag,
// bounded by limit. A cold, empty collection is seeded with demo data on
// first read so callers never observe "no results" on a fresh deployment.
// A missing store degrades to an empty result, not an error.
func (s *CatalogService) ListWatches(featured *bool, limit int) ([]models.WatchOut, error) {
	if n, err := s.repo.Count(); err == nil && n == 0 {
		if seedErr := s.seeder.SeedWatches(false); seedErr != nil {
			log.Printf("Failed to seed watches on empty read: %v", seedErr)
		}
	}

	filter := map[string]interface{}{}
	if featured != nil {
		filter["featured"] = *featured
	}

	watches, err := s.repo.Find(filter, limit)
	if err != nil {
		if errors.Is(err, repositories.ErrStoreUnavailable) {
			return []models.WatchOut{}, nil
		}
		return nil, err
	}

	out := make([]models.WatchOut, 0, len(watches))
	for _, w := range watches {
		out = append(out, w.ToOut())
	}
	return out, nil
}
