package club

import (
	"context"
	"errors"
	"strings"

	"campus-clubs-go/pkg/logger"
)

// Service is the read boundary for clubs. Storage failures on reads are
// logged and collapse to the empty shape so callers can always render an
// empty state; a missing club is a nil pointer, not an error.
type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) ListClubs(ctx context.Context) []Summary {
	clubs, err := s.repo.List(ctx)
	if err != nil {
		s.log.InternalError("clubs.list: query failed", err)
		return []Summary{}
	}
	return clubs
}

func (s *Service) ListByCategory(ctx context.Context, category string) []Summary {
	category = strings.TrimSpace(category)
	if category == "" {
		return s.ListClubs(ctx)
	}
	clubs, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		s.log.InternalError("clubs.list_by_category: query failed", err, "category", category)
		return []Summary{}
	}
	return clubs
}

func (s *Service) Get(ctx context.Context, id uint) *Club {
	result, err := s.repo.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.InternalError("clubs.get: query failed", err, "club_id", id)
		}
		return nil
	}
	return result
}

func (s *Service) Categories(ctx context.Context) []string {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		s.log.InternalError("clubs.categories: query failed", err)
		return []string{}
	}
	return categories
}

func (s *Service) Stats(ctx context.Context) Stats {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		s.log.InternalError("clubs.stats: query failed", err)
		return Stats{}
	}
	return stats
}

func (s *Service) Search(ctx context.Context, query string) []Summary {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Summary{}
	}
	clubs, err := s.repo.Search(ctx, query)
	if err != nil {
		s.log.InternalError("clubs.search: query failed", err, "query", query)
		return []Summary{}
	}
	return clubs
}
