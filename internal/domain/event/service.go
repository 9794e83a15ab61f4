package event

import (
	"context"
	"strings"

	"campus-clubs-go/pkg/logger"
)

const defaultClubEventsLimit = 5

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) ListUpcoming(ctx context.Context) []WithClub {
	events, err := s.repo.ListUpcoming(ctx)
	if err != nil {
		s.log.InternalError("events.list_upcoming: query failed", err)
		return []WithClub{}
	}
	return events
}

func (s *Service) ListByClub(ctx context.Context, clubID uint, limit int) []Event {
	if limit <= 0 {
		limit = defaultClubEventsLimit
	}
	events, err := s.repo.ListByClub(ctx, clubID, limit)
	if err != nil {
		s.log.InternalError("events.list_by_club: query failed", err, "club_id", clubID)
		return []Event{}
	}
	return events
}

func (s *Service) Search(ctx context.Context, query string) []WithClub {
	query = strings.TrimSpace(query)
	if query == "" {
		return []WithClub{}
	}
	events, err := s.repo.Search(ctx, query)
	if err != nil {
		s.log.InternalError("events.search: query failed", err, "query", query)
		return []WithClub{}
	}
	return events
}
