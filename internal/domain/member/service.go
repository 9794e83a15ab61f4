package member

import (
	"context"

	"campus-clubs-go/pkg/logger"
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) ListByClub(ctx context.Context, clubID uint) []Member {
	members, err := s.repo.ListByClub(ctx, clubID)
	if err != nil {
		s.log.InternalError("members.list_by_club: query failed", err, "club_id", clubID)
		return []Member{}
	}
	return members
}
