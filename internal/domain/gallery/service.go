package gallery

import (
	"context"

	"campus-clubs-go/pkg/logger"
)

const (
	defaultClubLimit = 12
	defaultSiteLimit = 50
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) ListByClub(ctx context.Context, clubID uint, limit int) []ClubPhoto {
	if limit <= 0 {
		limit = defaultClubLimit
	}
	photos, err := s.repo.ListByClub(ctx, clubID, limit)
	if err != nil {
		s.log.InternalError("gallery.list_by_club: query failed", err, "club_id", clubID)
		return []ClubPhoto{}
	}
	return photos
}

func (s *Service) ListAll(ctx context.Context, limit int) []SitePhoto {
	if limit <= 0 {
		limit = defaultSiteLimit
	}
	photos, err := s.repo.ListAll(ctx, limit)
	if err != nil {
		s.log.InternalError("gallery.list_all: query failed", err)
		return []SitePhoto{}
	}
	return photos
}
