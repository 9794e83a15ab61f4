package gallery

import "context"

type Repository interface {
	ListByClub(ctx context.Context, clubID uint, limit int) ([]ClubPhoto, error)
	ListAll(ctx context.Context, limit int) ([]SitePhoto, error)
}
