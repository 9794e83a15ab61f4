package event

import "context"

type Repository interface {
	ListUpcoming(ctx context.Context) ([]WithClub, error)
	ListByClub(ctx context.Context, clubID uint, limit int) ([]Event, error)
	Search(ctx context.Context, query string) ([]WithClub, error)
}
