package member

import "context"

type Repository interface {
	// ListByClub returns a club's members ordered by officer priority
	// (President, Vice President, Secretary, Treasurer, everyone else),
	// then by name within the same tier.
	ListByClub(ctx context.Context, clubID uint) ([]Member, error)
}
