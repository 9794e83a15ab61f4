package joinrequest

import "context"

type Repository interface {
	Create(ctx context.Context, request *JoinRequest) error
	Get(ctx context.Context, id uint) (*JoinRequest, error)
	ListByClub(ctx context.Context, clubID uint) ([]JoinRequest, error)
}
