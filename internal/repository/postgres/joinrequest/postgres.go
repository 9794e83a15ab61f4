package joinrequest

import (
	"context"
	"errors"

	joinrequestdomain "campus-clubs-go/internal/domain/joinrequest"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, request *joinrequestdomain.JoinRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *PostgresRepository) Get(ctx context.Context, id uint) (*joinrequestdomain.JoinRequest, error) {
	var request joinrequestdomain.JoinRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joinrequestdomain.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *PostgresRepository) ListByClub(ctx context.Context, clubID uint) ([]joinrequestdomain.JoinRequest, error) {
	var requests []joinrequestdomain.JoinRequest
	if err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("submitted_at ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
