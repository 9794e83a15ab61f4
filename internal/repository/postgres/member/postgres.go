package member

import (
	"context"

	memberdomain "campus-clubs-go/internal/domain/member"
	"gorm.io/gorm"
)

// roleOrder keeps officers ahead of ordinary members. Name breaks ties
// within a tier.
const roleOrder = `CASE role
WHEN 'President' THEN 1
WHEN 'Vice President' THEN 2
WHEN 'Secretary' THEN 3
WHEN 'Treasurer' THEN 4
ELSE 5
END ASC, name ASC`

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByClub(ctx context.Context, clubID uint) ([]memberdomain.Member, error) {
	var members []memberdomain.Member
	if err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order(roleOrder).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
