package event

import (
	"context"
	"strings"
	"time"

	eventdomain "campus-clubs-go/internal/domain/event"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type eventRow struct {
	ID           uint
	ClubID       uint
	Title        string
	Description  string
	StartsAt     time.Time
	Location     string
	Image        string
	Status       string
	CreatedAt    time.Time
	ClubName     string
	ClubCategory string
}

func (r *PostgresRepository) ListUpcoming(ctx context.Context) ([]eventdomain.WithClub, error) {
	var rows []eventRow
	if err := r.withClubQuery(ctx).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toWithClub(rows), nil
}

func (r *PostgresRepository) ListByClub(ctx context.Context, clubID uint, limit int) ([]eventdomain.Event, error) {
	var events []eventdomain.Event
	if err := r.db.WithContext(ctx).
		Where("club_id = ? AND status = ?", clubID, eventdomain.StatusUpcoming).
		Order("starts_at ASC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *PostgresRepository) Search(ctx context.Context, query string) ([]eventdomain.WithClub, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var rows []eventRow
	if err := r.withClubQuery(ctx).
		Where("LOWER(events.title) LIKE ? OR LOWER(events.description) LIKE ?", pattern, pattern).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toWithClub(rows), nil
}

func (r *PostgresRepository) withClubQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("events").
		Select("events.*, clubs.name AS club_name, clubs.category AS club_category").
		Joins("JOIN clubs ON clubs.id = events.club_id").
		Where("events.status = ?", eventdomain.StatusUpcoming).
		Order("events.starts_at ASC")
}

func toWithClub(rows []eventRow) []eventdomain.WithClub {
	events := make([]eventdomain.WithClub, 0, len(rows))
	for _, row := range rows {
		events = append(events, eventdomain.WithClub{
			Event: eventdomain.Event{
				ID:          row.ID,
				ClubID:      row.ClubID,
				Title:       row.Title,
				Description: row.Description,
				StartsAt:    row.StartsAt,
				Location:    row.Location,
				Image:       row.Image,
				Status:      row.Status,
				CreatedAt:   row.CreatedAt,
			},
			ClubName:     row.ClubName,
			ClubCategory: row.ClubCategory,
		})
	}
	return events
}
