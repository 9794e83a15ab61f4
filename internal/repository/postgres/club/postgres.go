package club

import (
	"context"
	"errors"
	"strings"
	"time"

	clubdomain "campus-clubs-go/internal/domain/club"
	eventdomain "campus-clubs-go/internal/domain/event"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type summaryRow struct {
	ID              uint
	Name            string
	Category        string
	Description     string
	FullDescription string
	Logo            string
	MeetingTime     string
	MeetingLocation string
	ContactEmail    string
	ContactPhone    string
	PresidentName   string
	FoundedYear     int
	CreatedAt       time.Time
	MemberCount     int64
}

func (r *PostgresRepository) List(ctx context.Context) ([]clubdomain.Summary, error) {
	var rows []summaryRow
	if err := r.summaryQuery(ctx).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toSummaries(rows), nil
}

func (r *PostgresRepository) ListByCategory(ctx context.Context, category string) ([]clubdomain.Summary, error) {
	var rows []summaryRow
	if err := r.summaryQuery(ctx).
		Where("clubs.category = ?", category).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toSummaries(rows), nil
}

func (r *PostgresRepository) Get(ctx context.Context, id uint) (*clubdomain.Club, error) {
	var result clubdomain.Club
	if err := r.db.WithContext(ctx).First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clubdomain.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *PostgresRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&clubdomain.Club{}).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PostgresRepository) Stats(ctx context.Context) (clubdomain.Stats, error) {
	var stats clubdomain.Stats
	if err := r.db.WithContext(ctx).Table("clubs").Count(&stats.TotalClubs).Error; err != nil {
		return clubdomain.Stats{}, err
	}
	if err := r.db.WithContext(ctx).Table("members").Count(&stats.TotalMembers).Error; err != nil {
		return clubdomain.Stats{}, err
	}
	if err := r.db.WithContext(ctx).
		Table("events").
		Where("status = ?", eventdomain.StatusUpcoming).
		Count(&stats.UpcomingEvents).Error; err != nil {
		return clubdomain.Stats{}, err
	}
	return stats, nil
}

func (r *PostgresRepository) Search(ctx context.Context, query string) ([]clubdomain.Summary, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var rows []summaryRow
	if err := r.summaryQuery(ctx).
		Where("LOWER(clubs.name) LIKE ? OR LOWER(clubs.description) LIKE ? OR LOWER(clubs.category) LIKE ?",
			pattern, pattern, pattern).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toSummaries(rows), nil
}

// summaryQuery is the shared clubs-with-live-member-count shape. The count
// always comes from the members table, never from a stored hint.
func (r *PostgresRepository) summaryQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("clubs").
		Select("clubs.*, COUNT(members.id) AS member_count").
		Joins("LEFT JOIN members ON members.club_id = clubs.id").
		Group("clubs.id").
		Order("clubs.name ASC")
}

func toSummaries(rows []summaryRow) []clubdomain.Summary {
	summaries := make([]clubdomain.Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, clubdomain.Summary{
			Club: clubdomain.Club{
				ID:              row.ID,
				Name:            row.Name,
				Category:        row.Category,
				Description:     row.Description,
				FullDescription: row.FullDescription,
				Logo:            row.Logo,
				MeetingTime:     row.MeetingTime,
				MeetingLocation: row.MeetingLocation,
				ContactEmail:    row.ContactEmail,
				ContactPhone:    row.ContactPhone,
				PresidentName:   row.PresidentName,
				FoundedYear:     row.FoundedYear,
				CreatedAt:       row.CreatedAt,
			},
			MemberCount: row.MemberCount,
		})
	}
	return summaries
}
