package gallery

import (
	"context"
	"time"

	gallerydomain "campus-clubs-go/internal/domain/gallery"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type photoRow struct {
	ID         uint
	EventID    uint
	ImagePath  string
	Caption    string
	UploadedAt time.Time
	EventTitle string
	ClubName   string
}

func (r *PostgresRepository) ListByClub(ctx context.Context, clubID uint, limit int) ([]gallerydomain.ClubPhoto, error) {
	var rows []photoRow
	if err := r.db.WithContext(ctx).
		Table("event_gallery").
		Select("event_gallery.*, events.title AS event_title").
		Joins("JOIN events ON events.id = event_gallery.event_id").
		Where("events.club_id = ?", clubID).
		Order("event_gallery.uploaded_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	photos := make([]gallerydomain.ClubPhoto, 0, len(rows))
	for _, row := range rows {
		photos = append(photos, gallerydomain.ClubPhoto{
			Photo:      toPhoto(row),
			EventTitle: row.EventTitle,
		})
	}
	return photos, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context, limit int) ([]gallerydomain.SitePhoto, error) {
	var rows []photoRow
	if err := r.db.WithContext(ctx).
		Table("event_gallery").
		Select("event_gallery.*, events.title AS event_title, clubs.name AS club_name").
		Joins("JOIN events ON events.id = event_gallery.event_id").
		Joins("JOIN clubs ON clubs.id = events.club_id").
		Order("event_gallery.uploaded_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	photos := make([]gallerydomain.SitePhoto, 0, len(rows))
	for _, row := range rows {
		photos = append(photos, gallerydomain.SitePhoto{
			Photo:      toPhoto(row),
			EventTitle: row.EventTitle,
			ClubName:   row.ClubName,
		})
	}
	return photos, nil
}

func toPhoto(row photoRow) gallerydomain.Photo {
	return gallerydomain.Photo{
		ID:         row.ID,
		EventID:    row.EventID,
		ImagePath:  row.ImagePath,
		Caption:    row.Caption,
		UploadedAt: row.UploadedAt,
	}
}
