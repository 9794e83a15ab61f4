package gallery

import (
	"time"

	"campus-clubs-go/internal/domain/event"
)

// Photo is a single gallery image, owned by the event it was taken at.
// The club it belongs to is always derived through that event.
type Photo struct {
	ID         uint   `gorm:"primaryKey"`
	EventID    uint   `gorm:"not null;index"`
	ImagePath  string `gorm:"not null"`
	Caption    string
	UploadedAt time.Time `gorm:"autoCreateTime;index"`

	Event event.Event `gorm:"foreignKey:EventID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Photo) TableName() string { return "event_gallery" }

// ClubPhoto is a photo joined with its event title, scoped to one club.
type ClubPhoto struct {
	Photo
	EventTitle string
}

// SitePhoto is a photo joined with event title and club name, for the
// cross-club gallery page.
type SitePhoto struct {
	Photo
	EventTitle string
	ClubName   string
}
