package event

import (
	"time"

	"campus-clubs-go/internal/domain/club"
)

const StatusUpcoming = "upcoming"

// Event schedules a single club activity. StartsAt holds the full start
// timestamp; the original stored the clock as free text next to the date,
// which sorted "1:00 PM" before "9:00 AM".
type Event struct {
	ID          uint   `gorm:"primaryKey"`
	ClubID      uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	StartsAt    time.Time `gorm:"index"`
	Location    string
	Image       string
	Status      string    `gorm:"default:upcoming;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Club club.Club `gorm:"foreignKey:ClubID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Event) TableName() string { return "events" }

// WithClub is an event joined with the naming fields of its club.
type WithClub struct {
	Event
	ClubName     string
	ClubCategory string
}
