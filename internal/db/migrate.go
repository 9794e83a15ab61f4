package db

import (
	"campus-clubs-go/internal/domain/club"
	"campus-clubs-go/internal/domain/event"
	"campus-clubs-go/internal/domain/gallery"
	"campus-clubs-go/internal/domain/joinrequest"
	"campus-clubs-go/internal/domain/member"
	"gorm.io/gorm"
)

// Migrate creates or updates the five tables from the domain models.
// Parent tables go first so the cascade foreign keys resolve.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&club.Club{},
		&member.Member{},
		&event.Event{},
		&gallery.Photo{},
		&joinrequest.JoinRequest{},
	)
}
