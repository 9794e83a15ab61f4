package gallery

import (
	"context"
	"testing"

	"campus-clubs-go/internal/config"
	"campus-clubs-go/internal/db"
	"gorm.io/gorm"
)

func openSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := db.Open(config.DBConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Seed(gormDB); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return gormDB
}

func TestListAllIsNewestFirstAndLimited(t *testing.T) {
	repo := NewPostgres(openSeededDB(t))

	photos, err := repo.ListAll(context.Background(), 3)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(photos) != 3 {
		t.Fatalf("expected 3 photos, got %d", len(photos))
	}

	want := []string{
		"gallery/drama_rehearsal.jpg",
		"gallery/hackfest_winners.jpg",
		"gallery/hackfest_teams.jpg",
	}
	for i := range want {
		if photos[i].ImagePath != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], photos[i].ImagePath)
		}
	}
	if photos[0].EventTitle != "Annual Play: Romeo & Juliet" {
		t.Fatalf("expected joined event title, got %q", photos[0].EventTitle)
	}
	if photos[0].ClubName != "Drama & Theatre Society" {
		t.Fatalf("expected joined club name, got %q", photos[0].ClubName)
	}
}

func TestListAllReturnsEverythingUnderTheLimit(t *testing.T) {
	repo := NewPostgres(openSeededDB(t))

	photos, err := repo.ListAll(context.Background(), 50)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(photos) != 6 {
		t.Fatalf("expected all 6 photos, got %d", len(photos))
	}
}

func TestListByClubFollowsTheEventJoin(t *testing.T) {
	repo := NewPostgres(openSeededDB(t))

	photos, err := repo.ListByClub(context.Background(), 1, 12)
	if err != nil {
		t.Fatalf("list by club: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("expected 2 photos for club 1, got %d", len(photos))
	}
	if photos[0].ImagePath != "gallery/hackfest_winners.jpg" {
		t.Fatalf("expected newest photo first, got %q", photos[0].ImagePath)
	}
	for _, photo := range photos {
		if photo.EventTitle != "HackFest 2026" {
			t.Fatalf("photo from another club's event leaked in: %+v", photo)
		}
	}
}

func TestListByClubWithoutPhotosIsEmpty(t *testing.T) {
	repo := NewPostgres(openSeededDB(t))

	// Robotics & Automation Lab has an event but no photos yet.
	photos, err := repo.ListByClub(context.Background(), 6, 12)
	if err != nil {
		t.Fatalf("list by club: %v", err)
	}
	if len(photos) != 0 {
		t.Fatalf("expected no photos, got %d", len(photos))
	}
}
