package club

import (
	"context"
	"errors"
	"testing"

	"campus-clubs-go/internal/config"
	"campus-clubs-go/internal/db"
	clubdomain "campus-clubs-go/internal/domain/club"
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

func TestListOrdersByNameWithLiveMemberCounts(t *testing.T) {
	repo := NewPostgres(openSeededDB(t))

	clubs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(clubs) != 6 {
		t.Fatalf("expected 6 clubs, got %d", len(clubs))
	}
	if clubs[0].Name != "Drama & Theatre Society" {
		t.Fatalf("expected alphabetical order, first was %q", clubs[0].Name)
	}

	counts := make(map[string]int64, len(clubs))
	for _, summary := range clubs {
		counts[summary.Name] = summary.MemberCount
	}
	if counts["Tech Innovators Club"] != 3 {
		t.Fatalf("expected 3 members in Tech Innovators Club, got %d", counts["Tech Innovators Club"])
	}
	if counts["Literary Circle"] != 1 {
		t.Fatalf("expected 1 member in Literary Circle, got %d", counts["Literary Circle"])
	}
}

func TestMemberCountFollowsTheMembersTable(t *testing.T) {
	gormDB := openSeededDB(t)
	repo := NewPostgres(gormDB)

	if err := gormDB.Exec("DELETE FROM members WHERE club_id = ?", 1).Error; err != nil {
		t.Fatalf("delete members: %v", err)
	}

	clubs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, summary := range clubs {
		if summary.Name == "Tech Innovators Club" && summary.MemberCount != 0 {
			t.Fatalf("expected live count 0 after deletes, got %d", summary.MemberCount)
		}
	}
}

func TestListByCategoryFilters(t *testing.T) {
	repo := NewPostgres(openSeededDB(t))

	clubs, err := repo.ListByCategory(context.Background(), "Technology")
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(clubs) != 1 || clubs[0].Name != "Tech Innovators Club" {
		t.Fatalf("unexpected Technology clubs: %+v", clubs)
	}
}

func TestGetMissingClubReturnsNotFound(t *testing.T) {
	repo := NewPostgres(openSeededDB(t))

	if _, err := repo.Get(context.Background(), 999999); !errors.Is(err, clubdomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	result, err := repo.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if result.Name != "Drama & Theatre Society" {
		t.Fatalf("unexpected club: %+v", result)
	}
}

func TestCategoriesAreDistinctAndSorted(t *testing.T) {
	repo := NewPostgres(openSeededDB(t))

	categories, err := repo.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	want := []string{
		"Arts & Media",
		"Engineering & Innovation",
		"Literature & Writing",
		"Performing Arts",
		"Social & Environment",
		"Technology",
	}
	if len(categories) != len(want) {
		t.Fatalf("expected %d categories, got %d: %v", len(want), len(categories), categories)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Fatalf("expected %q at %d, got %q", want[i], i, categories[i])
		}
	}
}

func TestStatsCountsTheSeedDataset(t *testing.T) {
	repo := NewPostgres(openSeededDB(t))

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalClubs != 6 {
		t.Fatalf("expected 6 clubs, got %d", stats.TotalClubs)
	}
	if stats.TotalMembers != 11 {
		t.Fatalf("expected 11 members, got %d", stats.TotalMembers)
	}
	if stats.UpcomingEvents != 7 {
		t.Fatalf("expected 7 upcoming events, got %d", stats.UpcomingEvents)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	repo := NewPostgres(openSeededDB(t))

	clubs, err := repo.Search(context.Background(), "TECH")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(clubs) != 1 || clubs[0].Name != "Tech Innovators Club" {
		t.Fatalf("unexpected search results: %+v", clubs)
	}

	clubs, err = repo.Search(context.Background(), "sustainable")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(clubs) != 1 || clubs[0].Name != "Green Earth Environmental Club" {
		t.Fatalf("expected description match, got %+v", clubs)
	}
}
