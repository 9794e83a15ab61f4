package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-clubs-go/internal/config"
	"campus-clubs-go/internal/db"
	clubdomain "campus-clubs-go/internal/domain/club"
	eventdomain "campus-clubs-go/internal/domain/event"
	gallerydomain "campus-clubs-go/internal/domain/gallery"
	joinrequestdomain "campus-clubs-go/internal/domain/joinrequest"
	memberdomain "campus-clubs-go/internal/domain/member"
	clubrepo "campus-clubs-go/internal/repository/postgres/club"
	eventrepo "campus-clubs-go/internal/repository/postgres/event"
	galleryrepo "campus-clubs-go/internal/repository/postgres/gallery"
	joinrequestrepo "campus-clubs-go/internal/repository/postgres/joinrequest"
	memberrepo "campus-clubs-go/internal/repository/postgres/member"
	"campus-clubs-go/internal/transport/httpserver"
	"campus-clubs-go/internal/transport/httpserver/handler"
	"campus-clubs-go/pkg/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.New(io.Discard, slog.LevelError, "json")

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

	cfg := config.Config{
		Limits: config.LimitsConfig{ClubEvents: 5, ClubGallery: 12, GalleryPage: 50},
	}

	handlers := handler.New(
		clubdomain.NewService(clubrepo.NewPostgres(gormDB), log),
		memberdomain.NewService(memberrepo.NewPostgres(gormDB), log),
		eventdomain.NewService(eventrepo.NewPostgres(gormDB), log),
		gallerydomain.NewService(galleryrepo.NewPostgres(gormDB), log),
		joinrequestdomain.NewService(joinrequestrepo.NewPostgres(gormDB), log),
		cfg.Limits,
		log,
	)

	srv := httptest.NewServer(httpserver.NewRouter(cfg, handlers))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, wantStatus int, dst any) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("GET %s: expected status %d, got %d: %s", url, wantStatus, resp.StatusCode, body)
	}
	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			t.Fatalf("GET %s: decode: %v", url, err)
		}
	}
}

func postJSON(t *testing.T, url string, payload any, wantStatus int, dst any) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("POST %s: expected status %d, got %d: %s", url, wantStatus, resp.StatusCode, raw)
	}
	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			t.Fatalf("POST %s: decode: %v", url, err)
		}
	}
}

type errorPayload struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	var payload map[string]string
	getJSON(t, srv.URL+"/api/health", http.StatusOK, &payload)
	if payload["status"] != "ok" {
		t.Fatalf("unexpected health payload: %v", payload)
	}
}

func TestHomeShowsStatsAndClubs(t *testing.T) {
	srv := newTestServer(t)

	var payload struct {
		Stats struct {
			TotalClubs     int64 `json:"total_clubs"`
			TotalMembers   int64 `json:"total_members"`
			UpcomingEvents int64 `json:"upcoming_events"`
		} `json:"stats"`
		Clubs []struct {
			Name        string `json:"name"`
			MemberCount int64  `json:"member_count"`
		} `json:"clubs"`
	}
	getJSON(t, srv.URL+"/api/home", http.StatusOK, &payload)

	if payload.Stats.TotalClubs != 6 || payload.Stats.TotalMembers != 11 || payload.Stats.UpcomingEvents != 7 {
		t.Fatalf("unexpected stats: %+v", payload.Stats)
	}
	if len(payload.Clubs) != 6 {
		t.Fatalf("expected 6 clubs, got %d", len(payload.Clubs))
	}
	if payload.Clubs[0].Name != "Drama & Theatre Society" {
		t.Fatalf("expected alphabetical order, first was %q", payload.Clubs[0].Name)
	}
	for _, c := range payload.Clubs {
		if c.Name == "Tech Innovators Club" && c.MemberCount != 3 {
			t.Fatalf("expected live member count 3, got %d", c.MemberCount)
		}
	}
}

func TestClubListFiltersByCategory(t *testing.T) {
	srv := newTestServer(t)

	var payload struct {
		Clubs []struct {
			Name string `json:"name"`
		} `json:"clubs"`
		Categories       []string `json:"categories"`
		SelectedCategory string   `json:"selected_category"`
	}
	getJSON(t, srv.URL+"/api/clubs?category=Technology", http.StatusOK, &payload)

	if len(payload.Clubs) != 1 || payload.Clubs[0].Name != "Tech Innovators Club" {
		t.Fatalf("unexpected Technology clubs: %+v", payload.Clubs)
	}
	if len(payload.Categories) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(payload.Categories))
	}
	if payload.SelectedCategory != "Technology" {
		t.Fatalf("expected selected category echoed back, got %q", payload.SelectedCategory)
	}
}

func TestClubDetailBundlesMembersEventsAndGallery(t *testing.T) {
	srv := newTestServer(t)

	var payload struct {
		Club struct {
			Name string `json:"name"`
		} `json:"club"`
		Members []struct {
			Name string `json:"name"`
			Role string `json:"role"`
		} `json:"members"`
		Events []struct {
			Title     string `json:"title"`
			EventDate string `json:"event_date"`
			EventTime string `json:"event_time"`
		} `json:"events"`
		Gallery []struct {
			ImagePath string `json:"image_path"`
		} `json:"gallery"`
	}
	getJSON(t, srv.URL+"/api/clubs/1", http.StatusOK, &payload)

	if payload.Club.Name != "Tech Innovators Club" {
		t.Fatalf("unexpected club: %+v", payload.Club)
	}
	if len(payload.Members) != 3 || payload.Members[0].Role != "President" {
		t.Fatalf("expected 3 members with president first, got %+v", payload.Members)
	}
	if len(payload.Events) != 2 || payload.Events[0].Title != "AI/ML Workshop Series" {
		t.Fatalf("expected 2 chronological events, got %+v", payload.Events)
	}
	if payload.Events[0].EventTime != "2:00 PM" {
		t.Fatalf("expected 12-hour clock, got %q", payload.Events[0].EventTime)
	}
	if len(payload.Gallery) != 2 || payload.Gallery[0].ImagePath != "gallery/hackfest_winners.jpg" {
		t.Fatalf("expected 2 photos newest first, got %+v", payload.Gallery)
	}
}

func TestMissingClubIs404(t *testing.T) {
	srv := newTestServer(t)

	var payload errorPayload
	getJSON(t, srv.URL+"/api/clubs/999999", http.StatusNotFound, &payload)
	if payload.Error.Code != "club_not_found" {
		t.Fatalf("unexpected error code %q", payload.Error.Code)
	}
}

func TestJoinFlow(t *testing.T) {
	srv := newTestServer(t)

	form := map[string]string{
		"student_name": "Rahul Verma",
		"email":        "rahul.verma@college.edu",
		"phone":        "9876543210",
		"year":         "2nd Year",
		"department":   "Computer Science",
		"reason":       "I love building things.",
	}

	var created struct {
		RequestID uint   `json:"request_id"`
		ClubID    uint   `json:"club_id"`
		Message   string `json:"message"`
	}
	postJSON(t, srv.URL+"/api/clubs/1/join", form, http.StatusCreated, &created)
	if created.RequestID == 0 || created.ClubID != 1 {
		t.Fatalf("unexpected creation payload: %+v", created)
	}

	var confirmation struct {
		Request struct {
			StudentName string `json:"student_name"`
			Status      string `json:"status"`
		} `json:"request"`
		Club *struct {
			Name string `json:"name"`
		} `json:"club"`
	}
	getJSON(t, fmt.Sprintf("%s/api/join-requests/%d", srv.URL, created.RequestID), http.StatusOK, &confirmation)
	if confirmation.Request.StudentName != "Rahul Verma" {
		t.Fatalf("unexpected confirmation: %+v", confirmation.Request)
	}
	if confirmation.Request.Status != "pending" {
		t.Fatalf("expected pending status, got %q", confirmation.Request.Status)
	}
	if confirmation.Club == nil || confirmation.Club.Name != "Tech Innovators Club" {
		t.Fatalf("expected club on confirmation, got %+v", confirmation.Club)
	}
}

func TestJoinRejectsIncompleteForm(t *testing.T) {
	srv := newTestServer(t)

	form := map[string]string{
		"student_name": "Rahul Verma",
		"year":         "2nd Year",
		"department":   "Computer Science",
	}

	var payload errorPayload
	postJSON(t, srv.URL+"/api/clubs/1/join", form, http.StatusBadRequest, &payload)
	if payload.Error.Code != "validation_failed" {
		t.Fatalf("unexpected error code %q", payload.Error.Code)
	}
	if payload.Error.Message != "please enter your email" {
		t.Fatalf("unexpected message %q", payload.Error.Message)
	}
}

func TestJoinUnknownClubIs404(t *testing.T) {
	srv := newTestServer(t)

	form := map[string]string{
		"student_name": "Rahul Verma",
		"email":        "rahul.verma@college.edu",
		"year":         "2nd Year",
		"department":   "Computer Science",
	}

	var payload errorPayload
	postJSON(t, srv.URL+"/api/clubs/999999/join", form, http.StatusNotFound, &payload)
	if payload.Error.Code != "club_not_found" {
		t.Fatalf("unexpected error code %q", payload.Error.Code)
	}
}

func TestEventsAreChronological(t *testing.T) {
	srv := newTestServer(t)

	var payload struct {
		Events []struct {
			Title     string `json:"title"`
			EventDate string `json:"event_date"`
			EventTime string `json:"event_time"`
			ClubName  string `json:"club_name"`
		} `json:"events"`
	}
	getJSON(t, srv.URL+"/api/events", http.StatusOK, &payload)

	if len(payload.Events) != 7 {
		t.Fatalf("expected 7 events, got %d", len(payload.Events))
	}
	first := payload.Events[0]
	if first.Title != "Green Campus Drive" || first.EventDate != "2026-01-20" || first.EventTime != "7:00 AM" {
		t.Fatalf("unexpected first event: %+v", first)
	}
	if first.ClubName != "Green Earth Environmental Club" {
		t.Fatalf("expected joined club name, got %q", first.ClubName)
	}
}

func TestGalleryHonoursLimit(t *testing.T) {
	srv := newTestServer(t)

	var payload struct {
		Photos []struct {
			ImagePath string `json:"image_path"`
			ClubName  string `json:"club_name"`
		} `json:"photos"`
	}
	getJSON(t, srv.URL+"/api/gallery?limit=3", http.StatusOK, &payload)

	if len(payload.Photos) != 3 {
		t.Fatalf("expected 3 photos, got %d", len(payload.Photos))
	}
	if payload.Photos[0].ImagePath != "gallery/drama_rehearsal.jpg" {
		t.Fatalf("expected newest photo first, got %q", payload.Photos[0].ImagePath)
	}
	if payload.Photos[0].ClubName != "Drama & Theatre Society" {
		t.Fatalf("expected joined club name, got %q", payload.Photos[0].ClubName)
	}
}

func TestSearchMatchesClubsAndEvents(t *testing.T) {
	srv := newTestServer(t)

	var payload struct {
		Query string `json:"query"`
		Clubs []struct {
			Name string `json:"name"`
		} `json:"clubs"`
		Events []struct {
			Title string `json:"title"`
		} `json:"events"`
	}
	getJSON(t, srv.URL+"/api/search?q=tech", http.StatusOK, &payload)
	if len(payload.Clubs) != 1 || payload.Clubs[0].Name != "Tech Innovators Club" {
		t.Fatalf("unexpected club results: %+v", payload.Clubs)
	}
	if len(payload.Events) != 0 {
		t.Fatalf("expected no event matches for %q, got %+v", "tech", payload.Events)
	}

	getJSON(t, srv.URL+"/api/search?q=hack", http.StatusOK, &payload)
	if len(payload.Events) != 1 || payload.Events[0].Title != "HackFest 2026" {
		t.Fatalf("unexpected event results: %+v", payload.Events)
	}
}

func TestEmptySearchRedirectsHome(t *testing.T) {
	srv := newTestServer(t)

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(srv.URL + "/api/search?q=")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}
	if location := resp.Header.Get("Location"); location != "/api/home" {
		t.Fatalf("expected redirect to /api/home, got %q", location)
	}
}

func TestUnknownRouteRendersJSON404(t *testing.T) {
	srv := newTestServer(t)

	var payload errorPayload
	getJSON(t, srv.URL+"/api/nope", http.StatusNotFound, &payload)
	if payload.Error.Code != "not_found" {
		t.Fatalf("unexpected error code %q", payload.Error.Code)
	}
}
