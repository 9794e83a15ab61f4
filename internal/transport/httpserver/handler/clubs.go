package handler

import (
	"net/http"
	"strings"

	clubdomain "campus-clubs-go/internal/domain/club"
	memberdomain "campus-clubs-go/internal/domain/member"
)

type clubResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	FullDescription string `json:"full_description"`
	Logo            string `json:"logo"`
	MeetingTime     string `json:"meeting_time"`
	MeetingLocation string `json:"meeting_location"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	PresidentName   string `json:"president_name"`
	FoundedYear     int    `json:"founded_year"`
}

type clubSummaryResponse struct {
	clubResponse
	MemberCount int64 `json:"member_count"`
}

type statsResponse struct {
	TotalClubs     int64 `json:"total_clubs"`
	TotalMembers   int64 `json:"total_members"`
	UpcomingEvents int64 `json:"upcoming_events"`
}

type memberResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Photo      string `json:"photo"`
	Bio        string `json:"bio"`
	Year       string `json:"year"`
	Department string `json:"department"`
	Email      string `json:"email"`
	JoinedDate string `json:"joined_date"`
}

type homeResponse struct {
	Stats statsResponse         `json:"stats"`
	Clubs []clubSummaryResponse `json:"clubs"`
}

type clubListResponse struct {
	Clubs            []clubSummaryResponse `json:"clubs"`
	Categories       []string              `json:"categories"`
	SelectedCategory string                `json:"selected_category"`
}

type clubDetailResponse struct {
	Club    clubResponse        `json:"club"`
	Members []memberResponse    `json:"members"`
	Events  []eventResponse     `json:"events"`
	Gallery []clubPhotoResponse `json:"gallery"`
}

// Home serves the overview page payload: site stats plus the full club list.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	stats := h.Clubs.Stats(r.Context())
	clubs := h.Clubs.ListClubs(r.Context())

	writeJSON(w, http.StatusOK, homeResponse{
		Stats: statsResponse{
			TotalClubs:     stats.TotalClubs,
			TotalMembers:   stats.TotalMembers,
			UpcomingEvents: stats.UpcomingEvents,
		},
		Clubs: toClubSummaries(clubs),
	})
}

// ListClubs serves the club directory, optionally filtered by category.
func (h *Handlers) ListClubs(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	writeJSON(w, http.StatusOK, clubListResponse{
		Clubs:            toClubSummaries(h.Clubs.ListByCategory(r.Context(), category)),
		Categories:       h.Clubs.Categories(r.Context()),
		SelectedCategory: category,
	})
}

// ClubDetail serves one club together with its members, next events, and
// recent gallery photos.
func (h *Handlers) ClubDetail(w http.ResponseWriter, r *http.Request) {
	clubID, err := parseIDParam(r, "clubID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid club id")
		return
	}

	clubRecord := h.Clubs.Get(r.Context(), clubID)
	if clubRecord == nil {
		h.log.BusinessError("clubs.detail: club not found", clubdomain.ErrNotFound, "club_id", clubID)
		writeError(w, http.StatusNotFound, "club_not_found", "club not found")
		return
	}

	members := h.Members.ListByClub(r.Context(), clubID)
	events := h.Events.ListByClub(r.Context(), clubID, h.limits.ClubEvents)
	photos := h.Gallery.ListByClub(r.Context(), clubID, h.limits.ClubGallery)

	memberList := make([]memberResponse, 0, len(members))
	for _, m := range members {
		memberList = append(memberList, toMemberResponse(m))
	}
	eventList := make([]eventResponse, 0, len(events))
	for _, e := range events {
		eventList = append(eventList, toEventResponse(e))
	}
	photoList := make([]clubPhotoResponse, 0, len(photos))
	for _, p := range photos {
		photoList = append(photoList, toClubPhotoResponse(p))
	}

	writeJSON(w, http.StatusOK, clubDetailResponse{
		Club:    toClubResponse(*clubRecord),
		Members: memberList,
		Events:  eventList,
		Gallery: photoList,
	})
}

func toClubResponse(c clubdomain.Club) clubResponse {
	return clubResponse{
		ID:              c.ID,
		Name:            c.Name,
		Category:        c.Category,
		Description:     c.Description,
		FullDescription: c.FullDescription,
		Logo:            c.Logo,
		MeetingTime:     c.MeetingTime,
		MeetingLocation: c.MeetingLocation,
		ContactEmail:    c.ContactEmail,
		ContactPhone:    c.ContactPhone,
		PresidentName:   c.PresidentName,
		FoundedYear:     c.FoundedYear,
	}
}

func toClubSummaries(clubs []clubdomain.Summary) []clubSummaryResponse {
	summaries := make([]clubSummaryResponse, 0, len(clubs))
	for _, c := range clubs {
		summaries = append(summaries, clubSummaryResponse{
			clubResponse: toClubResponse(c.Club),
			MemberCount:  c.MemberCount,
		})
	}
	return summaries
}

func toMemberResponse(m memberdomain.Member) memberResponse {
	joined := ""
	if !m.JoinedDate.IsZero() {
		joined = m.JoinedDate.Format("2006-01-02")
	}
	return memberResponse{
		ID:         m.ID,
		Name:       m.Name,
		Role:       m.Role,
		Photo:      m.Photo,
		Bio:        m.Bio,
		Year:       m.Year,
		Department: m.Department,
		Email:      m.Email,
		JoinedDate: joined,
	}
}
