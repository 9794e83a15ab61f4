package handler

import (
	"net/http"

	eventdomain "campus-clubs-go/internal/domain/event"
)

type eventResponse struct {
	ID          uint   `json:"id"`
	ClubID      uint   `json:"club_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	EventTime   string `json:"event_time"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Status      string `json:"status"`
}

type eventWithClubResponse struct {
	eventResponse
	ClubName string `json:"club_name"`
	Category string `json:"category"`
}

type eventListResponse struct {
	Events []eventWithClubResponse `json:"events"`
}

// ListEvents serves every upcoming event across all clubs.
func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	events := h.Events.ListUpcoming(r.Context())
	writeJSON(w, http.StatusOK, eventListResponse{Events: toEventsWithClub(events)})
}

func toEventResponse(e eventdomain.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		ClubID:      e.ClubID,
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.StartsAt.Format("2006-01-02"),
		EventTime:   e.StartsAt.Format("3:04 PM"),
		Location:    e.Location,
		Image:       e.Image,
		Status:      e.Status,
	}
}

func toEventsWithClub(events []eventdomain.WithClub) []eventWithClubResponse {
	result := make([]eventWithClubResponse, 0, len(events))
	for _, e := range events {
		result = append(result, eventWithClubResponse{
			eventResponse: toEventResponse(e.Event),
			ClubName:      e.ClubName,
			Category:      e.ClubCategory,
		})
	}
	return result
}
