package handler

import (
	"net/http"
	"strings"
)

type searchResponse struct {
	Query  string                  `json:"query"`
	Clubs  []clubSummaryResponse   `json:"clubs"`
	Events []eventWithClubResponse `json:"events"`
}

// Search matches clubs and upcoming events on a case-insensitive substring.
// A missing query sends the caller back to the home payload, mirroring the
// site's redirect behaviour.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Redirect(w, r, "/api/home", http.StatusSeeOther)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:  query,
		Clubs:  toClubSummaries(h.Clubs.Search(r.Context(), query)),
		Events: toEventsWithClub(h.Events.Search(r.Context(), query)),
	})
}
