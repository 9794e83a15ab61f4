package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	clubdomain "campus-clubs-go/internal/domain/club"
	joinrequestdomain "campus-clubs-go/internal/domain/joinrequest"
)

type joinClubRequest struct {
	StudentName string `json:"student_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Year        string `json:"year"`
	Department  string `json:"department"`
	Reason      string `json:"reason"`
}

type joinClubResponse struct {
	RequestID uint   `json:"request_id"`
	ClubID    uint   `json:"club_id"`
	Message   string `json:"message"`
}

type joinRequestDetail struct {
	ID          uint      `json:"id"`
	ClubID      uint      `json:"club_id"`
	StudentName string    `json:"student_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Year        string    `json:"year"`
	Department  string    `json:"department"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type joinSuccessResponse struct {
	Request joinRequestDetail `json:"request"`
	Club    *clubResponse     `json:"club"`
}

// JoinClub accepts a join-request submission for one club. Validation
// failures and storage failures get distinct codes so a client can tell the
// student to fix the form or to try again later.
func (h *Handlers) JoinClub(w http.ResponseWriter, r *http.Request) {
	clubID, err := parseIDParam(r, "clubID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid club id")
		return
	}

	clubRecord := h.Clubs.Get(r.Context(), clubID)
	if clubRecord == nil {
		h.log.BusinessError("join.submit: club not found", clubdomain.ErrNotFound, "club_id", clubID)
		writeError(w, http.StatusNotFound, "club_not_found", "club not found")
		return
	}

	var req joinClubRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	requestID, err := h.JoinRequests.Create(r.Context(), joinrequestdomain.CreateInput{
		ClubID:      clubID,
		StudentName: strings.TrimSpace(req.StudentName),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Year:        strings.TrimSpace(req.Year),
		Department:  strings.TrimSpace(req.Department),
		Reason:      strings.TrimSpace(req.Reason),
	})
	if err != nil {
		var invalid *joinrequestdomain.ValidationError
		if errors.As(err, &invalid) {
			h.log.BusinessError("join.submit: validation rejected", err, "club_id", clubID, "field", invalid.Field)
			writeError(w, http.StatusBadRequest, "validation_failed", invalid.Message)
			return
		}
		h.log.InternalError("join.submit: storage failed", err, "club_id", clubID)
		writeError(w, http.StatusInternalServerError, "storage_failed", "could not save your request, please try again later")
		return
	}

	writeJSON(w, http.StatusCreated, joinClubResponse{
		RequestID: requestID,
		ClubID:    clubID,
		Message:   "your request to join " + clubRecord.Name + " has been submitted",
	})
}

// JoinRequestDetail serves the confirmation view for a submitted request.
func (h *Handlers) JoinRequestDetail(w http.ResponseWriter, r *http.Request) {
	requestID, err := parseIDParam(r, "requestID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request id")
		return
	}

	request := h.JoinRequests.Get(r.Context(), requestID)
	if request == nil {
		h.log.BusinessError("join.detail: request not found", joinrequestdomain.ErrNotFound, "request_id", requestID)
		writeError(w, http.StatusNotFound, "request_not_found", "join request not found")
		return
	}

	var clubPayload *clubResponse
	if clubRecord := h.Clubs.Get(r.Context(), request.ClubID); clubRecord != nil {
		payload := toClubResponse(*clubRecord)
		clubPayload = &payload
	}

	writeJSON(w, http.StatusOK, joinSuccessResponse{
		Request: joinRequestDetail{
			ID:          request.ID,
			ClubID:      request.ClubID,
			StudentName: request.StudentName,
			Email:       request.Email,
			Phone:       request.Phone,
			Year:        request.Year,
			Department:  request.Department,
			Reason:      request.Reason,
			Status:      request.Status,
			SubmittedAt: request.SubmittedAt,
		},
		Club: clubPayload,
	})
}
