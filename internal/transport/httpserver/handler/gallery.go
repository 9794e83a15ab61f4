package handler

import (
	"net/http"
	"time"

	gallerydomain "campus-clubs-go/internal/domain/gallery"
)

type clubPhotoResponse struct {
	ID         uint      `json:"id"`
	EventID    uint      `json:"event_id"`
	ImagePath  string    `json:"image_path"`
	Caption    string    `json:"caption"`
	UploadedAt time.Time `json:"uploaded_at"`
	EventTitle string    `json:"event_title"`
}

type sitePhotoResponse struct {
	clubPhotoResponse
	ClubName string `json:"club_name"`
}

type galleryResponse struct {
	Photos []sitePhotoResponse `json:"photos"`
}

// SiteGallery serves the most recent photos across all clubs.
func (h *Handlers) SiteGallery(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimitParam(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid limit")
		return
	}
	if limit == 0 {
		limit = h.limits.GalleryPage
	}

	photos := h.Gallery.ListAll(r.Context(), limit)
	result := make([]sitePhotoResponse, 0, len(photos))
	for _, p := range photos {
		result = append(result, sitePhotoResponse{
			clubPhotoResponse: clubPhotoResponse{
				ID:         p.ID,
				EventID:    p.EventID,
				ImagePath:  p.ImagePath,
				Caption:    p.Caption,
				UploadedAt: p.UploadedAt,
				EventTitle: p.EventTitle,
			},
			ClubName: p.ClubName,
		})
	}

	writeJSON(w, http.StatusOK, galleryResponse{Photos: result})
}

func toClubPhotoResponse(p gallerydomain.ClubPhoto) clubPhotoResponse {
	return clubPhotoResponse{
		ID:         p.ID,
		EventID:    p.EventID,
		ImagePath:  p.ImagePath,
		Caption:    p.Caption,
		UploadedAt: p.UploadedAt,
		EventTitle: p.EventTitle,
	}
}
