package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"dress-diary/collage"
	"dress-diary/models"
	"dress-diary/repository"
	"dress-diary/service"
)

const maxPreviewSpan = 2048

// OutfitController handles HTTP requests for saved outfits
type OutfitController struct {
	outfits *service.OutfitService
}

// NewOutfitController creates a new OutfitController
func NewOutfitController(outfits *service.OutfitService) *OutfitController {
	return &OutfitController{outfits: outfits}
}

// ListOutfits handles GET /outfits?season=..
func (c *OutfitController) ListOutfits(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "ListOutfits")
	if !ok {
		return
	}

	season := strings.TrimSpace(r.URL.Query().Get("season"))
	outfits, err := c.outfits.List(r.Context(), user, season)
	if err != nil {
		writeError(w, "ListOutfits", err)
		return
	}

	resp := make([]models.OutfitResponse, 0, len(outfits))
	for _, outfit := range outfits {
		resp = append(resp, models.NewOutfitResponse(outfit))
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteOutfit handles DELETE /outfits/{id}
func (c *OutfitController) DeleteOutfit(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "DeleteOutfit")
	if !ok {
		return
	}

	if err := c.outfits.Delete(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		writeError(w, "DeleteOutfit", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Preview handles GET /outfits/{id}/preview.png?span=N
func (c *OutfitController) Preview(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "Preview")
	if !ok {
		return
	}

	span := collage.DefaultSpan
	if raw := r.URL.Query().Get("span"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 || v > maxPreviewSpan {
			badRequest(w, "Preview", "span must be an integer between 1 and %d", maxPreviewSpan)
			return
		}
		span = v
	}

	data, err := c.outfits.Preview(r.Context(), user, chi.URLParam(r, "id"), span)
	if err != nil {
		writeError(w, "Preview", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// TodaySuggestion handles GET /suggestion/today
func (c *OutfitController) TodaySuggestion(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "TodaySuggestion")
	if !ok {
		return
	}

	outfit, found, err := c.outfits.TodaySuggestion(r.Context(), user)
	if err != nil {
		writeError(w, "TodaySuggestion", err)
		return
	}
	if !found {
		writeError(w, "TodaySuggestion", repository.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, models.NewOutfitResponse(outfit))
}
