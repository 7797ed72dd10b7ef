package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dress-diary/canvas"
	"dress-diary/models"
	"dress-diary/service"
)

// CompositionController exposes composition sessions over HTTP
type CompositionController struct {
	compositions *service.CompositionService
}

// NewCompositionController creates a new CompositionController
func NewCompositionController(compositions *service.CompositionService) *CompositionController {
	return &CompositionController{compositions: compositions}
}

// Open handles POST /compositions
func (c *CompositionController) Open(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "OpenComposition")
	if !ok {
		return
	}

	var req models.OpenCompositionRequest
	if !decodeBody(w, r, "OpenComposition", &req) {
		return
	}
	if req.Width <= 0 || req.Height <= 0 {
		badRequest(w, "OpenComposition", "width and height must be greater than 0")
		return
	}

	view, err := c.compositions.Open(r.Context(), user, canvas.Size{Width: req.Width, Height: req.Height})
	if err != nil {
		writeError(w, "OpenComposition", err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Get handles GET /compositions/{id}
func (c *CompositionController) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "GetComposition")
	if !ok {
		return
	}
	c.respond(w, "GetComposition")(c.compositions.View(user, chi.URLParam(r, "id")))
}

// BeginDrag handles POST /compositions/{id}/drag
func (c *CompositionController) BeginDrag(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "BeginDrag")
	if !ok {
		return
	}

	var req models.DragRequest
	if !decodeBody(w, r, "BeginDrag", &req) {
		return
	}
	c.respond(w, "BeginDrag")(c.compositions.BeginDrag(user, chi.URLParam(r, "id"), req.ItemID))
}

// CancelDrag handles POST /compositions/{id}/drag/cancel
func (c *CompositionController) CancelDrag(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "CancelDrag")
	if !ok {
		return
	}
	c.respond(w, "CancelDrag")(c.compositions.CancelDrag(user, chi.URLParam(r, "id")))
}

// Drop handles POST /compositions/{id}/drop
func (c *CompositionController) Drop(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "Drop")
	if !ok {
		return
	}

	var req models.DropRequest
	if !decodeBody(w, r, "Drop", &req) {
		return
	}
	c.respond(w, "Drop")(c.compositions.Drop(r.Context(), user, chi.URLParam(r, "id"), req.Payload, req.X, req.Y))
}

// RemovePlacement handles DELETE /compositions/{id}/placements/{itemId}
func (c *CompositionController) RemovePlacement(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "RemovePlacement")
	if !ok {
		return
	}
	itemID, ok := intParam(w, r, "RemovePlacement", "itemId")
	if !ok {
		return
	}
	c.respond(w, "RemovePlacement")(c.compositions.RemovePlacement(user, chi.URLParam(r, "id"), itemID))
}

// Reload handles POST /compositions/{id}/reload
func (c *CompositionController) Reload(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "ReloadComposition")
	if !ok {
		return
	}
	c.respond(w, "ReloadComposition")(c.compositions.Reload(r.Context(), user, chi.URLParam(r, "id")))
}

// SetPalette handles PUT /compositions/{id}/palette
func (c *CompositionController) SetPalette(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "SetPalette")
	if !ok {
		return
	}

	var req models.PaletteRequest
	if !decodeBody(w, r, "SetPalette", &req) {
		return
	}
	c.respond(w, "SetPalette")(c.compositions.SetPalette(user, chi.URLParam(r, "id"), req.Open))
}

// Save handles POST /compositions/{id}/save
func (c *CompositionController) Save(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "SaveComposition")
	if !ok {
		return
	}

	var req models.SaveCompositionRequest
	if !decodeBody(w, r, "SaveComposition", &req) {
		return
	}

	outfitID, err := c.compositions.Save(r.Context(), user, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, "SaveComposition", err)
		return
	}
	writeJSON(w, http.StatusCreated, models.SaveCompositionResponse{OutfitID: outfitID})
}

// Abandon handles DELETE /compositions/{id}
func (c *CompositionController) Abandon(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "AbandonComposition")
	if !ok {
		return
	}

	if err := c.compositions.Abandon(user, chi.URLParam(r, "id")); err != nil {
		writeError(w, "AbandonComposition", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respond writes the session view or the mapped error
func (c *CompositionController) respond(w http.ResponseWriter, op string) func(*models.CompositionView, error) {
	return func(view *models.CompositionView, err error) {
		if err != nil {
			writeError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}
