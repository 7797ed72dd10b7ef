package controller

import (
	"net/http"

	"github.com/charmbracelet/log"

	"dress-diary/closet"
	"dress-diary/models"
	"dress-diary/service"
)

// ItemController handles HTTP requests for clothing items
type ItemController struct {
	closet *service.ClosetService
}

// NewItemController creates a new ItemController
func NewItemController(closet *service.ClosetService) *ItemController {
	return &ItemController{closet: closet}
}

// ListItems handles GET /items?color=..&material=..&category=..
// Every filter parameter may repeat; values of one parameter are OR-ed.
func (c *ItemController) ListItems(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "ListItems")
	if !ok {
		return
	}

	query := r.URL.Query()
	params := closet.FilterParams{
		Colors:     query["color"],
		Materials:  query["material"],
		Categories: closet.CategoriesFromLabels(query["category"]),
	}

	items, err := c.closet.FilteredCatalog(r.Context(), user, params)
	if err != nil {
		writeError(w, "ListItems", err)
		return
	}

	resp := make([]models.ClothingItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, models.NewClothingItemResponse(item))
	}
	writeJSON(w, http.StatusOK, resp)
}

// FilterOptions handles GET /items/filters
func (c *ItemController) FilterOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.closet.FilterOptions())
}

// GetImage handles GET /items/{id}/image
func (c *ItemController) GetImage(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "GetImage")
	if !ok {
		return
	}
	id, ok := intParam(w, r, "GetImage", "id")
	if !ok {
		return
	}

	data, err := c.closet.ItemImage(r.Context(), user, id)
	if err != nil {
		writeError(w, "GetImage", err)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// CreateItem handles POST /items
func (c *ItemController) CreateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "CreateItem")
	if !ok {
		return
	}

	var draft models.ClothingItemDraft
	if !decodeBody(w, r, "CreateItem", &draft) {
		return
	}

	id, err := c.closet.AddItem(r.Context(), user, draft)
	if err != nil {
		writeError(w, "CreateItem", err)
		return
	}

	log.Infof("💾 CreateItem: saved %s %s as item %d", draft.Color, draft.Category, id)
	writeJSON(w, http.StatusCreated, models.SaveItemResponse{ID: id})
}

// DeleteItem handles DELETE /items/{id}
func (c *ItemController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "DeleteItem")
	if !ok {
		return
	}
	id, ok := intParam(w, r, "DeleteItem", "id")
	if !ok {
		return
	}

	if err := c.closet.DeleteItem(r.Context(), user, id); err != nil {
		writeError(w, "DeleteItem", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
