package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"dress-diary/service"
)

// validFormats is a map of valid lookbook format values
var validFormats = map[string]bool{
	"html": true,
	"pdf":  true,
}

// LookbookController renders the lookbook of the active user
type LookbookController struct {
	lookbook *service.LookbookService
}

// NewLookbookController creates a new LookbookController
func NewLookbookController(lookbook *service.LookbookService) *LookbookController {
	return &LookbookController{lookbook: lookbook}
}

// Lookbook handles GET /lookbook?format=html|pdf
func (c *LookbookController) Lookbook(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "Lookbook")
	if !ok {
		return
	}

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = "html"
	}
	if !validFormats[format] {
		badRequest(w, "Lookbook", "Invalid format. Valid formats: html, pdf")
		return
	}

	if format == "html" {
		html, err := c.lookbook.RenderHTML(r.Context(), user)
		if err != nil {
			writeError(w, "Lookbook", err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))
		return
	}

	pdf, err := c.lookbook.GeneratePDF(r.Context(), user)
	if err != nil {
		writeError(w, "Lookbook", err)
		return
	}

	log.Infof("📦 Lookbook: sending %d byte PDF to %s", len(pdf), user)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", user+"-lookbook.pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
