package controller

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"dress-diary/models"
	"dress-diary/service"
)

// ImportController handles Drive imports of clothing photos
type ImportController struct {
	imports *service.ImportService
}

// NewImportController creates a new ImportController
func NewImportController(imports *service.ImportService) *ImportController {
	return &ImportController{imports: imports}
}

// ImportDrive handles POST /imports/drive
func (c *ImportController) ImportDrive(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "ImportDrive")
	if !ok {
		return
	}

	var req models.DriveImportRequest
	if !decodeBody(w, r, "ImportDrive", &req) {
		return
	}
	folderID := strings.TrimSpace(req.FolderID)
	if folderID == "" {
		badRequest(w, "ImportDrive", "folderId is required")
		return
	}

	log.Infof("📥 Import request received for folder: %s", folderID)
	result, err := c.imports.ImportFolder(r.Context(), user, folderID)
	if err != nil {
		writeError(w, "ImportDrive", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
