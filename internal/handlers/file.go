package handlers

import (
	"net/http"

	"moviehub-be/internal/services"
)

const maxUploadSize = 32 << 20 // 32 MiB

// FileHandler handles HTTP requests for file uploads.
type FileHandler struct {
	fileService *services.FileService
}

func NewFileHandler(fileService *services.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// SaveFiles handles POST /api/files?folder=
func (h *FileHandler) SaveFiles(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		http.Error(w, "no files provided", http.StatusBadRequest)
		return
	}

	saved, err := h.fileService.Save(files, r.URL.Query().Get("folder"))
	if err != nil {
		http.Error(w, "Failed to save files: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}
