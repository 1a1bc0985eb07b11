package handlers

import (
	"encoding/json"
	"net/http"

	"moviehub-be/internal/models"
	"moviehub-be/internal/services"

	"github.com/gorilla/mux"
)

// GenreHandler handles HTTP requests for the genre catalog.
type GenreHandler struct {
	genreService *services.GenreService
}

func NewGenreHandler(genreService *services.GenreService) *GenreHandler {
	return &GenreHandler{genreService: genreService}
}

// CreateGenre handles POST /api/genres
func (h *GenreHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var genre models.Genre
	if err := json.NewDecoder(r.Body).Decode(&genre); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&genre); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.genreService.Create(r.Context(), &genre)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetGenres handles GET /api/genres
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.genreService.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, genres)
}

// DeleteGenre handles DELETE /api/genres/{genreID}
func (h *GenreHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.genreService.Delete(r.Context(), vars["genreID"]); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
