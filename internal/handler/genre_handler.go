package handler

import (
	"net/http"
	"strconv"

	"filmoteca/internal/models"
	"filmoteca/internal/service"

	"github.com/go-chi/chi/v5"
)

type GenreHandler struct {
	svc *service.GenreService
}

func NewGenreHandler(s *service.GenreService) *GenreHandler { return &GenreHandler{svc: s} }

// @Summary Listar géneros
// @Tags genres
// @Produce json
// @Router /genres [get]
func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if genres == nil {
		genres = []models.Genre{}
	}
	writeJSON(w, http.StatusOK, genres)
}

// @Summary Obtener género por id
// @Tags genres
// @Produce json
// @Param id path int true "genreId"
// @Router /genres/{id} [get]
func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	g, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}
