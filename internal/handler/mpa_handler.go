package handler

import (
	"net/http"
	"strconv"

	"filmoteca/internal/models"
	"filmoteca/internal/service"

	"github.com/go-chi/chi/v5"
)

type MpaHandler struct {
	svc *service.MpaService
}

func NewMpaHandler(s *service.MpaService) *MpaHandler { return &MpaHandler{svc: s} }

// @Summary Listar ratings MPA
// @Tags mpa
// @Produce json
// @Router /mpa [get]
func (h *MpaHandler) List(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.svc.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if ratings == nil {
		ratings = []models.Mpa{}
	}
	writeJSON(w, http.StatusOK, ratings)
}

// @Summary Obtener rating MPA por id
// @Tags mpa
// @Produce json
// @Param id path int true "mpaId"
// @Router /mpa/{id} [get]
func (h *MpaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	m, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}
