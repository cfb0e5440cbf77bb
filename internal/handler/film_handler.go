package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"filmoteca/internal/models"
	"filmoteca/internal/service"

	"github.com/go-chi/chi/v5"
)

// fecha del primer corto de los Lumière: ningún film puede ser anterior
var minReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

const maxDescriptionLen = 200

type FilmHandler struct {
	svc *service.FilmService
}

func NewFilmHandler(s *service.FilmService) *FilmHandler { return &FilmHandler{svc: s} }

type filmUpdateRequest struct {
	ID          *int            `json:"id"`
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	ReleaseDate *string         `json:"releaseDate"`
	Duration    *int            `json:"duration"`
	Mpa         *models.Mpa     `json:"mpa"`
	Genres      *[]models.Genre `json:"genres"`
}

// @Summary Listar films
// @Tags films
// @Produce json
// @Router /films [get]
func (h *FilmHandler) List(w http.ResponseWriter, r *http.Request) {
	films, err := h.svc.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if films == nil {
		films = []models.Film{}
	}
	writeJSON(w, http.StatusOK, films)
}

// @Summary Obtener film por id
// @Tags films
// @Produce json
// @Param id path int true "filmId"
// @Router /films/{id} [get]
func (h *FilmHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	film, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, film)
}

// @Summary Crear film
// @Tags films
// @Accept json
// @Produce json
// @Param body body models.Film true "film"
// @Success 201
// @Router /films [post]
func (h *FilmHandler) Create(w http.ResponseWriter, r *http.Request) {
	var film models.Film
	if err := json.NewDecoder(r.Body).Decode(&film); err != nil {
		writeError(w, models.NewValidation("body inválido: %v", err))
		return
	}

	if err := validateFilmCreate(film); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.svc.Create(r.Context(), film)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// @Summary Actualizar film (update parcial)
// @Tags films
// @Accept json
// @Produce json
// @Param body body filmUpdateRequest true "film"
// @Router /films [put]
func (h *FilmHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req filmUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.NewValidation("body inválido: %v", err))
		return
	}
	if req.ID == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found", Message: "film id is required"})
		return
	}

	if err := validateFilmUpdate(req); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), models.FilmUpdate{
		ID:          *req.ID,
		Name:        req.Name,
		Description: req.Description,
		ReleaseDate: req.ReleaseDate,
		Duration:    req.Duration,
		Mpa:         req.Mpa,
		Genres:      req.Genres,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// @Summary Dar like
// @Tags films
// @Param id path int true "filmId"
// @Param userId path int true "userId"
// @Success 204
// @Router /films/{id}/like/{userId} [put]
func (h *FilmHandler) AddLike(w http.ResponseWriter, r *http.Request) {
	filmID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	userID, _ := strconv.Atoi(chi.URLParam(r, "userId"))

	if err := h.svc.AddLike(r.Context(), filmID, userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Quitar like
// @Tags films
// @Param id path int true "filmId"
// @Param userId path int true "userId"
// @Success 204
// @Router /films/{id}/like/{userId} [delete]
func (h *FilmHandler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	filmID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	userID, _ := strconv.Atoi(chi.URLParam(r, "userId"))

	if err := h.svc.RemoveLike(r.Context(), filmID, userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Films más populares
// @Tags films
// @Produce json
// @Param count query int false "cuántos devolver (default 10)"
// @Router /films/popular [get]
func (h *FilmHandler) Popular(w http.ResponseWriter, r *http.Request) {
	count := 10
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, models.NewValidation("count inválido: %q", v))
			return
		}
		count = n
	}

	films, err := h.svc.GetPopular(r.Context(), count)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, films)
}

/* --------- validación de entrada --------- */

func validateFilmCreate(f models.Film) error {
	if strings.TrimSpace(f.Name) == "" {
		return models.NewValidation("el nombre del film no puede estar vacío")
	}
	if strings.TrimSpace(f.Description) == "" {
		return models.NewValidation("la descripción no puede estar vacía")
	}
	if len(f.Description) > maxDescriptionLen {
		return models.NewValidation("la descripción supera los %d caracteres", maxDescriptionLen)
	}
	if err := validateReleaseDate(f.ReleaseDate, true); err != nil {
		return err
	}
	if f.Duration <= 0 {
		return models.NewValidation("la duración debe ser mayor que 0")
	}
	return nil
}

func validateFilmUpdate(req filmUpdateRequest) error {
	if req.Description != nil && len(*req.Description) > maxDescriptionLen {
		return models.NewValidation("la descripción supera los %d caracteres", maxDescriptionLen)
	}
	if req.ReleaseDate != nil && *req.ReleaseDate != "" {
		return validateReleaseDate(*req.ReleaseDate, false)
	}
	return nil
}

func validateReleaseDate(value string, required bool) error {
	if value == "" {
		if required {
			return models.NewValidation("hay que indicar la fecha de estreno")
		}
		return nil
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return models.NewValidation("fecha de estreno inválida: %q", value)
	}
	if d.Before(minReleaseDate) {
		return models.NewValidation("la fecha de estreno no puede ser anterior al 1895-12-28")
	}
	return nil
}
