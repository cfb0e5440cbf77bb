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

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler { return &UserHandler{svc: s} }

type userUpdateRequest struct {
	ID       *int    `json:"id"`
	Email    *string `json:"email"`
	Login    *string `json:"login"`
	Name     *string `json:"name"`
	Birthday *string `json:"birthday"`
}

// @Summary Listar usuarios
// @Tags users
// @Produce json
// @Router /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// @Summary Obtener usuario por id
// @Tags users
// @Produce json
// @Param id path int true "userId"
// @Router /users/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	user, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// @Summary Crear usuario
// @Tags users
// @Accept json
// @Produce json
// @Param body body models.User true "user"
// @Success 201
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, models.NewValidation("body inválido: %v", err))
		return
	}

	if err := validateUserCreate(user); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.svc.Create(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// @Summary Actualizar usuario (update parcial)
// @Tags users
// @Accept json
// @Produce json
// @Param body body userUpdateRequest true "user"
// @Router /users [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req userUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.NewValidation("body inválido: %v", err))
		return
	}
	if req.ID == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found", Message: "user id is required"})
		return
	}

	if err := validateUserUpdate(req); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), models.UserUpdate{
		ID:       *req.ID,
		Email:    req.Email,
		Login:    req.Login,
		Name:     req.Name,
		Birthday: req.Birthday,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// @Summary Agregar amigo
// @Tags users
// @Param id path int true "userId"
// @Param friendId path int true "friendId"
// @Success 204
// @Router /users/{id}/friends/{friendId} [put]
func (h *UserHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	friendID, _ := strconv.Atoi(chi.URLParam(r, "friendId"))

	if err := h.svc.AddFriend(r.Context(), userID, friendID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Quitar amigo
// @Tags users
// @Param id path int true "userId"
// @Param friendId path int true "friendId"
// @Success 204
// @Router /users/{id}/friends/{friendId} [delete]
func (h *UserHandler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	friendID, _ := strconv.Atoi(chi.URLParam(r, "friendId"))

	if err := h.svc.RemoveFriend(r.Context(), userID, friendID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Amigos del usuario
// @Tags users
// @Produce json
// @Param id path int true "userId"
// @Router /users/{id}/friends [get]
func (h *UserHandler) Friends(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	friends, err := h.svc.GetFriends(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, friends)
}

// @Summary Amigos en común de dos usuarios
// @Tags users
// @Produce json
// @Param id path int true "userId"
// @Param otherId path int true "otherId"
// @Router /users/{id}/friends/common/{otherId} [get]
func (h *UserHandler) CommonFriends(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	otherID, _ := strconv.Atoi(chi.URLParam(r, "otherId"))

	friends, err := h.svc.GetCommonFriends(r.Context(), userID, otherID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, friends)
}

/* --------- validación de entrada --------- */

func validateUserCreate(u models.User) error {
	if strings.TrimSpace(u.Email) == "" {
		return models.NewValidation("el email no puede estar vacío")
	}
	if !strings.Contains(u.Email, "@") {
		return models.NewValidation("el email debe contener @")
	}
	if err := validateLogin(u.Login); err != nil {
		return err
	}
	return validateBirthday(u.Birthday, true)
}

func validateUserUpdate(req userUpdateRequest) error {
	if req.Email != nil && *req.Email != "" && !strings.Contains(*req.Email, "@") {
		return models.NewValidation("el email debe contener @")
	}
	if req.Login != nil && *req.Login != "" {
		if err := validateLogin(*req.Login); err != nil {
			return err
		}
	}
	if req.Birthday != nil && *req.Birthday != "" {
		return validateBirthday(*req.Birthday, false)
	}
	return nil
}

func validateLogin(login string) error {
	if strings.TrimSpace(login) == "" {
		return models.NewValidation("el login no puede estar vacío")
	}
	if strings.ContainsAny(login, " \t") {
		return models.NewValidation("el login no puede contener espacios")
	}
	return nil
}

func validateBirthday(value string, required bool) error {
	if value == "" {
		if required {
			return models.NewValidation("hay que indicar la fecha de nacimiento")
		}
		return nil
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return models.NewValidation("fecha de nacimiento inválida: %q", value)
	}
	if d.After(time.Now()) {
		return models.NewValidation("la fecha de nacimiento no puede estar en el futuro")
	}
	return nil
}
