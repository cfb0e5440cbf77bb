package service

import (
	"strings"

	"filmoteca/internal/models"
)

// Política única de update parcial, compartida por films y users:
// un campo presente (no nil y, para texto, no en blanco) pisa el valor
// guardado; el resto queda intacto. No existe "unset": un update nunca
// deja un campo vacío. Duration además exige valor positivo, si no se
// descarta en silencio.

func mergeFilm(stored models.Film, in models.FilmUpdate) models.Film {
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		stored.Name = *in.Name
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) != "" {
		stored.Description = *in.Description
	}
	if in.ReleaseDate != nil && *in.ReleaseDate != "" {
		stored.ReleaseDate = *in.ReleaseDate
	}
	if in.Duration != nil && *in.Duration > 0 {
		stored.Duration = *in.Duration
	}
	if in.Mpa != nil {
		mpa := *in.Mpa
		stored.Mpa = &mpa
	}
	if in.Genres != nil {
		// reemplazo completo del set, nunca unión
		stored.Genres = append([]models.Genre(nil), (*in.Genres)...)
	}
	return stored
}

func mergeUser(stored models.User, in models.UserUpdate) models.User {
	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		stored.Email = *in.Email
	}
	if in.Login != nil && strings.TrimSpace(*in.Login) != "" {
		stored.Login = *in.Login
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		stored.Name = *in.Name
	}
	if in.Birthday != nil && *in.Birthday != "" {
		stored.Birthday = *in.Birthday
	}
	return stored
}
