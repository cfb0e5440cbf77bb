package models

type Film struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ReleaseDate string  `json:"releaseDate"` // YYYY-MM-DD
	Duration    int     `json:"duration"`
	Mpa         *Mpa    `json:"mpa,omitempty"`
	Genres      []Genre `json:"genres"`
	Likes       []int   `json:"likes"` // ids de usuarios, sin duplicados
}

// FilmUpdate lleva los campos opcionales de un update parcial.
// nil = no tocar ese campo.
type FilmUpdate struct {
	ID          int
	Name        *string
	Description *string
	ReleaseDate *string
	Duration    *int
	Mpa         *Mpa
	Genres      *[]Genre
}
