package models

type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"` // YYYY-MM-DD
}

// UserUpdate lleva los campos opcionales de un update parcial.
type UserUpdate struct {
	ID       int
	Email    *string
	Login    *string
	Name     *string
	Birthday *string
}
