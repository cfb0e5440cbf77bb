package models

import (
	"errors"
	"fmt"
)

// NotFoundError indica que una entidad referenciada no existe.
// Se mapea a 404 en la capa HTTP.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func NewNotFound(entity string, id int) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError indica un payload inválido. Se mapea a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConsistencyError indica un edge que apunta a una entidad inexistente.
// Nunca se recupera: señal de store corrupto, se propaga como 500.
type ConsistencyError struct {
	Message string
}

func (e *ConsistencyError) Error() string { return e.Message }

func NewConsistency(format string, args ...any) error {
	return &ConsistencyError{Message: fmt.Sprintf(format, args...)}
}
