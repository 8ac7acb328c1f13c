// Package apperr define el único error de dominio del servicio: un registro
// que se esperaba encontrar y no existe.
package apperr

import (
	"errors"
	"fmt"
)

// NotFoundError se mapea a HTTP 404 con Message como cuerpo.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NotFound construye un NotFoundError con mensaje formateado.
func NotFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reporta si err (o algo en su cadena) es un NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
