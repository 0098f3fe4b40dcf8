package domain

import (
	"errors"
	"fmt"
)

// ErrorKind clasifica el resultado de una operación para que los handlers
// lo traduzcan a un status HTTP sin inspeccionar errores de persistencia.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindUnauthorized
	KindConflict
	KindUnavailable
)

// MsgInvalidCredentials es el mensaje genérico para cualquier fallo de
// autenticación; no revela qué verificación falló.
const MsgInvalidCredentials = "invalid credentials provided, please try again"

// Error es el error etiquetado que los services devuelven a la capa HTTP.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extrae el ErrorKind de un error; cualquier error no etiquetado
// cuenta como interno.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// NotFoundf crea un error NotFound nombrando entidad e identificador.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized crea el error de autenticación con el mensaje genérico.
func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: MsgInvalidCredentials}
}

// Conflictf crea un error de conflicto, típicamente email duplicado.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Unavailablef crea un error por falla de persistencia nombrando la operación.
func Unavailablef(err error, format string, args ...any) *Error {
	return &Error{Kind: KindUnavailable, Message: fmt.Sprintf(format, args...), Err: err}
}

// Internal envuelve cualquier falla no clasificada.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}
