package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrAlreadyApplied      = errors.New("ya existe una postulación activa para esta vacante")
	ErrVacancyNotActive    = errors.New("la vacante no admite postulaciones")
	ErrInvalidTransition   = errors.New("transición de estado no permitida")
	ErrUpstreamUnavailable = errors.New("almacenamiento no disponible")
)

// ValidationError error de entrada con detalle por campo.
// errors.Is(err, ErrInvalidInput) es verdadero.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError crea un ValidationError con un único campo.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Add agrega (o reemplaza) el mensaje de un campo.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

// Empty indica si no se registró ningún campo inválido.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// TransitionError cambio de estado fuera de la tabla de transiciones.
// errors.Is(err, ErrInvalidTransition) es verdadero.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: de %q a %q", ErrInvalidTransition.Error(), e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
