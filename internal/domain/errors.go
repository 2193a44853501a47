package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUsernameExists    = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError lleva el diagnóstico de un ajuste rechazado: la cantidad
// actual y el delta solicitado se devuelven al caller (no contienen nada sensible).
// Unwrap permite errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	Current   int64 // cantidad actual del registro
	Requested int64 // ajuste solicitado (negativo en salidas)
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("no hay suficiente stock: stock actual %d, ajuste solicitado %d", e.Current, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
