package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrKeyNotFound  = errors.New("clave no encontrada en el almacén")
	ErrInvalidInput = errors.New("entrada inválida")
)
