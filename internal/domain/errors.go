package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrEmptyInventory = errors.New("no hay alimentos registrados")
	ErrAIProvider     = errors.New("fallo del proveedor de IA")
)
