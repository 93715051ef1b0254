package domain

import "errors"

// Errores de dominio de la capa de datos (sin dependencias externas).
//
// Los tres primeros los clasifica el adaptador de transporte; el controlador
// de refresco los convierte en sustitución silenciosa por datos mock, así que
// el único error visible para el usuario final es ErrAggregation.
var (
	ErrTransport   = errors.New("fallo de red o respuesta no-2xx del upstream")
	ErrTimeout     = errors.New("la llamada al upstream excedió el límite de tiempo")
	ErrDecode      = errors.New("el cuerpo de la respuesta no es JSON válido")
	ErrAggregation = errors.New("invariante violado durante la agregación")
)
