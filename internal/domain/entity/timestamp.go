package entity

import (
	"strings"
	"time"
)

// Formatos de timestamp aceptados del upstream: ISO-8601 con o sin zona,
// y fecha calendario a secas.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp interpreta un timestamp del feed. El segundo valor es false
// si la cadena no encaja en ningún formato aceptado.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateOf devuelve el prefijo YYYY-MM-DD de un timestamp; es la clave de
// agrupación diaria del agregador de tendencias.
func DateOf(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 {
		return ts[:i]
	}
	if i := strings.IndexByte(ts, ' '); i >= 0 {
		return ts[:i]
	}
	return ts
}

// HourOf devuelve la hora del día [0,23] del timestamp, o false si no parsea.
func HourOf(ts string) (int, bool) {
	t, ok := ParseTimestamp(ts)
	if !ok {
		return 0, false
	}
	return t.Hour(), true
}
