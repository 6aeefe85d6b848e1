package kv

import "context"

// Store es el almacenamiento durable clave/valor que comparten la sesión
// y el historial de servicios. Los valores son JSON serializado.
type Store interface {
	// Get devuelve (valor, true, nil) si la clave existe,
	// (nil, false, nil) si no existe, y error solo en fallas de I/O.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set escribe una sola clave.
	Set(ctx context.Context, key string, value []byte) error

	// SetMany escribe varias claves de forma atómica: o se persisten
	// todas o ninguna. Evita dejar sesión y ledger inconsistentes
	// si el proceso muere entre escrituras.
	SetMany(ctx context.Context, entries map[string][]byte) error

	// Remove borra las claves indicadas de forma atómica.
	// Borrar una clave inexistente no es error.
	Remove(ctx context.Context, keys ...string) error
}
