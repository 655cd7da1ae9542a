package settings

import "context"

type Repository interface {
	// Upsert inserta o actualiza por Key y devuelve la fila resultante.
	Upsert(ctx context.Context, s Setting) (Setting, error)
	GetByKey(ctx context.Context, key string) (Setting, error)
	// List ordena por key; group vacío = todos.
	List(ctx context.Context, group Group) ([]Setting, error)
}
