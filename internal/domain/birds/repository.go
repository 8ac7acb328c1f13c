package birds

import "context"

// Repository persiste birds indexados por Name.
type Repository interface {
	// Save inserta o sobreescribe por Name.
	Save(ctx context.Context, b Bird) (Bird, error)

	// FindAll devuelve todos los birds en el orden del store.
	FindAll(ctx context.Context) ([]Bird, error)

	// FindByName devuelve ok=false si no existe.
	FindByName(ctx context.Context, name string) (Bird, bool, error)

	// FindByColor filtra por igualdad exacta de Color. Vacío si no hay matches.
	FindByColor(ctx context.Context, color string) ([]Bird, error)

	// DeleteByName es idempotente: borrar algo inexistente no es error.
	DeleteByName(ctx context.Context, name string) error
}
