package cliente

import (
	"context"

	"github.com/BruksfildServices01/clientes-api/internal/models"
)

// PageSize é o tamanho fixo das páginas em /clientes/page/{page}.
const PageSize = 4

// Page is one zero-based slice of the clientes table.
type Page struct {
	Content []models.Cliente
	Number  int
	Size    int
	Total   int64
}

// Repository is the persistence boundary for clientes. FindByID returns
// (nil, nil) when the id does not exist; every returned error is a store
// failure.
type Repository interface {
	FindAll(ctx context.Context) ([]models.Cliente, error)

	FindPage(
		ctx context.Context,
		page int,
		size int,
	) (Page, error)

	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Cliente, error)

	// Save inserts when ID is zero and updates in place otherwise.
	Save(
		ctx context.Context,
		c models.Cliente,
	) (models.Cliente, error)

	Delete(
		ctx context.Context,
		id uint,
	) error
}
