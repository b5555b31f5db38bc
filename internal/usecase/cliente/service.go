package cliente

import (
	"context"

	domain "github.com/BruksfildServices01/clientes-api/internal/domain/cliente"
	"github.com/BruksfildServices01/clientes-api/internal/models"
)

// Service delega ao repositório sem alterar resultados nem erros.
type Service struct {
	repo domain.Repository
}

func NewService(repo domain.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) FindAll(ctx context.Context) ([]models.Cliente, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) FindPage(ctx context.Context, page, size int) (domain.Page, error) {
	return s.repo.FindPage(ctx, page, size)
}

func (s *Service) FindByID(ctx context.Context, id uint) (*models.Cliente, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Save(ctx context.Context, c models.Cliente) (models.Cliente, error) {
	return s.repo.Save(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

var _ domain.Repository = (*Service)(nil)
