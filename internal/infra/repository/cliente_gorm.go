package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clientes-api/internal/domain/cliente"
	"github.com/BruksfildServices01/clientes-api/internal/models"
)

type ClienteGormRepository struct {
	db *gorm.DB
}

func NewClienteGormRepository(db *gorm.DB) *ClienteGormRepository {
	return &ClienteGormRepository{db: db}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *ClienteGormRepository) FindAll(
	ctx context.Context,
) ([]models.Cliente, error) {

	var clientes []models.Cliente
	if err := r.db.WithContext(ctx).Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

func (r *ClienteGormRepository) FindPage(
	ctx context.Context,
	page int,
	size int,
) (domain.Page, error) {

	out := domain.Page{Number: page, Size: size}

	if err := r.db.WithContext(ctx).
		Model(&models.Cliente{}).
		Count(&out.Total).Error; err != nil {
		return domain.Page{}, err
	}

	// compara com o total de páginas para não multiplicar page*size
	if size <= 0 || int64(page) >= (out.Total+int64(size)-1)/int64(size) {
		out.Content = []models.Cliente{}
		return out, nil
	}

	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(size).
		Offset(page * size).
		Find(&out.Content).Error; err != nil {
		return domain.Page{}, err
	}

	return out, nil
}

func (r *ClienteGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Cliente, error) {

	var cliente models.Cliente
	err := r.db.WithContext(ctx).First(&cliente, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *ClienteGormRepository) Save(
	ctx context.Context,
	c models.Cliente,
) (models.Cliente, error) {

	db := r.db.WithContext(ctx)

	var err error
	if c.ID == 0 {
		err = db.Create(&c).Error
	} else {
		err = db.Save(&c).Error
	}
	if err != nil {
		return models.Cliente{}, err
	}
	return c, nil
}

func (r *ClienteGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Cliente{}, id).Error
}

// Compile-time check
var _ domain.Repository = (*ClienteGormRepository)(nil)
