package models

// Cliente é o registro de cliente exposto em /api/clientes.
type Cliente struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nombre   string `gorm:"size:15;not null" json:"nombre" binding:"required,min=4,max=15"`
	Apellido string `gorm:"size:15;not null" json:"apellido" binding:"required,min=4,max=15"`
	Email    string `gorm:"size:255;not null" json:"email" binding:"required,email"`

	CreateAt *Date `gorm:"column:create_at" json:"createAt" binding:"required"`

	// Nome do arquivo no storage de fotos; vazio quando não há foto.
	Foto string `gorm:"size:255" json:"foto"`
}

func (Cliente) TableName() string {
	return "clientes"
}

// HasFoto reports whether the record references a stored photo.
func (c Cliente) HasFoto() bool {
	return c.Foto != ""
}
