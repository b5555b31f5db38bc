package cliente

import "github.com/BruksfildServices01/clientes-api/internal/models"

// ===============================
// Domain Actions
// ===============================

// ApplyUpdate copies the mutable fields of in onto current. ID and Foto are
// kept from current.
func ApplyUpdate(current, in models.Cliente) models.Cliente {
	current.Nombre = in.Nombre
	current.Apellido = in.Apellido
	current.Email = in.Email
	current.CreateAt = nil
	if in.CreateAt != nil {
		d := *in.CreateAt
		current.CreateAt = &d
	}
	return current
}

// ReplaceFoto points the record at a new photo and returns the name of the
// one it replaced, or "" when there was none.
func ReplaceFoto(c *models.Cliente, name string) (previous string) {
	previous = c.Foto
	c.Foto = name
	return previous
}
