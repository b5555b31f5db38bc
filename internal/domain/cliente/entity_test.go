package cliente_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clientes-api/internal/domain/cliente"
	"github.com/BruksfildServices01/clientes-api/internal/models"
)

func TestApplyUpdateKeepsIDAndFoto(t *testing.T) {
	old := models.NewDate(2020, time.January, 2)
	current := models.Cliente{
		ID:       3,
		Nombre:   "Andres",
		Apellido: "Guzman",
		Email:    "andres@mail.com",
		CreateAt: &old,
		Foto:     "abc_foto.png",
	}

	newDate := models.NewDate(2024, time.May, 6)
	in := models.Cliente{
		ID:       99,
		Nombre:   "Maria",
		Apellido: "Lopez",
		Email:    "maria@mail.com",
		CreateAt: &newDate,
		Foto:     "other.png",
	}

	got := domain.ApplyUpdate(current, in)

	assert.Equal(t, uint(3), got.ID)
	assert.Equal(t, "abc_foto.png", got.Foto)
	assert.Equal(t, "Maria", got.Nombre)
	assert.Equal(t, "Lopez", got.Apellido)
	assert.Equal(t, "maria@mail.com", got.Email)
	require.NotNil(t, got.CreateAt)
	assert.Equal(t, "2024-05-06", got.CreateAt.String())

	// a data é copiada, não compartilhada
	assert.NotSame(t, in.CreateAt, got.CreateAt)
	assert.Equal(t, "2020-01-02", current.CreateAt.String())
}

func TestReplaceFoto(t *testing.T) {
	c := models.Cliente{ID: 1}

	assert.Equal(t, "", domain.ReplaceFoto(&c, "a.png"))
	assert.Equal(t, "a.png", c.Foto)
	assert.True(t, c.HasFoto())

	assert.Equal(t, "a.png", domain.ReplaceFoto(&c, "b.png"))
	assert.Equal(t, "b.png", c.Foto)
}
