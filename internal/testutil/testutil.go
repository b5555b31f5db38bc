// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/clientes-api/internal/db"
	"github.com/BruksfildServices01/clientes-api/internal/models"
)

// NewDB opens a migrated in-memory SQLite database private to t.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// uma conexão só: cada conexão :memory: é um banco diferente
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func Cliente(nombre, apellido, email string, date models.Date) models.Cliente {
	return models.Cliente{
		Nombre:   nombre,
		Apellido: apellido,
		Email:    email,
		CreateAt: &date,
	}
}
