// Package testhelpers reúne fixtures usadas pelos testes dos pacotes.
package testhelpers

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/client-tracker/internal/db"
	"github.com/BruksfildServices01/client-tracker/internal/models"
)

// NewDB abre um sqlite novo, migrado, em um diretório temporário do teste
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := dbpkg.Open(filepath.Join(t.TempDir(), "test.db"), false)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// SeedUser grava um usuário com hash já pronto (sem custo de bcrypt)
func SeedUser(t *testing.T, db *gorm.DB, username, role string) models.User {
	t.Helper()

	u := models.User{
		Username:     username,
		PasswordHash: "x",
		EmployeeID:   "E-" + username,
		Role:         role,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedClient(t *testing.T, db *gorm.DB, ownerID uint, name string, nextFollow time.Time) models.Client {
	t.Helper()

	c := models.Client{
		UserID:          ownerID,
		Name:            name,
		HouseAddress:    name + " house",
		RegisterAddress: name + " register",
		FirstContact:    nextFollow.AddDate(0, 0, -14),
		NextFollow:      nextFollow,
		Notes:           "notes for " + name,
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return c
}
