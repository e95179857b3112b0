package user

import (
	"context"

	"github.com/BruksfildServices01/client-tracker/internal/models"
)

const (
	BootstrapUsername   = "admin"
	BootstrapPassword   = "123456"
	BootstrapEmployeeID = "A000"
)

type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsUsername(ctx context.Context, username string, exceptID uint) (bool, error)

	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error

	// DeleteReassigning remove o usuário e transfere os clientes dele para newOwnerID
	DeleteReassigning(ctx context.Context, id uint, newOwnerID uint) error
}
