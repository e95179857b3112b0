package client

import (
	"context"
	"time"

	"github.com/BruksfildServices01/client-tracker/internal/models"
)

// Scope limita as consultas ao dono; OwnerID nil = todos (admin)
type Scope struct {
	OwnerID *uint
}

type Query struct {
	Scope Scope

	Search string

	// janela [DueFrom, DueTo) para next_follow; zero = sem filtro
	DueFrom time.Time
	DueTo   time.Time
}

type Repository interface {
	List(ctx context.Context, q Query) ([]models.Client, error)

	CountDue(
		ctx context.Context,
		scope Scope,
		from time.Time,
		to time.Time,
	) (int64, error)

	GetByID(ctx context.Context, id uint) (*models.Client, error)

	Create(ctx context.Context, c *models.Client) error
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id uint) error
}
