package client

import (
	"context"

	domain "github.com/BruksfildServices01/client-tracker/internal/domain/client"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/session"
)

// ExportClients devolve o escopo base, sem busca nem filtro de hoje
type ExportClients struct {
	repo domain.Repository
}

func NewExportClients(repo domain.Repository) *ExportClients {
	return &ExportClients{repo: repo}
}

func (uc *ExportClients) Execute(
	ctx context.Context,
	s session.Session,
) ([]models.Client, error) {
	return uc.repo.List(ctx, domain.Query{Scope: scopeFor(s)})
}
