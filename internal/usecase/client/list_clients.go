package client

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/client-tracker/internal/domain/client"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/session"
	"github.com/BruksfildServices01/client-tracker/internal/timezone"
)

type ListFilter struct {
	Search   string
	DueToday bool
}

type ListResult struct {
	Clients []models.Client

	// TodayCount ignora a busca, mas respeita o escopo do usuário
	TodayCount int64
	Today      time.Time
}

type ListClients struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListClients(repo domain.Repository, loc *time.Location) *ListClients {
	return &ListClients{
		repo: repo,
		now:  clockIn(loc),
	}
}

func (uc *ListClients) Execute(
	ctx context.Context,
	s session.Session,
	f ListFilter,
) (*ListResult, error) {

	scope := scopeFor(s)
	today := uc.now()
	from, to := timezone.DayRange(today)

	q := domain.Query{
		Scope:  scope,
		Search: strings.TrimSpace(f.Search),
	}
	if f.DueToday {
		q.DueFrom, q.DueTo = from, to
	}

	clients, err := uc.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	count, err := uc.repo.CountDue(ctx, scope, from, to)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Clients:    clients,
		TodayCount: count,
		Today:      today,
	}, nil
}
