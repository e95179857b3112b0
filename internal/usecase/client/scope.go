package client

import (
	"context"
	"time"

	"github.com/BruksfildServices01/client-tracker/internal/audit"
	domain "github.com/BruksfildServices01/client-tracker/internal/domain/client"
	"github.com/BruksfildServices01/client-tracker/internal/session"
	"github.com/BruksfildServices01/client-tracker/pkg/logger"
)

// ClientInput são os campos do formulário de cliente
type ClientInput struct {
	Name            string
	HouseAddress    string
	RegisterAddress string
	Notes           string
	NextFollow      string
}

// scopeFor: admin vê todos, os demais só os próprios
func scopeFor(s session.Session) domain.Scope {
	if s.IsAdmin() {
		return domain.Scope{}
	}
	owner := s.UserID
	return domain.Scope{OwnerID: &owner}
}

func clockIn(loc *time.Location) func() time.Time {
	return func() time.Time { return time.Now().In(loc) }
}

// falha de auditoria nunca quebra a operação
func record(ctx context.Context, rec audit.Recorder, ev audit.Event) {
	if err := rec.Record(ctx, ev); err != nil {
		log := logger.Get()
		log.Warn().Err(err).Str("action", ev.Action).Msg("audit record failed")
	}
}
