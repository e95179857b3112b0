package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/client-tracker/internal/audit"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/session"
	"github.com/BruksfildServices01/client-tracker/internal/validators"
	"github.com/BruksfildServices01/client-tracker/pkg/logger"
)

// UserInput são os campos do formulário de funcionário
type UserInput struct {
	Username   string
	Password   string
	EmployeeID string
	Role       string
}

func requireAdmin(s session.Session) error {
	if !s.IsAdmin() {
		return httperr.ErrForbidden
	}
	return nil
}

// parsedInput são os campos já normalizados (sem espaços nas pontas)
type parsedInput struct {
	Username   string
	EmployeeID string
	Role       session.Role
	Password   string
}

func parseInput(in UserInput) (parsedInput, error) {
	p := parsedInput{
		Username:   strings.TrimSpace(in.Username),
		EmployeeID: strings.TrimSpace(in.EmployeeID),
		Password:   strings.TrimSpace(in.Password),
	}
	if !validators.IsUsernameValid(p.Username) {
		return parsedInput{}, httperr.ErrValidation
	}
	if !validators.FitsLength(p.EmployeeID, validators.MaxEmployeeIDLen) {
		return parsedInput{}, httperr.ErrValidation
	}
	role, ok := session.ParseRole(in.Role)
	if !ok {
		return parsedInput{}, httperr.ErrValidation
	}
	p.Role = role
	return p, nil
}

func record(ctx context.Context, rec audit.Recorder, ev audit.Event) {
	if err := rec.Record(ctx, ev); err != nil {
		log := logger.Get()
		log.Warn().Err(err).Str("action", ev.Action).Msg("audit record failed")
	}
}
