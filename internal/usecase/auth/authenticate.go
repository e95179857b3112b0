package auth

import (
	"context"

	domain "github.com/BruksfildServices01/client-tracker/internal/domain/user"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/session"
)

// Authenticate é usado pelo middleware: valida o token, checa revogação
// e recarrega o usuário do banco a cada requisição
type Authenticate struct {
	users   domain.Repository
	tokens  *session.TokenManager
	revoker session.Revoker
}

func NewAuthenticate(
	users domain.Repository,
	tokens *session.TokenManager,
	revoker session.Revoker,
) *Authenticate {
	return &Authenticate{users: users, tokens: tokens, revoker: revoker}
}

func (uc *Authenticate) Execute(ctx context.Context, token string) (session.Session, error) {
	if token == "" {
		return session.Session{}, session.ErrInvalidToken
	}

	s, _, err := uc.tokens.Parse(token)
	if err != nil {
		return session.Session{}, err
	}

	revoked, err := uc.revoker.IsRevoked(ctx, s.ID)
	if err != nil {
		return session.Session{}, err
	}
	if revoked {
		return session.Session{}, session.ErrInvalidToken
	}

	// --------------------------------------------------
	// Usuário apagado perde a sessão; papel e dados vêm do banco
	// --------------------------------------------------
	u, err := uc.users.GetByID(ctx, s.UserID)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return session.Session{}, session.ErrInvalidToken
		}
		return session.Session{}, err
	}

	role, ok := session.ParseRole(u.Role)
	if !ok {
		role = session.RoleUser
	}

	s.Username = u.Username
	s.EmployeeID = u.EmployeeID
	s.Role = role
	return s, nil
}
