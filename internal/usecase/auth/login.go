package auth

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/client-tracker/internal/domain/user"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/session"
)

type Login struct {
	users  domain.Repository
	tokens *session.TokenManager
}

func NewLogin(users domain.Repository, tokens *session.TokenManager) *Login {
	return &Login{users: users, tokens: tokens}
}

type LoginOutput struct {
	Session session.Session
	Token   string
	TTL     time.Duration
}

// Execute valida usuário e senha e emite o token da sessão
func (uc *Login) Execute(
	ctx context.Context,
	username string,
	password string,
) (*LoginOutput, error) {

	u, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return nil, httperr.ErrInvalidCredentials
		}
		return nil, err
	}

	if !domain.CheckPassword(u.PasswordHash, password) {
		return nil, httperr.ErrInvalidCredentials
	}

	role, ok := session.ParseRole(u.Role)
	if !ok {
		// papel desconhecido no banco: trata como usuário comum
		role = session.RoleUser
	}

	s, token, err := uc.tokens.Issue(session.Session{
		UserID:     u.ID,
		Username:   u.Username,
		EmployeeID: u.EmployeeID,
		Role:       role,
	})
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Session: s, Token: token, TTL: uc.tokens.TTL()}, nil
}
