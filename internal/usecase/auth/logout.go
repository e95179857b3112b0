package auth

import (
	"context"

	"github.com/BruksfildServices01/client-tracker/internal/session"
)

type Logout struct {
	tokens  *session.TokenManager
	revoker session.Revoker
}

func NewLogout(tokens *session.TokenManager, revoker session.Revoker) *Logout {
	return &Logout{tokens: tokens, revoker: revoker}
}

// Execute revoga o token, se ainda for válido. Token vazio ou inválido não é erro.
func (uc *Logout) Execute(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	s, exp, err := uc.tokens.Parse(token)
	if err != nil {
		return nil
	}
	return uc.revoker.Revoke(ctx, s.ID, exp)
}
