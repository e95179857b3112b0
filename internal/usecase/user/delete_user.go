package user

import (
	"context"

	"github.com/BruksfildServices01/client-tracker/internal/audit"
	domain "github.com/BruksfildServices01/client-tracker/internal/domain/user"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/session"
)

// ErrSelfDelete é a variante de Forbidden para quem tenta apagar a própria conta
var ErrSelfDelete = httperr.ErrBusiness(httperr.CodeSelfDelete)

type DeleteUser struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteUser(repo domain.Repository, rec audit.Recorder) *DeleteUser {
	return &DeleteUser{repo: repo, audit: rec}
}

// Execute remove o funcionário; os clientes dele passam para o admin que executou a ação
func (uc *DeleteUser) Execute(
	ctx context.Context,
	s session.Session,
	id uint,
) error {

	if err := requireAdmin(s); err != nil {
		return err
	}
	if id == s.UserID {
		return ErrSelfDelete
	}

	if err := uc.repo.DeleteReassigning(ctx, id, s.UserID); err != nil {
		return err
	}

	record(ctx, uc.audit, audit.Event{
		UserID:   &s.UserID,
		Action:   audit.ActionUserDeleted,
		Entity:   audit.EntityUser,
		EntityID: &id,
		Metadata: map[string]uint{"clients_reassigned_to": s.UserID},
	})

	return nil
}
