package audit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/client-tracker/internal/audit"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/testhelpers"
)

func TestLogger_Record(t *testing.T) {
	db := testhelpers.NewDB(t)
	l := audit.New(db)

	actor, entity := uint(1), uint(42)
	require.NoError(t, l.Record(context.Background(), audit.Event{
		UserID:   &actor,
		Action:   audit.ActionClientCreated,
		Entity:   audit.EntityClient,
		EntityID: &entity,
		Metadata: map[string]string{"name": "Wang"},
	}))

	var rows []models.AuditLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)

	assert.Equal(t, audit.ActionClientCreated, rows[0].Action)
	assert.Equal(t, audit.EntityClient, rows[0].Entity)
	assert.Equal(t, uint(42), *rows[0].EntityID)
	assert.JSONEq(t, `{"name":"Wang"}`, rows[0].Metadata)
}
