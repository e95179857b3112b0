package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/client-tracker/internal/domain/client"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/infra/repository"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/testhelpers"
)

func names(clients []models.Client) []string {
	out := make([]string, 0, len(clients))
	for _, c := range clients {
		out = append(out, c.Name)
	}
	return out
}

func TestClientRepository_ListScopeAndSearch(t *testing.T) {
	db := testhelpers.NewDB(t)
	repo := repository.NewClientGormRepository(db)
	ctx := context.Background()

	alice := testhelpers.SeedUser(t, db, "alice", "user")
	bob := testhelpers.SeedUser(t, db, "bob", "user")

	when := time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC)
	testhelpers.SeedClient(t, db, alice.ID, "Wang", when)
	testhelpers.SeedClient(t, db, alice.ID, "Chen", when)
	testhelpers.SeedClient(t, db, bob.ID, "Lin", when)

	all, err := repo.List(ctx, domain.Query{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Wang", "Chen", "Lin"}, names(all))

	own, err := repo.List(ctx, domain.Query{Scope: domain.Scope{OwnerID: &alice.ID}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Wang", "Chen"}, names(own))

	// busca em nome, endereços e notas
	got, err := repo.List(ctx, domain.Query{Search: "Chen register"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Chen"}, names(got))

	got, err = repo.List(ctx, domain.Query{Search: "notes for", Scope: domain.Scope{OwnerID: &bob.ID}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lin"}, names(got))

	got, err = repo.List(ctx, domain.Query{Search: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClientRepository_DueWindow(t *testing.T) {
	db := testhelpers.NewDB(t)
	repo := repository.NewClientGormRepository(db)
	ctx := context.Background()

	loc := time.FixedZone("TPE", 8*3600)
	owner := testhelpers.SeedUser(t, db, "alice", "user")
	other := testhelpers.SeedUser(t, db, "bob", "user")

	dayStart := time.Date(2026, 10, 18, 0, 0, 0, 0, loc)
	testhelpers.SeedClient(t, db, owner.ID, "early", dayStart)
	testhelpers.SeedClient(t, db, owner.ID, "late", dayStart.Add(23*time.Hour+59*time.Minute))
	testhelpers.SeedClient(t, db, owner.ID, "tomorrow", dayStart.AddDate(0, 0, 1))
	testhelpers.SeedClient(t, db, owner.ID, "yesterday", dayStart.Add(-time.Second))
	testhelpers.SeedClient(t, db, other.ID, "foreign", dayStart.Add(time.Hour))

	from, to := dayStart, dayStart.AddDate(0, 0, 1)

	got, err := repo.List(ctx, domain.Query{
		Scope:   domain.Scope{OwnerID: &owner.ID},
		DueFrom: from,
		DueTo:   to,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"early", "late"}, names(got))

	n, err := repo.CountDue(ctx, domain.Scope{OwnerID: &owner.ID}, from, to)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = repo.CountDue(ctx, domain.Scope{}, from, to)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestClientRepository_CRUD(t *testing.T) {
	db := testhelpers.NewDB(t)
	repo := repository.NewClientGormRepository(db)
	ctx := context.Background()

	owner := testhelpers.SeedUser(t, db, "alice", "user")
	first := time.Date(2026, 10, 18, 9, 30, 45, 123, time.UTC)

	c := &models.Client{
		UserID:          owner.ID,
		Name:            "Wang",
		HouseAddress:    "台北市X路1號",
		RegisterAddress: domain.SameAsHouse,
		FirstContact:    first,
		NextFollow:      domain.DefaultNextFollow(first),
	}
	require.NoError(t, repo.Create(ctx, c))
	require.NotZero(t, c.ID)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "台北市X路1號", got.HouseAddress)
	assert.True(t, got.FirstContact.Equal(first.Truncate(time.Second)))
	assert.Equal(t, 14*24*time.Hour, got.NextFollow.Sub(got.FirstContact))

	got.Notes = "call back"
	require.NoError(t, repo.Update(ctx, got))
	again, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "call back", again.Notes)

	require.NoError(t, repo.Delete(ctx, c.ID))

	_, err = repo.GetByID(ctx, c.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	assert.True(t, httperr.IsBusiness(repo.Delete(ctx, c.ID), httperr.CodeNotFound))
}
