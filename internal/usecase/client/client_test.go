package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/client-tracker/internal/audit"
	domain "github.com/BruksfildServices01/client-tracker/internal/domain/client"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/infra/repository"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/session"
	"github.com/BruksfildServices01/client-tracker/internal/testhelpers"
)

var tpe = time.FixedZone("TPE", 8*3600)

type fixture struct {
	db    *gorm.DB
	repo  *repository.ClientGormRepository
	audit *audit.Logger
	now   time.Time

	alice session.Session
	bob   session.Session
	admin session.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testhelpers.NewDB(t)
	a := testhelpers.SeedUser(t, db, "alice", "user")
	b := testhelpers.SeedUser(t, db, "bob", "user")
	adm := testhelpers.SeedUser(t, db, "admin", "admin")

	return &fixture{
		db:    db,
		repo:  repository.NewClientGormRepository(db),
		audit: audit.New(db),
		now:   time.Date(2026, 10, 18, 14, 5, 30, 0, tpe),
		alice: session.Session{UserID: a.ID, Username: "alice", Role: session.RoleUser},
		bob:   session.Session{UserID: b.ID, Username: "bob", Role: session.RoleUser},
		admin: session.Session{UserID: adm.ID, Username: "admin", Role: session.RoleAdmin},
	}
}

func (f *fixture) clock() func() time.Time {
	return func() time.Time { return f.now }
}

func (f *fixture) create(t *testing.T, s session.Session, in ClientInput) *models.Client {
	t.Helper()
	uc := NewCreateClient(f.repo, f.audit, tpe)
	uc.now = f.clock()

	c, err := uc.Execute(context.Background(), s, in)
	require.NoError(t, err)
	return c
}

func (f *fixture) auditActions(t *testing.T) []string {
	t.Helper()
	var rows []models.AuditLog
	require.NoError(t, f.db.Order("id").Find(&rows).Error)
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Action)
	}
	return out
}

// ======================================================
// CREATE
// ======================================================

func TestCreateClient_SameAddressAndDefaultFollowUp(t *testing.T) {
	f := newFixture(t)

	c := f.create(t, f.alice, ClientInput{
		Name:            "Wang",
		HouseAddress:    "台北市X路1號",
		RegisterAddress: "台北市X路1號",
	})

	stored, err := f.repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)

	assert.Equal(t, f.alice.UserID, stored.UserID)
	assert.Equal(t, domain.SameAsHouse, stored.RegisterAddress)
	assert.Equal(t, "台北市X路1號", stored.HouseAddress)
	assert.Empty(t, stored.Notes)
	assert.True(t, stored.FirstContact.Equal(f.now))
	assert.True(t, stored.NextFollow.Equal(f.now.AddDate(0, 0, 14)))
	assert.Equal(t, []string{audit.ActionClientCreated}, f.auditActions(t))
}

func TestCreateClient_ExplicitFollowUp(t *testing.T) {
	f := newFixture(t)

	c := f.create(t, f.alice, ClientInput{
		Name:            "Chen",
		HouseAddress:    "台北市X路1號",
		RegisterAddress: " 新北市Y路2號 ",
		NextFollow:      "2026/10/25",
	})

	assert.Equal(t, " 新北市Y路2號 ", c.RegisterAddress)
	assert.True(t, c.NextFollow.Equal(time.Date(2026, 10, 25, 0, 0, 0, 0, tpe)))
}

func TestCreateClient_InvalidDate(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateClient(f.repo, f.audit, tpe)

	_, err := uc.Execute(context.Background(), f.alice, ClientInput{Name: "X", NextFollow: "2026-10-25"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))

	var count int64
	f.db.Model(&models.Client{}).Count(&count)
	assert.Zero(t, count)
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateClient_OwnerKeepsFollowUpWhenEmpty(t *testing.T) {
	f := newFixture(t)
	c := f.create(t, f.alice, ClientInput{Name: "Wang", HouseAddress: "A", RegisterAddress: "B"})
	original := c.NextFollow

	uc := NewUpdateClient(f.repo, f.audit, tpe)
	got, err := uc.Execute(context.Background(), f.alice, c.ID, ClientInput{
		Name:            "Wang Jr",
		HouseAddress:    "A",
		RegisterAddress: " A ",
		Notes:           "visited",
		NextFollow:      "  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Wang Jr", got.Name)
	assert.Equal(t, domain.SameAsHouse, got.RegisterAddress)
	assert.Equal(t, "visited", got.Notes)
	assert.True(t, got.NextFollow.Equal(original))
}

func TestUpdateClient_AdminReplacesFollowUp(t *testing.T) {
	f := newFixture(t)
	c := f.create(t, f.alice, ClientInput{Name: "Wang"})

	uc := NewUpdateClient(f.repo, f.audit, tpe)
	got, err := uc.Execute(context.Background(), f.admin, c.ID, ClientInput{
		Name:       "Wang",
		NextFollow: "2027/01/02",
	})
	require.NoError(t, err)
	assert.True(t, got.NextFollow.Equal(time.Date(2027, 1, 2, 0, 0, 0, 0, tpe)))
	assert.Equal(t, f.alice.UserID, got.UserID, "admin edits do not change ownership")
}

func TestUpdateClient_ForbiddenForOtherUser(t *testing.T) {
	f := newFixture(t)
	c := f.create(t, f.alice, ClientInput{Name: "Wang", HouseAddress: "A", RegisterAddress: "B"})

	uc := NewUpdateClient(f.repo, f.audit, tpe)
	_, err := uc.Execute(context.Background(), f.bob, c.ID, ClientInput{Name: "hijacked"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))

	stored, err := f.repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wang", stored.Name)
	assert.Equal(t, "B", stored.RegisterAddress)
}

func TestUpdateClient_NotFoundAndBadDate(t *testing.T) {
	f := newFixture(t)
	uc := NewUpdateClient(f.repo, f.audit, tpe)

	_, err := uc.Execute(context.Background(), f.admin, 404, ClientInput{Name: "x"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

	c := f.create(t, f.alice, ClientInput{Name: "Wang"})
	_, err = uc.Execute(context.Background(), f.alice, c.ID, ClientInput{Name: "Wang", NextFollow: "soon"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

// ======================================================
// DELETE / GET
// ======================================================

func TestDeleteClient(t *testing.T) {
	f := newFixture(t)
	c := f.create(t, f.alice, ClientInput{Name: "Wang"})
	uc := NewDeleteClient(f.repo, f.audit)
	ctx := context.Background()

	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, f.bob, c.ID), httperr.CodeForbidden))
	require.NoError(t, uc.Execute(ctx, f.alice, c.ID))
	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, f.alice, c.ID), httperr.CodeNotFound))

	assert.Equal(t, []string{audit.ActionClientCreated, audit.ActionClientDeleted}, f.auditActions(t))
}

func TestGetClient(t *testing.T) {
	f := newFixture(t)
	c := f.create(t, f.alice, ClientInput{Name: "Wang"})
	uc := NewGetClient(f.repo)
	ctx := context.Background()

	got, err := uc.Execute(ctx, f.admin, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wang", got.Name)

	_, err = uc.Execute(ctx, f.bob, c.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))

	_, err = uc.Execute(ctx, f.bob, 999)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

// ======================================================
// LIST / EXPORT
// ======================================================

func clientNames(cs []models.Client) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

func TestListClients_VisibilityAndFilters(t *testing.T) {
	f := newFixture(t)

	f.create(t, f.alice, ClientInput{Name: "Wang", NextFollow: "2026/10/18", Notes: "VIP"})
	f.create(t, f.alice, ClientInput{Name: "Chen", NextFollow: "2026/10/19"})
	f.create(t, f.alice, ClientInput{Name: "Lee", NextFollow: "2026/10/18"})
	f.create(t, f.bob, ClientInput{Name: "Lin", NextFollow: "2026/10/18", Notes: "VIP"})

	uc := NewListClients(f.repo, tpe)
	uc.now = f.clock()
	ctx := context.Background()

	res, err := uc.Execute(ctx, f.alice, ListFilter{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Wang", "Chen", "Lee"}, clientNames(res.Clients))
	assert.EqualValues(t, 2, res.TodayCount)

	res, err = uc.Execute(ctx, f.admin, ListFilter{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Wang", "Chen", "Lee", "Lin"}, clientNames(res.Clients))
	assert.EqualValues(t, 3, res.TodayCount)

	res, err = uc.Execute(ctx, f.alice, ListFilter{DueToday: true})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Wang", "Lee"}, clientNames(res.Clients))

	// busca não altera o contador de hoje
	res, err = uc.Execute(ctx, f.alice, ListFilter{Search: " VIP "})
	require.NoError(t, err)
	assert.Equal(t, []string{"Wang"}, clientNames(res.Clients))
	assert.EqualValues(t, 2, res.TodayCount)

	res, err = uc.Execute(ctx, f.admin, ListFilter{Search: "VIP", DueToday: true})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Wang", "Lin"}, clientNames(res.Clients))
	assert.True(t, res.Today.Equal(f.now))
}

func TestListClients_DueTodayBoundaries(t *testing.T) {
	f := newFixture(t)
	db := f.db

	start := time.Date(2026, 10, 18, 0, 0, 0, 0, tpe)
	testhelpers.SeedClient(t, db, f.alice.UserID, "midnight", start)
	testhelpers.SeedClient(t, db, f.alice.UserID, "last-second", start.Add(24*time.Hour-time.Second))
	testhelpers.SeedClient(t, db, f.alice.UserID, "next-day", start.Add(24*time.Hour))
	testhelpers.SeedClient(t, db, f.alice.UserID, "prev-day", start.Add(-time.Second))

	uc := NewListClients(f.repo, tpe)
	uc.now = f.clock()

	res, err := uc.Execute(context.Background(), f.alice, ListFilter{DueToday: true})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"midnight", "last-second"}, clientNames(res.Clients))
	assert.EqualValues(t, 2, res.TodayCount)
}

func TestExportClients_IgnoresFilters(t *testing.T) {
	f := newFixture(t)
	f.create(t, f.alice, ClientInput{Name: "Wang"})
	f.create(t, f.bob, ClientInput{Name: "Lin"})

	uc := NewExportClients(f.repo)
	ctx := context.Background()

	own, err := uc.Execute(ctx, f.alice)
	require.NoError(t, err)
	assert.Equal(t, []string{"Wang"}, clientNames(own))

	all, err := uc.Execute(ctx, f.admin)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Wang", "Lin"}, clientNames(all))
}

func TestExportClients_EmptyForAdmin(t *testing.T) {
	f := newFixture(t)

	all, err := NewExportClients(f.repo).Execute(context.Background(), f.admin)
	require.NoError(t, err)
	assert.Empty(t, all)
}
