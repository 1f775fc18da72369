package postgres

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget-tracker/internal/config/configs"
	"budget-tracker/internal/core/domain"
	"budget-tracker/internal/db"
)

// newTestPool migrates and connects to the database named by
// TEST_PSQL_ADDRESS, skipping the test when it is unset.
func newTestPool(t *testing.T) (*AccountRepository, *CampaignRepository) {
	t.Helper()
	addr := os.Getenv("TEST_PSQL_ADDRESS")
	if addr == "" {
		t.Skip("TEST_PSQL_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewAccountRepository(pool), NewCampaignRepository(pool)
}

func newAccount(t *testing.T, repo *AccountRepository, prefix string) *domain.Account {
	t.Helper()
	handle := fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
	acc := &domain.Account{Handle: handle, Email: handle + "@example.com", PasswordHash: "x"}
	require.NoError(t, repo.CreateAccount(context.Background(), acc))
	return acc
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestAccountRepository(t *testing.T) {
	accounts, _ := newTestPool(t)
	ctx := context.Background()

	acc := newAccount(t, accounts, "acct")
	assert.NotZero(t, acc.ID)

	dup := &domain.Account{Handle: acc.Handle, Email: "other-" + acc.Email, PasswordHash: "x"}
	assert.ErrorIs(t, accounts.CreateAccount(ctx, dup), domain.ErrDuplicateAccount)

	got, err := accounts.GetAccountByHandle(ctx, acc.Handle)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, acc.ID, got.ID)

	got, err = accounts.GetAccountByHandle(ctx, "missing-"+acc.Handle)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCampaignRepository(t *testing.T) {
	accounts, campaigns := newTestPool(t)
	ctx := context.Background()

	owner := newAccount(t, accounts, "owner")
	other := newAccount(t, accounts, "other")

	older := &domain.Campaign{
		OwnerID: owner.ID, Name: "Newsletter", Budget: 100, Channel: "Email",
		StartDate: day("2026-02-01"), EndDate: day("2026-02-10"), Status: "active",
	}
	require.NoError(t, campaigns.CreateCampaign(ctx, older))
	newer := &domain.Campaign{
		OwnerID: owner.ID, Name: "Spring Sale", Budget: 500, Channel: "Instagram",
		StartDate: day("2026-02-01"), EndDate: day("2026-02-28"), Status: "active",
	}
	require.NoError(t, campaigns.CreateCampaign(ctx, newer))

	for _, d := range []string{"2026-02-02", "2026-02-03"} {
		ok, err := campaigns.CreateMetricEntry(ctx, owner.ID, &domain.MetricEntry{
			CampaignID: newer.ID, Date: day(d), Impressions: 1000, Clicks: 50, Conversions: 5, Spend: 100,
		})
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := campaigns.CreateMetricEntry(ctx, other.ID, &domain.MetricEntry{CampaignID: newer.ID, Date: day("2026-02-04"), Spend: 1})
	require.NoError(t, err)
	assert.False(t, ok, "entries cannot be added to foreign campaigns")

	rows, err := campaigns.ListCampaignTotals(ctx, owner.ID, domain.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, newer.ID, rows[0].Campaign.ID, "newest first")
	assert.Equal(t, domain.Totals{Spend: 200, Impressions: 2000, Clicks: 100, Conversions: 10}, rows[0].Totals)
	assert.Equal(t, domain.Totals{}, rows[1].Totals)

	rows, err = campaigns.ListCampaignTotals(ctx, owner.ID, domain.CampaignFilter{Channel: "Email"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, older.ID, rows[0].Campaign.ID)

	rows, err = campaigns.ListCampaignTotals(ctx, other.ID, domain.CampaignFilter{})
	require.NoError(t, err)
	assert.Empty(t, rows)

	got, err := campaigns.GetCampaign(ctx, other.ID, newer.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	updated := *newer
	updated.OwnerID = other.ID
	updated.Name = "Stolen"
	ok, err = campaigns.UpdateCampaign(ctx, updated)
	require.NoError(t, err)
	assert.False(t, ok)

	updated.OwnerID = owner.ID
	updated.Status = "paused"
	ok, err = campaigns.UpdateCampaign(ctx, updated)
	require.NoError(t, err)
	assert.True(t, ok)

	foreign := &domain.Campaign{
		OwnerID: other.ID, Name: "Lookalike", Budget: 50, Channel: "Instagram",
		StartDate: day("2026-02-01"), EndDate: day("2026-02-28"), Status: "paused",
	}
	require.NoError(t, campaigns.CreateCampaign(ctx, foreign))

	both := domain.CampaignFilter{Channel: "Instagram", Status: "paused"}
	rows, err = campaigns.ListCampaignTotals(ctx, owner.ID, both)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, newer.ID, rows[0].Campaign.ID)
	assert.Equal(t, "paused", rows[0].Campaign.Status)
	assert.Equal(t, 200.0, rows[0].Totals.Spend)

	rows, err = campaigns.ListCampaignTotals(ctx, other.ID, both)
	require.NoError(t, err)
	require.Len(t, rows, 1, "owner scoping holds with both filters")
	assert.Equal(t, foreign.ID, rows[0].Campaign.ID)
	assert.Equal(t, domain.Totals{}, rows[0].Totals)

	for _, f := range []domain.CampaignFilter{
		{Channel: "Instagram", Status: "active"},
		{Channel: "Email", Status: "paused"},
	} {
		rows, err = campaigns.ListCampaignTotals(ctx, owner.ID, f)
		require.NoError(t, err)
		assert.Empty(t, rows, "%+v", f)
	}

	rows, err = campaigns.ListCampaignTotals(ctx, owner.ID, domain.CampaignFilter{Status: "active"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, older.ID, rows[0].Campaign.ID)

	entries, err := campaigns.ListMetricEntries(ctx, owner.ID, newer.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, day("2026-02-03"), entries[0].Date.UTC())

	ok, err = campaigns.DeleteCampaign(ctx, other.ID, newer.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = campaigns.DeleteCampaign(ctx, owner.ID, newer.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	entries, err = campaigns.ListMetricEntries(ctx, owner.ID, newer.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
