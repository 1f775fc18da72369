package httpadapter

import (
	"context"
	"sort"
	"sync"
	"time"

	"budget-tracker/internal/core/domain"
)

// memoryRepo is an in-process stand-in for the postgres repositories with the
// same ownership and ordering rules.
type memoryRepo struct {
	mu        sync.Mutex
	accounts  []domain.Account
	campaigns map[int64]domain.Campaign
	entries   []domain.MetricEntry
	nextID    int64
	clock     time.Time
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		campaigns: make(map[int64]domain.Campaign),
		clock:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *memoryRepo) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memoryRepo) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memoryRepo) CreateAccount(_ context.Context, acc *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Handle == acc.Handle || a.Email == acc.Email {
			return domain.ErrDuplicateAccount
		}
	}
	acc.ID = m.id()
	acc.CreatedAt = m.tick()
	m.accounts = append(m.accounts, *acc)
	return nil
}

func (m *memoryRepo) GetAccountByHandle(_ context.Context, handle string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Handle == handle {
			return &a, nil
		}
	}
	return nil, nil
}

func (m *memoryRepo) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.id()
	c.CreatedAt = m.tick()
	m.campaigns[c.ID] = *c
	return nil
}

func (m *memoryRepo) owned(ownerID, id int64) (domain.Campaign, bool) {
	c, ok := m.campaigns[id]
	return c, ok && c.OwnerID == ownerID
}

func (m *memoryRepo) GetCampaign(_ context.Context, ownerID, id int64) (*domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.owned(ownerID, id); ok {
		return &c, nil
	}
	return nil, nil
}

func (m *memoryRepo) UpdateCampaign(_ context.Context, c domain.Campaign) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.owned(c.OwnerID, c.ID); !ok {
		return false, nil
	}
	m.campaigns[c.ID] = c
	return true, nil
}

func (m *memoryRepo) DeleteCampaign(_ context.Context, ownerID, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.owned(ownerID, id); !ok {
		return false, nil
	}
	delete(m.campaigns, id)
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.CampaignID != id {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return true, nil
}

func (m *memoryRepo) ListCampaignTotals(_ context.Context, ownerID int64, filter domain.CampaignFilter) ([]domain.CampaignTotals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []domain.CampaignTotals
	for _, c := range m.campaigns {
		if c.OwnerID != ownerID {
			continue
		}
		if filter.Channel != "" && c.Channel != filter.Channel {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		row := domain.CampaignTotals{Campaign: c}
		for _, e := range m.entries {
			if e.CampaignID == c.ID {
				row.Totals.Add(domain.Totals{
					Spend:       e.Spend,
					Impressions: e.Impressions,
					Clicks:      e.Clicks,
					Conversions: e.Conversions,
				})
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Campaign.CreatedAt.After(rows[j].Campaign.CreatedAt)
	})
	return rows, nil
}

func (m *memoryRepo) CreateMetricEntry(_ context.Context, ownerID int64, e *domain.MetricEntry) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.owned(ownerID, e.CampaignID); !ok {
		return false, nil
	}
	e.ID = m.id()
	m.entries = append(m.entries, *e)
	return true, nil
}

func (m *memoryRepo) ListMetricEntries(_ context.Context, ownerID, campaignID int64) ([]domain.MetricEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.owned(ownerID, campaignID); !ok {
		return nil, nil
	}
	var out []domain.MetricEntry
	for _, e := range m.entries {
		if e.CampaignID == campaignID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID > out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}
