package playout_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
	"github.com/Halcyon-Media-LLC/signet/internal/playout"
)

func campaignFixture(t *testing.T) model.Campaign {
	t.Helper()
	return model.Campaign{
		ID:         1,
		Name:       "Spring Promo",
		PlaylistID: intPtr(10),
		StartDate:  *datePtr(t, "2026-03-01"),
		EndDate:    *datePtr(t, "2026-03-31"),
		Status:     model.CampaignStatusActive,
		Priority:   5,
	}
}

func TestCampaignActiveAt(t *testing.T) {
	now := at(t, "2026-03-15 12:00")

	t.Run("active inside window", func(t *testing.T) {
		assert.True(t, playout.CampaignActiveAt(campaignFixture(t), 1, now))
	})

	t.Run("date bounds are inclusive", func(t *testing.T) {
		c := campaignFixture(t)
		assert.True(t, playout.CampaignActiveAt(c, 1, at(t, "2026-03-01 00:00")))
		assert.True(t, playout.CampaignActiveAt(c, 1, at(t, "2026-03-31 23:59")))
		assert.False(t, playout.CampaignActiveAt(c, 1, at(t, "2026-02-28 23:59")))
		assert.False(t, playout.CampaignActiveAt(c, 1, at(t, "2026-04-01 00:00")))
	})

	t.Run("no playlist means inert", func(t *testing.T) {
		c := campaignFixture(t)
		c.PlaylistID = nil
		assert.False(t, playout.CampaignActiveAt(c, 1, now))
	})

	t.Run("cancelled always loses", func(t *testing.T) {
		c := campaignFixture(t)
		c.Status = model.CampaignStatusCancelled
		assert.False(t, playout.CampaignActiveAt(c, 1, now))
	})

	t.Run("stale completed status is overruled by dates", func(t *testing.T) {
		c := campaignFixture(t)
		c.Status = model.CampaignStatusCompleted
		assert.True(t, playout.CampaignActiveAt(c, 1, now))
	})

	t.Run("stale pending status is overruled by dates", func(t *testing.T) {
		c := campaignFixture(t)
		c.Status = model.CampaignStatusPending
		assert.True(t, playout.CampaignActiveAt(c, 1, now))
	})
}

func TestCampaignStoreTargeting(t *testing.T) {
	now := at(t, "2026-03-15 12:00")

	t.Run("empty target set runs everywhere", func(t *testing.T) {
		c := campaignFixture(t)
		assert.True(t, playout.CampaignActiveAt(c, 1, now))
		assert.True(t, playout.CampaignActiveAt(c, 99, now))
	})

	t.Run("listed store matches", func(t *testing.T) {
		c := campaignFixture(t)
		c.StoreIDs = []int64{2, 3}
		assert.True(t, playout.CampaignActiveAt(c, 3, now))
	})

	t.Run("unlisted store does not", func(t *testing.T) {
		c := campaignFixture(t)
		c.StoreIDs = []int64{2, 3}
		assert.False(t, playout.CampaignActiveAt(c, 4, now))
	})
}

func TestCampaignActiveAtUsesCalendarDate(t *testing.T) {
	// end date with a midnight timestamp must still cover the whole day
	c := campaignFixture(t)
	c.EndDate = time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, playout.CampaignActiveAt(c, 1, at(t, "2026-03-31 18:45")))
}
