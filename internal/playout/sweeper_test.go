package playout_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Halcyon-Media-LLC/signet/internal/playout"
)

type fakeSweepStore struct {
	activeDates    []string
	completedDates []string
	failActivate   bool
}

func (f *fakeSweepStore) MarkCampaignsActive(today string) (int64, error) {
	if f.failActivate {
		return 0, errors.New("db down")
	}
	f.activeDates = append(f.activeDates, today)
	return 1, nil
}

func (f *fakeSweepStore) MarkCampaignsCompleted(today string) (int64, error) {
	f.completedDates = append(f.completedDates, today)
	return 0, nil
}

func TestSweepCampaignsPassesCalendarDate(t *testing.T) {
	store := &fakeSweepStore{}
	now := time.Date(2026, 3, 4, 23, 59, 0, 0, time.UTC)

	playout.SweepCampaigns(store, now)

	assert.Equal(t, []string{"2026-03-04"}, store.activeDates)
	assert.Equal(t, []string{"2026-03-04"}, store.completedDates)
}

func TestSweepCampaignsRunsBothPassesOnError(t *testing.T) {
	store := &fakeSweepStore{failActivate: true}

	playout.SweepCampaigns(store, time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC))

	assert.Empty(t, store.activeDates)
	assert.Equal(t, []string{"2026-03-04"}, store.completedDates, "activate failure must not skip the complete pass")
}
