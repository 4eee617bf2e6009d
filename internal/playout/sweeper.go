package playout

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// CampaignSweepStore is the slice of the db layer the sweep writes through.
type CampaignSweepStore interface {
	MarkCampaignsActive(today string) (int64, error)
	MarkCampaignsCompleted(today string) (int64, error)
}

// SweepGuard gates a sweep run; a nil guard always runs. The server wires a
// Redis SETNX here so only one instance sweeps per interval.
type SweepGuard func(ctx context.Context) bool

// StartCampaignSweeper refreshes the advisory Campaign.Status cache on a
// fixed interval until ctx is cancelled. Both transitions are idempotent
// UPDATEs, so overlapping runs (or a crashed run redone later) are harmless.
// Resolution never trusts the cache, so the sweep only matters for admin
// listings.
func StartCampaignSweeper(ctx context.Context, store CampaignSweepStore, interval time.Duration, guard SweepGuard) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if guard != nil && !guard(ctx) {
					continue
				}
				SweepCampaigns(store, time.Now())
			}
		}
	}()
}

// SweepCampaigns runs one refresh pass: pending campaigns whose window has
// opened become active, and non-cancelled campaigns whose window has closed
// become completed.
func SweepCampaigns(store CampaignSweepStore, now time.Time) {
	today := now.Format(dateLayout)

	activated, err := store.MarkCampaignsActive(today)
	if err != nil {
		log.Error().Err(err).Msg("campaign sweep: activate pass failed")
	}
	completed, err := store.MarkCampaignsCompleted(today)
	if err != nil {
		log.Error().Err(err).Msg("campaign sweep: complete pass failed")
	}
	if activated > 0 || completed > 0 {
		log.Info().
			Int64("activated", activated).
			Int64("completed", completed).
			Msg("campaign status sweep applied")
	}
}
