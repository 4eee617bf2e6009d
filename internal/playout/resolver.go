package playout

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

// Resolver picks the single winning playlist for a device at an instant.
// It holds no state beyond its Source, so one Resolver serves all requests
// concurrently.
type Resolver struct {
	src Source
}

func NewResolver(src Source) *Resolver {
	return &Resolver{src: src}
}

// Resolve returns the playout for a device at the given instant. The
// instant is re-interpreted in the device's store timezone before any
// calendar math. Candidates are tried best-first; winners whose playlist is
// inactive or sequences to nothing fall through to the next candidate, and
// ErrNoPlayableContent is returned only once every candidate (including the
// default chain) is exhausted.
func (r *Resolver) Resolve(deviceID int, at time.Time) (Resolution, error) {
	device, err := r.src.GetDeviceByID(deviceID)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolve device %d: %w", deviceID, err)
	}
	store, err := r.src.GetStoreByID(device.StoreID)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolve store %d: %w", device.StoreID, err)
	}

	now := at.In(storeLocation(store))

	candidates, err := r.collect(device, store, now)
	if err != nil {
		return Resolution{}, err
	}
	sortCandidates(candidates)

	for _, cand := range candidates {
		playlist, err := r.src.GetPlaylistByID(cand.PlaylistID)
		if err != nil {
			log.Error().Err(err).
				Int("device_id", device.ID).
				Int("playlist_id", cand.PlaylistID).
				Str("kind", cand.Kind.String()).
				Msg("candidate playlist lookup failed, falling through")
			continue
		}
		if !playlist.Active {
			continue
		}
		items := Sequence(playlist)
		if len(items) == 0 {
			continue
		}
		return Resolution{
			PlaylistID:   playlist.ID,
			PlaylistName: playlist.Name,
			Source:       cand.Kind.String(),
			Items:        items,
			ResolvedAt:   now,
		}, nil
	}

	log.Warn().
		Int("device_id", device.ID).
		Int("store_id", store.ID).
		Strs("candidates", describeCandidates(candidates)).
		Msg("no playable content resolved")
	return Resolution{}, ErrNoPlayableContent
}

// collect builds the unsorted candidate set for a device at a local instant.
func (r *Resolver) collect(device model.Device, store model.Store, now time.Time) ([]Candidate, error) {
	var candidates []Candidate

	if device.CurrentPlaylistID != nil {
		candidates = append(candidates, Candidate{
			PlaylistID: *device.CurrentPlaylistID,
			Priority:   math.MaxInt,
			Kind:       KindOverride,
			SourceID:   device.ID,
		})
	}

	campaigns, err := r.src.ListCampaignsForStore(store.ID)
	if err != nil {
		return nil, fmt.Errorf("list campaigns for store %d: %w", store.ID, err)
	}
	for _, c := range campaigns {
		if CampaignActiveAt(c, store.ID, now) {
			candidates = append(candidates, Candidate{
				PlaylistID: *c.PlaylistID,
				Priority:   c.Priority,
				Kind:       KindCampaign,
				SourceID:   c.ID,
			})
		}
	}

	schedules, err := r.src.ListSchedulesForStore(store.ID)
	if err != nil {
		return nil, fmt.Errorf("list schedules for store %d: %w", store.ID, err)
	}
	for _, s := range schedules {
		if ScheduleActiveAt(s, now) {
			candidates = append(candidates, Candidate{
				PlaylistID: s.PlaylistID,
				Priority:   s.Priority,
				Kind:       KindSchedule,
				SourceID:   s.ID,
			})
		}
	}

	if def, err := r.src.GetDefaultPlaylistForStore(store.ID); err == nil {
		candidates = append(candidates, Candidate{
			PlaylistID: def.ID,
			Priority:   math.MinInt,
			Kind:       KindDefault,
			SourceID:   def.ID,
		})
	} else {
		log.Error().Err(err).Int("store_id", store.ID).Msg("no default playlist for store")
	}

	return candidates, nil
}

// sortCandidates orders best-first: numeric priority, then kind rank
// (override > campaign > schedule > default), then newest source row. The
// recency rule replaces the source system's accidental query-order behavior
// with an explicit, deterministic policy.
func sortCandidates(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Kind != b.Kind {
			return a.Kind > b.Kind
		}
		return a.SourceID > b.SourceID
	})
}

func describeCandidates(candidates []Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = fmt.Sprintf("%s/%d@playlist=%d", c.Kind, c.SourceID, c.PlaylistID)
	}
	return out
}

// storeLocation loads the store's configured timezone, falling back to UTC
// when the name is empty or unknown.
func storeLocation(store model.Store) *time.Location {
	if store.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(store.Timezone)
	if err != nil {
		log.Warn().Str("timezone", store.Timezone).Int("store_id", store.ID).Msg("unknown store timezone, using UTC")
		return time.UTC
	}
	return loc
}
