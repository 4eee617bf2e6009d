package playout

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

// DefaultTransition is applied when a playlist item names none.
const DefaultTransition = "fade"

// Sequence expands a playlist into its ordered render list: position
// ascending, duration_override beating the content's own duration, inactive
// or missing content skipped with a logged notice. The result carries no
// cursor — looping and advancing are the player's concern — and an empty
// result tells the resolver to fall through.
func Sequence(playlist model.Playlist) []PlayoutItem {
	items := make([]model.PlaylistItem, len(playlist.Items))
	copy(items, playlist.Items)
	// positions are unique per playlist; the id tie-break keeps the order
	// deterministic even over rows predating that constraint
	sort.Slice(items, func(i, j int) bool {
		if items[i].Position != items[j].Position {
			return items[i].Position < items[j].Position
		}
		return items[i].ID < items[j].ID
	})

	out := make([]PlayoutItem, 0, len(items))
	for _, it := range items {
		if it.Content == nil || !it.Content.Active {
			log.Debug().
				Int("playlist_id", playlist.ID).
				Int("content_id", it.ContentID).
				Int("position", it.Position).
				Msg("skipping inactive playlist item")
			continue
		}
		duration := it.Content.DurationSeconds
		if it.DurationOverride != nil {
			duration = *it.DurationOverride
		}
		transition := DefaultTransition
		if it.TransitionType != nil && *it.TransitionType != "" {
			transition = *it.TransitionType
		}
		out = append(out, PlayoutItem{
			ContentID:  it.Content.ID,
			Type:       it.Content.Type,
			URL:        it.Content.URL,
			Duration:   duration,
			Transition: transition,
		})
	}
	return out
}
