package playout

import (
	"time"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

// CampaignActiveAt reports whether a campaign is live for a store at the
// given instant. Activity is re-derived from the date bounds on every call;
// the cached Status field is advisory except for cancellation, which is an
// explicit admin action and always wins. A stale "completed" whose dates
// still cover today therefore stays active until the sweep catches up.
func CampaignActiveAt(c model.Campaign, storeID int, now time.Time) bool {
	if c.PlaylistID == nil {
		return false
	}
	if c.Status == model.CampaignStatusCancelled {
		return false
	}
	start := c.StartDate
	end := c.EndDate
	if !withinDateBounds(&start, &end, now) {
		return false
	}
	return campaignTargets(c, storeID)
}

// campaignTargets reports whether the campaign applies to the store. An
// empty target set means the campaign runs everywhere.
func campaignTargets(c model.Campaign, storeID int) bool {
	if len(c.StoreIDs) == 0 {
		return true
	}
	for _, id := range c.StoreIDs {
		if id == int64(storeID) {
			return true
		}
	}
	return false
}
