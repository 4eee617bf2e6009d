// Package playout decides what a device should be showing at a given
// instant. It is a pure engine over already-fetched rows: matchers say which
// schedules and campaigns are live, the resolver picks exactly one winning
// playlist, and the sequencer expands the winner into an ordered render list.
// Nothing in here touches the database or the clock directly, so every call
// is idempotent and safe at arbitrary frequency.
package playout

import (
	"errors"
	"time"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

// ErrNoPlayableContent means nothing resolvable exists for the device,
// including the default chain. The device shows its standby screen; this is
// not a hard failure.
var ErrNoPlayableContent = errors.New("no playable content for device")

// ErrInvalidScheduleConfig wraps schedule validation failures. These are
// rejected at create/update time and never reach resolution.
var ErrInvalidScheduleConfig = errors.New("invalid schedule configuration")

// CandidateKind orders candidate sources when numeric priorities tie.
type CandidateKind int

const (
	KindDefault CandidateKind = iota
	KindSchedule
	KindCampaign
	KindOverride
)

func (k CandidateKind) String() string {
	switch k {
	case KindOverride:
		return "override"
	case KindCampaign:
		return "campaign"
	case KindSchedule:
		return "schedule"
	default:
		return "default"
	}
}

// Candidate is one (playlist, priority, kind) entry in the resolver's
// working set. SourceID is the contributing schedule/campaign row id and
// doubles as the deterministic last-resort tie-break (newest wins).
type Candidate struct {
	PlaylistID int
	Priority   int
	Kind       CandidateKind
	SourceID   int
}

// PlayoutItem is one renderable entry of a resolved sequence.
type PlayoutItem struct {
	ContentID  int    `json:"content_id"`
	Type       string `json:"type"`
	URL        string `json:"file_ref"`
	Duration   int    `json:"duration"`
	Transition string `json:"transition"`
}

// Resolution is the full answer handed back to the device-sync endpoint.
type Resolution struct {
	PlaylistID   int           `json:"playlist_id"`
	PlaylistName string        `json:"playlist_name"`
	Source       string        `json:"source"`
	Items        []PlayoutItem `json:"items"`
	ResolvedAt   time.Time     `json:"resolved_at"`
}

// Source supplies the rows the resolver works over. db.Store satisfies it.
type Source interface {
	GetDeviceByID(id int) (model.Device, error)
	GetStoreByID(id int) (model.Store, error)
	GetPlaylistByID(id int) (model.Playlist, error)
	ListCampaignsForStore(storeID int) ([]model.Campaign, error)
	ListSchedulesForStore(storeID int) ([]model.Schedule, error)
	GetDefaultPlaylistForStore(storeID int) (model.Playlist, error)
}
