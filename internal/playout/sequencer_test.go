package playout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
	"github.com/Halcyon-Media-LLC/signet/internal/playout"
)

func content(id int, duration int) *model.Content {
	return &model.Content{
		ID:              id,
		Name:            "clip",
		Type:            model.ContentTypeVideo,
		URL:             "https://cdn.example.com/clip.mp4",
		DurationSeconds: duration,
		Active:          true,
	}
}

func TestSequenceOrdersByPosition(t *testing.T) {
	playlist := model.Playlist{
		ID:     1,
		Active: true,
		Items: []model.PlaylistItem{
			{ContentID: 3, Position: 3, Content: content(3, 10)},
			{ContentID: 1, Position: 1, Content: content(1, 10)},
			{ContentID: 2, Position: 2, Content: content(2, 10)},
		},
	}

	items := playout.Sequence(playlist)
	require.Len(t, items, 3)
	assert.Equal(t, 1, items[0].ContentID)
	assert.Equal(t, 2, items[1].ContentID)
	assert.Equal(t, 3, items[2].ContentID)
}

func TestSequenceDurationOverride(t *testing.T) {
	playlist := model.Playlist{
		ID:     1,
		Active: true,
		Items: []model.PlaylistItem{
			{ContentID: 1, Position: 1, Content: content(1, 30)},
			{ContentID: 2, Position: 2, DurationOverride: intPtr(5), Content: content(2, 30)},
		},
	}

	items := playout.Sequence(playlist)
	require.Len(t, items, 2)
	assert.Equal(t, 30, items[0].Duration, "content duration used when no override")
	assert.Equal(t, 5, items[1].Duration, "override beats content duration")
}

func TestSequenceTransitions(t *testing.T) {
	playlist := model.Playlist{
		ID:     1,
		Active: true,
		Items: []model.PlaylistItem{
			{ContentID: 1, Position: 1, Content: content(1, 10)},
			{ContentID: 2, Position: 2, TransitionType: strPtr("cut"), Content: content(2, 10)},
			{ContentID: 3, Position: 3, TransitionType: strPtr(""), Content: content(3, 10)},
		},
	}

	items := playout.Sequence(playlist)
	require.Len(t, items, 3)
	assert.Equal(t, playout.DefaultTransition, items[0].Transition)
	assert.Equal(t, "cut", items[1].Transition)
	assert.Equal(t, playout.DefaultTransition, items[2].Transition, "blank transition falls back to default")
}

func TestSequenceSkipsUnplayableItems(t *testing.T) {
	inactive := content(2, 10)
	inactive.Active = false

	playlist := model.Playlist{
		ID:     1,
		Active: true,
		Items: []model.PlaylistItem{
			{ContentID: 1, Position: 1, Content: content(1, 10)},
			{ContentID: 2, Position: 2, Content: inactive},
			{ContentID: 3, Position: 3, Content: nil},
			{ContentID: 4, Position: 4, Content: content(4, 10)},
		},
	}

	items := playout.Sequence(playlist)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ContentID)
	assert.Equal(t, 4, items[1].ContentID)
}

func TestSequencePositionTieIsDeterministic(t *testing.T) {
	playlist := model.Playlist{
		ID:     1,
		Active: true,
		Items: []model.PlaylistItem{
			{ID: 9, ContentID: 9, Position: 1, Content: content(9, 10)},
			{ID: 4, ContentID: 4, Position: 1, Content: content(4, 10)},
		},
	}

	first := playout.Sequence(playlist)
	require.Len(t, first, 2)
	assert.Equal(t, 4, first[0].ContentID, "equal positions order by item id")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, playout.Sequence(playlist))
	}
}

func TestSequenceEmptyPlaylist(t *testing.T) {
	items := playout.Sequence(model.Playlist{ID: 1, Active: true})
	assert.Empty(t, items)
}

func TestSequenceDoesNotMutateInput(t *testing.T) {
	playlist := model.Playlist{
		ID:     1,
		Active: true,
		Items: []model.PlaylistItem{
			{ContentID: 2, Position: 2, Content: content(2, 10)},
			{ContentID: 1, Position: 1, Content: content(1, 10)},
		},
	}

	playout.Sequence(playlist)
	assert.Equal(t, 2, playlist.Items[0].ContentID, "caller's item order must survive")
}
