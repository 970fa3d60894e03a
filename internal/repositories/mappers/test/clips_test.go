package mappers_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"
	"github.com/bionicotaku/lingo-services-clips/internal/repositories/mappers"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoToRow(t *testing.T) {
	title, _ := valueobject.NewRequiredString("title", "配信")
	url, _ := valueobject.NewMovieURL("url", "https://youtu.be/abc")
	date, _ := valueobject.NewDate("published_on", 2024, 2, 29)

	t.Run("with author", func(t *testing.T) {
		video, err := po.NewVideo(title, url, po.VideoKindOriginal, "ch", date)
		require.NoError(t, err)

		row := mappers.VideoToRow(video)
		assert.Equal(t, video.ID(), row.ID)
		assert.Equal(t, "Original", row.Kind)
		assert.True(t, row.Author.Valid)
		assert.Equal(t, "ch", row.Author.String)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), row.PublishedOn)
	})

	t.Run("empty author becomes NULL", func(t *testing.T) {
		video, err := po.NewVideo(title, url, po.VideoKindKirinuki, "", date)
		require.NoError(t, err)

		row := mappers.VideoToRow(video)
		assert.False(t, row.Author.Valid)

		back, err := mappers.VideoFromRow(row)
		require.NoError(t, err)
		assert.Empty(t, back.Author())
		assert.Equal(t, po.VideoKindKirinuki, back.Kind())
	})
}

func TestMovieClipFromRow(t *testing.T) {
	base := mappers.MovieClipRow{
		ID:          uuid.New(),
		EpisodeID:   uuid.New(),
		Title:       "Clip A",
		URL:         "https://example.com/v1",
		StartSecond: 10,
		EndSecond:   20,
		Likes:       3,
		CreatedAt:   time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}

	t.Run("valid row", func(t *testing.T) {
		clip, err := mappers.MovieClipFromRow(base)
		require.NoError(t, err)
		assert.Equal(t, base.ID, clip.ID())
		assert.Equal(t, base.EpisodeID, clip.EpisodeID())
		assert.Equal(t, 10, clip.Start().Int())
		assert.Equal(t, 3, clip.Likes())
		assert.Equal(t, base, mappers.MovieClipToRow(clip))
	})

	t.Run("created_at is normalized to UTC", func(t *testing.T) {
		row := base
		row.CreatedAt = base.CreatedAt.In(time.FixedZone("JST", 9*3600))
		clip, err := mappers.MovieClipFromRow(row)
		require.NoError(t, err)
		assert.Equal(t, base.CreatedAt, clip.CreatedAt())
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		row := base
		row.StartSecond, row.EndSecond = 30, 20
		_, err := mappers.MovieClipFromRow(row)
		require.Error(t, err)

		var vErr *valueobject.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, valueobject.KindInvalidRange, vErr.Kind)
		assert.Contains(t, err.Error(), base.ID.String())
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		row := base
		row.Title = "  "
		_, err := mappers.MovieClipFromRow(row)
		require.Error(t, err)
	})
}

func TestEpisodeFromRow(t *testing.T) {
	id := uuid.New()
	ep, err := mappers.EpisodeFromRow(mappers.EpisodeRow{
		ID:      id,
		Title:   "EP1",
		AirDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, id, ep.ID())
	assert.Equal(t, "2024-01-01", ep.AirDate().String())

	_, err = mappers.EpisodeFromRow(mappers.EpisodeRow{ID: id, Title: "", AirDate: time.Now()})
	require.Error(t, err)
}

func TestVideoFromRow_UnknownKind(t *testing.T) {
	_, err := mappers.VideoFromRow(mappers.VideoRow{
		ID:          uuid.New(),
		Kind:        "Remix",
		Title:       "x",
		URL:         "https://example.com",
		Author:      pgtype.Text{},
		PublishedOn: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
}
