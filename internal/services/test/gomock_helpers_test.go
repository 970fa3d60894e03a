package services_test

import (
	"io"
	"testing"

	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"
)

func discardLogger() log.Logger { return log.NewStdLogger(io.Discard) }

func ptrString(v string) *string { return &v }

func ptrInt(v int) *int { return &v }

func mustEpisode(t *testing.T, title, airDate string) *po.Episode {
	t.Helper()
	name, err := valueobject.NewRequiredString("title", title)
	require.NoError(t, err)
	date, err := valueobject.ParseDate("air_date", airDate)
	require.NoError(t, err)
	return po.NewEpisode(name, date)
}

func mustClip(t *testing.T, episode *po.Episode, title string, start, end int) *po.MovieClip {
	t.Helper()
	name, err := valueobject.NewRequiredString("title", title)
	require.NoError(t, err)
	url, err := valueobject.NewMovieURL("url", "https://example.com/v1")
	require.NoError(t, err)
	s, err := valueobject.NewSecond("start", start)
	require.NoError(t, err)
	e, err := valueobject.NewSecond("end", end)
	require.NoError(t, err)
	clip, err := po.NewMovieClip(name, url, s, e, episode.ID())
	require.NoError(t, err)
	return clip
}
