package repositories_test

import (
	"context"
	"io"
	"testing"

	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func newTxManager(t *testing.T, pool *pgxpool.Pool) txmanager.Manager {
	t.Helper()
	mgr, err := txmanager.NewManager(pool, txmanager.Config{}, txmanager.Dependencies{Logger: log.NewStdLogger(io.Discard)})
	require.NoError(t, err)
	return mgr
}

// noopTxManager 直接执行回调且不提供 Session，仓储回退到注入的 DB（pgxmock）。
type noopTxManager struct{}

func (noopTxManager) WithinTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	return fn(ctx, nil)
}

func (noopTxManager) WithinReadOnlyTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	return fn(ctx, nil)
}

func discardLogger() log.Logger {
	return log.NewStdLogger(io.Discard)
}

func newEpisode(t *testing.T, title, airDate string) *po.Episode {
	t.Helper()
	name, err := valueobject.NewRequiredString("title", title)
	require.NoError(t, err)
	date, err := valueobject.ParseDate("air_date", airDate)
	require.NoError(t, err)
	return po.NewEpisode(name, date)
}

func newClip(t *testing.T, episodeID uuid.UUID, title string, start, end int) *po.MovieClip {
	t.Helper()
	name, err := valueobject.NewRequiredString("title", title)
	require.NoError(t, err)
	url, err := valueobject.NewMovieURL("url", "https://example.com/v1")
	require.NoError(t, err)
	s, err := valueobject.NewSecond("start", start)
	require.NoError(t, err)
	e, err := valueobject.NewSecond("end", end)
	require.NoError(t, err)
	clip, err := po.NewMovieClip(name, url, s, e, episodeID)
	require.NoError(t, err)
	return clip
}

func newVideo(t *testing.T, title string, kind po.VideoKind, author, publishedOn string) *po.Video {
	t.Helper()
	name, err := valueobject.NewRequiredString("title", title)
	require.NoError(t, err)
	url, err := valueobject.NewMovieURL("url", "https://youtu.be/"+title)
	require.NoError(t, err)
	date, err := valueobject.ParseDate("published_on", publishedOn)
	require.NoError(t, err)
	video, err := po.NewVideo(name, url, kind, author, date)
	require.NoError(t, err)
	return video
}

func mustDate(t *testing.T, raw string) valueobject.Date {
	t.Helper()
	date, err := valueobject.ParseDate("date", raw)
	require.NoError(t, err)
	return date
}
