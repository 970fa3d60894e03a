package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"
	"github.com/bionicotaku/lingo-services-clips/internal/repositories/memory"
	"github.com/bionicotaku/lingo-services-clips/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clipsFixture struct {
	episodes   *memory.EpisodeStore
	clips      *memory.MovieClipStore
	episodeSvc *services.EpisodeService
	clipSvc    *services.MovieClipService
}

func newClipsFixture() *clipsFixture {
	episodes := memory.NewEpisodeStore()
	clips := memory.NewMovieClipStore()
	return &clipsFixture{
		episodes:   episodes,
		clips:      clips,
		episodeSvc: services.NewEpisodeService(episodes, clips, discardLogger()),
		clipSvc:    services.NewMovieClipService(clips, episodes, discardLogger()),
	}
}

func TestClipsScenario_CreateEpisodeAndClip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newClipsFixture()

	ep, err := f.episodeSvc.CreateEpisode(ctx, services.CreateEpisodeInput{Title: "EP1", AirDate: "2024-01-01"})
	require.NoError(t, err)

	clip, err := f.clipSvc.CreateMovieClip(ctx, services.CreateMovieClipInput{
		Title:     "Clip A",
		URL:       "https://example.com/v1",
		Start:     10,
		End:       20,
		EpisodeID: ep.ID(),
	})
	require.NoError(t, err)

	listed, err := f.clipSvc.ListClipsByEpisode(ctx, ep.ID())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, clip, listed[0])

	fetched, err := f.episodeSvc.GetEpisode(ctx, ep.ID())
	require.NoError(t, err)
	require.Equal(t, ep, fetched)

	detail, err := f.episodeSvc.GetEpisodeDetail(ctx, ep.ID())
	require.NoError(t, err)
	require.Equal(t, clip, detail.Clips[0])
}

func TestClipsScenario_InvalidRangeNeverReachesRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newClipsFixture()

	_, err := f.clipSvc.CreateMovieClip(ctx, services.CreateMovieClipInput{
		Title:     "Clip B",
		URL:       "https://example.com/v1",
		Start:     30,
		End:       20,
		EpisodeID: uuid.New(),
	})
	require.ErrorIs(t, err, services.ErrValidation)
	require.ErrorIs(t, err, valueobject.ErrInvalidRange)
	require.Equal(t, 0, f.clips.Calls().Create)
}

func TestClipsScenario_UnknownEpisodeIsNotFound(t *testing.T) {
	t.Parallel()
	f := newClipsFixture()

	_, err := f.episodeSvc.GetEpisode(context.Background(), uuid.New())
	require.ErrorIs(t, err, services.ErrNotFound)
	require.Equal(t, services.KindNotFound, services.KindOf(err))

	_, err = f.clipSvc.ListClipsByEpisode(context.Background(), uuid.New())
	require.ErrorIs(t, err, services.ErrNotFound)
	require.Equal(t, 0, f.clips.Calls().List, "节目不存在时不应查询片段")
}

func TestMovieClipService_CreateMovieClip_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input services.CreateMovieClipInput
		kind  error
	}{
		{"非法 URL", services.CreateMovieClipInput{Title: "A", URL: "not a url", Start: 0, End: 1}, valueobject.ErrInvalidURL},
		{"空标题", services.CreateMovieClipInput{Title: "", URL: "https://example.com/v1", Start: 0, End: 1}, valueobject.ErrEmptyString},
		{"负数秒", services.CreateMovieClipInput{Title: "A", URL: "https://example.com/v1", Start: -1, End: 1}, valueobject.ErrInvalidRange},
		{"起止相等", services.CreateMovieClipInput{Title: "A", URL: "https://example.com/v1", Start: 5, End: 5}, valueobject.ErrInvalidRange},
		{"超出存储上界", services.CreateMovieClipInput{Title: "A", URL: "https://example.com/v1", Start: 3000000000, End: 3000000001}, valueobject.ErrInvalidRange},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := newClipsFixture()
			_, err := f.clipSvc.CreateMovieClip(context.Background(), tc.input)
			require.ErrorIs(t, err, tc.kind)
			require.Equal(t, 0, f.clips.Calls().Create)
		})
	}
}

func TestMovieClipService_UpdateMovieClip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newClipsFixture()

	clip, err := f.clipSvc.CreateMovieClip(ctx, services.CreateMovieClipInput{
		Title: "Clip A", URL: "https://example.com/v1", Start: 10, End: 20, EpisodeID: uuid.New(),
	})
	require.NoError(t, err)

	t.Run("合并后区间非法", func(t *testing.T) {
		_, err := f.clipSvc.UpdateMovieClip(ctx, services.UpdateMovieClipInput{ID: clip.ID(), Start: ptrInt(25)})
		require.ErrorIs(t, err, valueobject.ErrInvalidRange)
		require.Equal(t, 0, f.clips.Calls().Update)
	})

	t.Run("部分字段更新", func(t *testing.T) {
		updated, err := f.clipSvc.UpdateMovieClip(ctx, services.UpdateMovieClipInput{
			ID:    clip.ID(),
			Title: ptrString("Clip A (cut)"),
			End:   ptrInt(45),
		})
		require.NoError(t, err)
		require.Equal(t, "Clip A (cut)", updated.Title().String())
		require.Equal(t, 10, updated.Start().Int())
		require.Equal(t, 45, updated.End().Int())

		stored, err := f.clipSvc.GetMovieClip(ctx, clip.ID())
		require.NoError(t, err)
		require.Equal(t, updated, stored)
	})

	t.Run("空更新重新保存", func(t *testing.T) {
		before := f.clips.Calls().Update
		_, err := f.clipSvc.UpdateMovieClip(ctx, services.UpdateMovieClipInput{ID: clip.ID()})
		require.NoError(t, err)
		require.Equal(t, before+1, f.clips.Calls().Update)
	})

	t.Run("不存在的片段", func(t *testing.T) {
		_, err := f.clipSvc.UpdateMovieClip(ctx, services.UpdateMovieClipInput{ID: uuid.New(), Title: ptrString("x")})
		require.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestMovieClipService_DeleteSemantics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newClipsFixture()

	clip, err := f.clipSvc.CreateMovieClip(ctx, services.CreateMovieClipInput{
		Title: "Clip A", URL: "https://example.com/v1", Start: 10, End: 20, EpisodeID: uuid.New(),
	})
	require.NoError(t, err)

	require.NoError(t, f.clipSvc.DeleteMovieClip(ctx, clip.ID()))
	_, err = f.clipSvc.GetMovieClip(ctx, clip.ID())
	require.ErrorIs(t, err, services.ErrNotFound)
	require.ErrorIs(t, f.clipSvc.DeleteMovieClip(ctx, clip.ID()), services.ErrNotFound)
}

func TestMovieClipService_LikeAndOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newClipsFixture()

	ep, err := f.episodeSvc.CreateEpisode(ctx, services.CreateEpisodeInput{Title: "EP1", AirDate: "2024-01-01"})
	require.NoError(t, err)
	late, err := f.clipSvc.CreateMovieClip(ctx, services.CreateMovieClipInput{
		Title: "late", URL: "https://example.com/v1", Start: 100, End: 120, EpisodeID: ep.ID(),
	})
	require.NoError(t, err)
	early, err := f.clipSvc.CreateMovieClip(ctx, services.CreateMovieClipInput{
		Title: "early", URL: "https://example.com/v1", Start: 5, End: 15, EpisodeID: ep.ID(),
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.clipSvc.LikeMovieClip(ctx, late.ID())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	byStart, err := f.clipSvc.ListClipsByEpisode(ctx, ep.ID())
	require.NoError(t, err)
	require.Equal(t, early.ID(), byStart[0].ID())

	byLikes, err := f.clipSvc.ListMovieClips(ctx, services.ListMovieClipsInput{OrderBy: "likes", Limit: 1})
	require.NoError(t, err)
	require.Len(t, byLikes, 1)
	require.Equal(t, late.ID(), byLikes[0].ID())
	require.Equal(t, 3, byLikes[0].Likes())

	_, err = f.clipSvc.ListMovieClips(ctx, services.ListMovieClipsInput{OrderBy: "duration"})
	require.ErrorIs(t, err, valueobject.ErrInvalidKind)
}

func TestMovieClipService_InfrastructureOnCanceledContext(t *testing.T) {
	t.Parallel()
	f := newClipsFixture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.clipSvc.GetMovieClip(ctx, uuid.New())
	require.ErrorIs(t, err, services.ErrInfrastructure)
}

func TestMovieClipService_ListMovieClips_AfterCursor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newClipsFixture()

	episodeID := uuid.New()
	for _, start := range []int{30, 10, 20} {
		_, err := f.clipSvc.CreateMovieClip(ctx, services.CreateMovieClipInput{
			Title: "c", URL: "https://example.com/v1", Start: start, End: start + 5, EpisodeID: episodeID,
		})
		require.NoError(t, err)
	}

	first, err := f.clipSvc.ListMovieClips(ctx, services.ListMovieClipsInput{EpisodeID: &episodeID, Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.Equal(t, []int{10, 20}, []int{first[0].Start().Int(), first[1].Start().Int()})

	after := first[1].ID()
	rest, err := f.clipSvc.ListMovieClips(ctx, services.ListMovieClipsInput{EpisodeID: &episodeID, After: &after, Limit: 2})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	require.Equal(t, 30, rest[0].Start().Int())

	today := first[0].CreatedAt().Format("2006-01-02")
	created, err := f.clipSvc.ListMovieClips(ctx, services.ListMovieClipsInput{OrderBy: "created", CreatedFrom: today})
	require.NoError(t, err)
	require.Len(t, created, 3)

	missing := uuid.New()
	listsBefore := f.clips.Calls().List
	_, err = f.clipSvc.ListMovieClips(ctx, services.ListMovieClipsInput{After: &missing})
	require.ErrorIs(t, err, services.ErrNotFound)
	require.Equal(t, listsBefore, f.clips.Calls().List, "游标不存在时不应执行列表查询")

	_, err = f.clipSvc.ListMovieClips(ctx, services.ListMovieClipsInput{CreatedFrom: "2024-02-01", CreatedTo: "2024-01-01"})
	require.ErrorIs(t, err, valueobject.ErrInvalidRange)
	_, err = f.clipSvc.ListMovieClips(ctx, services.ListMovieClipsInput{CreatedTo: "2024-02-30"})
	require.ErrorIs(t, err, valueobject.ErrInvalidDate)
}
