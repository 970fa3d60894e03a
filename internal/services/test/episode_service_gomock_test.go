package services_test

import (
	"context"
	"testing"

	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"
	"github.com/bionicotaku/lingo-services-clips/internal/repositories"
	"github.com/bionicotaku/lingo-services-clips/internal/services"
	"github.com/bionicotaku/lingo-services-clips/internal/services/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEpisodeService_CreateEpisode_ValidationSkipsRepository(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input services.CreateEpisodeInput
		kind  error
	}{
		{"空标题", services.CreateEpisodeInput{Title: "   ", AirDate: "2024-01-01"}, valueobject.ErrEmptyString},
		{"非法日期", services.CreateEpisodeInput{Title: "EP1", AirDate: "2024-02-30"}, valueobject.ErrInvalidDate},
		{"日期格式错误", services.CreateEpisodeInput{Title: "EP1", AirDate: "01/01/2024"}, valueobject.ErrInvalidDate},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			episodes := mocks.NewMockEpisodeRepository(ctrl)
			clips := mocks.NewMockMovieClipRepository(ctrl)

			svc := services.NewEpisodeService(episodes, clips, discardLogger())
			_, err := svc.CreateEpisode(context.Background(), tc.input)
			require.ErrorIs(t, err, services.ErrValidation)
			require.ErrorIs(t, err, tc.kind)
			require.NotNil(t, services.ValidationDetail(err))
		})
	}
}

func TestEpisodeService_MapsRepositoryErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		repoErr error
		want    error
	}{
		{"not found", repositories.NewError(repositories.KindNotFound, "get episode", ""), services.ErrNotFound},
		{"connection", repositories.NewError(repositories.KindConnectionFailure, "get episode", "dial tcp"), services.ErrInfrastructure},
		{"conflict", repositories.NewError(repositories.KindConflict, "get episode", "40001"), services.ErrInfrastructure},
		{"unknown", repositories.NewError(repositories.KindUnknown, "get episode", "boom"), services.ErrInfrastructure},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			episodes := mocks.NewMockEpisodeRepository(ctrl)
			episodes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, tc.repoErr)

			svc := services.NewEpisodeService(episodes, mocks.NewMockMovieClipRepository(ctrl), discardLogger())
			_, err := svc.GetEpisode(context.Background(), uuid.New())
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, tc.repoErr, "底层仓储错误应可通过 Unwrap 取得")
		})
	}
}

func TestEpisodeService_UpdateEpisode_MergesFields(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	episodes := mocks.NewMockEpisodeRepository(ctrl)
	existing := mustEpisode(t, "EP1", "2024-01-01")

	gomock.InOrder(
		episodes.EXPECT().Get(gomock.Any(), existing.ID()).Return(existing, nil),
		episodes.EXPECT().Update(gomock.Any(), existing.ID(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, ep *po.Episode) error {
				require.Equal(t, "EP1 (remastered)", ep.Title().String())
				require.Equal(t, "2024-01-01", ep.AirDate().String())
				return nil
			}),
	)

	svc := services.NewEpisodeService(episodes, mocks.NewMockMovieClipRepository(ctrl), discardLogger())
	updated, err := svc.UpdateEpisode(context.Background(), services.UpdateEpisodeInput{
		ID:    existing.ID(),
		Title: ptrString("EP1 (remastered)"),
	})
	require.NoError(t, err)
	require.Equal(t, existing.ID(), updated.ID())
	require.Equal(t, "EP1", existing.Title().String(), "原实体不可被修改")
}

func TestEpisodeService_UpdateEpisode_InvalidFieldSkipsGet(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	episodes := mocks.NewMockEpisodeRepository(ctrl)

	svc := services.NewEpisodeService(episodes, mocks.NewMockMovieClipRepository(ctrl), discardLogger())
	_, err := svc.UpdateEpisode(context.Background(), services.UpdateEpisodeInput{
		ID:      uuid.New(),
		AirDate: ptrString("2024-13-01"),
	})
	require.ErrorIs(t, err, services.ErrValidation)
	require.ErrorIs(t, err, valueobject.ErrInvalidDate)
}

func TestEpisodeService_GetEpisodeDetail_ListsClipsByEpisode(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	episodes := mocks.NewMockEpisodeRepository(ctrl)
	clips := mocks.NewMockMovieClipRepository(ctrl)
	ep := mustEpisode(t, "EP1", "2024-01-01")
	clip := mustClip(t, ep, "Clip A", 10, 20)

	episodes.EXPECT().Get(gomock.Any(), ep.ID()).Return(ep, nil)
	clips.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter po.MovieClipFilter) ([]*po.MovieClip, error) {
			require.NotNil(t, filter.EpisodeID)
			require.Equal(t, ep.ID(), *filter.EpisodeID)
			require.Equal(t, po.ClipOrderStart, filter.OrderBy)
			return []*po.MovieClip{clip}, nil
		})

	svc := services.NewEpisodeService(episodes, clips, discardLogger())
	detail, err := svc.GetEpisodeDetail(context.Background(), ep.ID())
	require.NoError(t, err)
	require.Equal(t, ep, detail.Episode)
	require.Len(t, detail.Clips, 1)
}

func TestEpisodeService_GetEpisodeDetail_MissingEpisodeSkipsClips(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	episodes := mocks.NewMockEpisodeRepository(ctrl)
	episodes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)

	svc := services.NewEpisodeService(episodes, mocks.NewMockMovieClipRepository(ctrl), discardLogger())
	_, err := svc.GetEpisodeDetail(context.Background(), uuid.New())
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestEpisodeService_ListEpisodes_RejectsReversedRange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := services.NewEpisodeService(mocks.NewMockEpisodeRepository(ctrl), mocks.NewMockMovieClipRepository(ctrl), discardLogger())

	_, err := svc.ListEpisodes(context.Background(), services.ListEpisodesInput{From: "2024-02-01", To: "2024-01-01"})
	require.ErrorIs(t, err, services.ErrValidation)
	require.ErrorIs(t, err, valueobject.ErrInvalidRange)
}
