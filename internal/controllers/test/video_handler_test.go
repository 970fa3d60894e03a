package controllers_test

import (
	"net/http"
	"testing"

	"github.com/bionicotaku/lingo-services-clips/internal/controllers"
	"github.com/bionicotaku/lingo-services-clips/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"
	"github.com/bionicotaku/lingo-services-clips/internal/models/vo"
	"github.com/bionicotaku/lingo-services-clips/internal/services"
	"github.com/bionicotaku/lingo-services-clips/internal/services/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sampleVideo(t *testing.T, kind po.VideoKind) *po.Video {
	t.Helper()
	title, err := valueobject.NewRequiredString("title", "歌枠")
	require.NoError(t, err)
	url, err := valueobject.NewMovieURL("url", "https://youtu.be/abc123")
	require.NoError(t, err)
	date, err := valueobject.NewDate("published_on", 2024, 3, 1)
	require.NoError(t, err)
	video, err := po.NewVideo(title, url, kind, "channel", date)
	require.NoError(t, err)
	return video
}

func TestVideoHandler_Create(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockVideoServiceInterface(ctrl)
	video := sampleVideo(t, po.VideoKindKirinuki)

	svc.EXPECT().CreateVideo(gomock.Any(), services.CreateVideoInput{
		Title:       "歌枠",
		URL:         "https://youtu.be/abc123",
		Kind:        "Kirinuki",
		Author:      "channel",
		PublishedOn: "2024-03-01",
	}).Return(video, nil)

	srv := newTestServer(t, handlers{videos: svc})
	rec := doRequest(t, srv, http.MethodPost, "/v1/videos",
		`{"title":"歌枠","url":"https://youtu.be/abc123","kind":"Kirinuki","author":"channel","published_on":"2024-03-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	got := decode[vo.Video](t, rec)
	require.Equal(t, video.ID(), got.ID)
	require.Equal(t, "Kirinuki", got.Kind)
	require.Equal(t, "abc123", got.YouTubeID)
	require.Equal(t, "2024-03-01", got.PublishedOn)
}

func TestVideoHandler_CreateInvalidKind(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockVideoServiceInterface(ctrl)
	_, kindErr := po.ParseVideoKind("remix")

	svc.EXPECT().CreateVideo(gomock.Any(), gomock.Any()).
		Return(nil, services.NewError(services.KindValidation, "create video", kindErr))

	srv := newTestServer(t, handlers{videos: svc})
	rec := doRequest(t, srv, http.MethodPost, "/v1/videos",
		`{"title":"x","url":"https://example.com","kind":"remix","published_on":"2024-03-01"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[errorBody](t, rec)
	require.Equal(t, controllers.ReasonValidation, body.Reason)
	require.Equal(t, "kind", body.Metadata["field"])
	require.Equal(t, "invalid_kind", body.Metadata["kind"])
}

func TestVideoHandler_GetInvalidID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockVideoServiceInterface(ctrl)
	srv := newTestServer(t, handlers{videos: svc})

	rec := doRequest(t, srv, http.MethodGet, "/v1/videos/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, controllers.ReasonInvalidID, decode[errorBody](t, rec).Reason)
}

func TestVideoHandler_List(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockVideoServiceInterface(ctrl)
	videos := []*po.Video{sampleVideo(t, po.VideoKindOriginal)}

	svc.EXPECT().ListVideos(gomock.Any(), services.ListVideosInput{Kind: "original", OrderBy: "likes"}).
		Return(videos, nil)

	srv := newTestServer(t, handlers{videos: svc})
	rec := doRequest(t, srv, http.MethodGet, "/v1/videos?kind=original&order_by=likes", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[[]vo.Video](t, rec)
	require.Len(t, got, 1)
	require.Equal(t, "Original", got[0].Kind)
}

func TestVideoHandler_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockVideoServiceInterface(ctrl)
	video := sampleVideo(t, po.VideoKindOriginal)
	author := ""

	gomock.InOrder(
		svc.EXPECT().UpdateVideo(gomock.Any(), services.UpdateVideoInput{ID: video.ID(), Author: &author}).
			Return(video.WithAuthor(""), nil),
		svc.EXPECT().DeleteVideo(gomock.Any(), video.ID()).Return(nil),
	)

	srv := newTestServer(t, handlers{videos: svc})
	rec := doRequest(t, srv, http.MethodPatch, "/v1/videos/"+video.ID().String(), `{"author":""}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Empty(t, decode[vo.Video](t, rec).Author)

	rec = doRequest(t, srv, http.MethodDelete, "/v1/videos/"+video.ID().String(), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, dto.DeleteResponse{ID: video.ID(), Deleted: true}, decode[dto.DeleteResponse](t, rec))
}

func TestVideoHandler_LikeNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockVideoServiceInterface(ctrl)
	id := uuid.New()

	svc.EXPECT().LikeVideo(gomock.Any(), id).Return(nil, services.ErrNotFound)

	srv := newTestServer(t, handlers{videos: svc})
	rec := doRequest(t, srv, http.MethodPost, "/v1/videos/"+id.String()+"/like", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
