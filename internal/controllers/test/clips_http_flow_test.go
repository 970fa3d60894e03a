package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/bionicotaku/lingo-services-clips/internal/controllers"
	"github.com/bionicotaku/lingo-services-clips/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-clips/internal/models/vo"
	"github.com/bionicotaku/lingo-services-clips/internal/repositories/memory"
	"github.com/bionicotaku/lingo-services-clips/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newMemoryServer(t *testing.T) http.Handler {
	t.Helper()
	episodes := memory.NewEpisodeStore()
	clips := memory.NewMovieClipStore()
	videos := memory.NewVideoStore()
	return newTestServer(t, handlers{
		episodes: services.NewEpisodeService(episodes, clips, discardLogger()),
		clips:    services.NewMovieClipService(clips, episodes, discardLogger()),
		videos:   services.NewVideoService(videos, discardLogger()),
	})
}

func TestClipsHTTPFlow_EpisodeWithClips(t *testing.T) {
	t.Parallel()
	srv := newMemoryServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/v1/episodes", `{"title":"EP1","air_date":"2024-01-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	ep := decode[vo.Episode](t, rec)

	rec = doRequest(t, srv, http.MethodPost, "/v1/clips",
		fmt.Sprintf(`{"title":"Clip A","url":"https://example.com/v1","start":10,"end":20,"episode_id":%q}`, ep.ID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	clip := decode[vo.MovieClip](t, rec)
	require.Equal(t, "00:00:10", clip.StartText)

	rec = doRequest(t, srv, http.MethodGet, "/v1/episodes/"+ep.ID.String()+"/clips", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	listed := decode[[]vo.MovieClip](t, rec)
	require.Equal(t, []vo.MovieClip{clip}, listed)

	rec = doRequest(t, srv, http.MethodGet, "/v1/episodes/"+ep.ID.String()+"/detail", "")
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[vo.EpisodeDetail](t, rec)
	require.Equal(t, ep, *detail.Episode)
	require.Len(t, detail.Clips, 1)

	rec = doRequest(t, srv, http.MethodPost, "/v1/clips/"+clip.ID.String()+"/like", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, decode[vo.MovieClip](t, rec).Likes)
}

func TestClipsHTTPFlow_InvalidRange(t *testing.T) {
	t.Parallel()
	srv := newMemoryServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/v1/clips",
		fmt.Sprintf(`{"title":"Clip B","url":"https://example.com/v1","start":30,"end":20,"episode_id":%q}`, uuid.NewString()))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errorBody](t, rec)
	require.Equal(t, controllers.ReasonValidation, body.Reason)
	require.Equal(t, "invalid_range", body.Metadata["kind"])
}

func TestClipsHTTPFlow_DeleteThenGet(t *testing.T) {
	t.Parallel()
	srv := newMemoryServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/v1/videos",
		`{"title":"配信","url":"https://youtu.be/dQw4w9WgXcQ","kind":"Original","published_on":"2024-02-29"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	video := decode[vo.Video](t, rec)
	require.Equal(t, "dQw4w9WgXcQ", video.YouTubeID)

	rec = doRequest(t, srv, http.MethodDelete, "/v1/videos/"+video.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decode[dto.DeleteResponse](t, rec).Deleted)

	rec = doRequest(t, srv, http.MethodGet, "/v1/videos/"+video.ID.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, srv, http.MethodDelete, "/v1/videos/"+video.ID.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClipsHTTPFlow_ListFilters(t *testing.T) {
	t.Parallel()
	srv := newMemoryServer(t)

	for _, body := range []string{
		`{"title":"A","url":"https://example.com/a","kind":"Original","published_on":"2024-01-01"}`,
		`{"title":"B","url":"https://example.com/b","kind":"Kirinuki","published_on":"2024-01-02"}`,
	} {
		rec := doRequest(t, srv, http.MethodPost, "/v1/videos", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doRequest(t, srv, http.MethodGet, "/v1/videos?kind=kirinuki", "")
	require.Equal(t, http.StatusOK, rec.Code)
	videos := decode[[]vo.Video](t, rec)
	require.Len(t, videos, 1)
	require.Equal(t, "Kirinuki", videos[0].Kind)

	rec = doRequest(t, srv, http.MethodGet, "/v1/videos?order_by=views", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/v1/clips?episode_id=bogus", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, controllers.ReasonInvalidID, decode[errorBody](t, rec).Reason)
}

func TestClipsHTTPFlow_PagesWithAfterCursor(t *testing.T) {
	t.Parallel()
	srv := newMemoryServer(t)

	for _, date := range []string{"2024-01-01", "2024-01-03", "2024-01-02"} {
		body := `{"title":"V","url":"https://example.com/v","kind":"Original","published_on":"` + date + `"}`
		rec := doRequest(t, srv, http.MethodPost, "/v1/videos", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doRequest(t, srv, http.MethodGet, "/v1/videos?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decode[[]vo.Video](t, rec)
	require.Len(t, first, 2)
	require.Equal(t, []string{"2024-01-03", "2024-01-02"}, []string{first[0].PublishedOn, first[1].PublishedOn})

	rec = doRequest(t, srv, http.MethodGet, "/v1/videos?limit=2&after="+first[1].ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rest := decode[[]vo.Video](t, rec)
	require.Len(t, rest, 1)
	require.Equal(t, "2024-01-01", rest[0].PublishedOn)

	rec = doRequest(t, srv, http.MethodGet, "/v1/videos?after=nope", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, controllers.ReasonInvalidID, decode[errorBody](t, rec).Reason)

	rec = doRequest(t, srv, http.MethodGet, "/v1/clips?order_by=created&after="+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	rec = doRequest(t, srv, http.MethodGet, "/v1/clips?order_by=created&created_from=2024-02-01&created_to=2024-01-01", "")
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}
