package controllers_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/bionicotaku/lingo-services-clips/internal/controllers"
	"github.com/bionicotaku/lingo-services-clips/internal/metadata"
	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"
	"github.com/bionicotaku/lingo-services-clips/internal/models/vo"
	"github.com/bionicotaku/lingo-services-clips/internal/services"
	"github.com/bionicotaku/lingo-services-clips/internal/services/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sampleEpisode(t *testing.T) *po.Episode {
	t.Helper()
	title, err := valueobject.NewRequiredString("title", "EP1")
	require.NoError(t, err)
	date, err := valueobject.NewDate("air_date", 2024, 1, 1)
	require.NoError(t, err)
	return po.NewEpisode(title, date)
}

func TestEpisodeHandler_Create(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEpisodeServiceInterface(ctrl)
	ep := sampleEpisode(t)
	userInfo := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"user-42"}`))

	svc.EXPECT().CreateEpisode(gomock.Any(), services.CreateEpisodeInput{Title: "EP1", AirDate: "2024-01-01"}).
		DoAndReturn(func(ctx context.Context, _ services.CreateEpisodeInput) (*po.Episode, error) {
			meta, ok := metadata.FromContext(ctx)
			require.True(t, ok)
			require.Equal(t, "user-42", meta.UserID)
			require.Equal(t, "req-1", meta.RequestID)
			_, hasDeadline := ctx.Deadline()
			require.True(t, hasDeadline)
			return ep, nil
		})

	srv := newTestServer(t, handlers{episodes: svc})
	rec := doRequest(t, srv, http.MethodPost, "/v1/episodes", `{"title":"EP1","air_date":"2024-01-01"}`,
		"X-Request-Id", "req-1",
		"X-Apigateway-Api-Userinfo", userInfo,
	)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	got := decode[vo.Episode](t, rec)
	require.Equal(t, ep.ID(), got.ID)
	require.Equal(t, "EP1", got.Title)
	require.Equal(t, "2024-01-01", got.AirDate)
}

func TestEpisodeHandler_ErrorMapping(t *testing.T) {
	t.Parallel()

	validation := &services.Error{Kind: services.KindValidation, Op: "create episode", Detail: "validation: title: title must not be empty"}
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"validation", validation, http.StatusBadRequest, controllers.ReasonValidation},
		{"not found", services.ErrNotFound, http.StatusNotFound, controllers.ReasonNotFound},
		{"infrastructure", services.ErrInfrastructure, http.StatusInternalServerError, controllers.ReasonInfrastructure},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockEpisodeServiceInterface(ctrl)
			svc.EXPECT().GetEpisode(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			srv := newTestServer(t, handlers{episodes: svc})
			rec := doRequest(t, srv, http.MethodGet, "/v1/episodes/"+uuid.NewString(), "", "X-Request-Id", "req-9")
			require.Equal(t, tc.wantStatus, rec.Code)

			body := decode[errorBody](t, rec)
			require.Equal(t, tc.wantReason, body.Reason)
			require.Equal(t, "req-9", body.Metadata["request_id"])
		})
	}
}

func TestEpisodeHandler_InvalidPathID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	srv := newTestServer(t, handlers{episodes: mocks.NewMockEpisodeServiceInterface(ctrl)})

	rec := doRequest(t, srv, http.MethodGet, "/v1/episodes/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, controllers.ReasonInvalidID, decode[errorBody](t, rec).Reason)
}

func TestEpisodeHandler_UpdatePassesOptionalFields(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEpisodeServiceInterface(ctrl)
	ep := sampleEpisode(t)

	svc.EXPECT().UpdateEpisode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in services.UpdateEpisodeInput) (*po.Episode, error) {
			require.Equal(t, ep.ID(), in.ID)
			require.NotNil(t, in.Title)
			require.Equal(t, "EP1 v2", *in.Title)
			require.Nil(t, in.AirDate)
			return ep, nil
		})

	srv := newTestServer(t, handlers{episodes: svc})
	rec := doRequest(t, srv, http.MethodPatch, "/v1/episodes/"+ep.ID().String(), `{"title":"EP1 v2"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestEpisodeHandler_ValidationMetadata(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockEpisodeServiceInterface(ctrl)
	cause := valueobject.NewValidationError(valueobject.KindInvalidDate, "from", "from must be formatted as YYYY-MM-DD")
	svc.EXPECT().ListEpisodes(gomock.Any(), services.ListEpisodesInput{From: "yesterday"}).
		Return(nil, services.NewError(services.KindValidation, "list episodes", cause))

	srv := newTestServer(t, handlers{episodes: svc})
	rec := doRequest(t, srv, http.MethodGet, "/v1/episodes?from=yesterday", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[errorBody](t, rec)
	require.Equal(t, "from", body.Metadata["field"])
	require.Equal(t, "invalid_date", body.Metadata["kind"])
}
