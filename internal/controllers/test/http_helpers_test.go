package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bionicotaku/lingo-services-clips/internal/controllers"
	"github.com/bionicotaku/lingo-services-clips/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/stretchr/testify/require"
)

func discardLogger() log.Logger { return log.NewStdLogger(io.Discard) }

type handlers struct {
	episodes services.EpisodeServiceInterface
	clips    services.MovieClipServiceInterface
	videos   services.VideoServiceInterface
}

func newTestServer(t *testing.T, hs handlers) *khttp.Server {
	t.Helper()
	srv := khttp.NewServer(
		khttp.Address("127.0.0.1:0"),
		khttp.Middleware(
			recovery.Recovery(),
			metadata.Server(metadata.WithPropagatedPrefix(controllers.PropagatedHeaderPrefixes()...)),
		),
	)
	base := controllers.NewBaseHandler(controllers.HandlerTimeouts{})
	if hs.episodes != nil {
		controllers.RegisterEpisodeHTTPServer(srv, controllers.NewEpisodeHandler(hs.episodes, base))
	}
	if hs.clips != nil {
		controllers.RegisterMovieClipHTTPServer(srv, controllers.NewMovieClipHandler(hs.clips, base))
	}
	if hs.videos != nil {
		controllers.RegisterVideoHTTPServer(srv, controllers.NewVideoHandler(hs.videos, base))
	}
	return srv
}

func doRequest(t *testing.T, srv http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	require.Zero(t, len(headers)%2, "headers 需成对出现")
	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

type errorBody struct {
	Code     int               `json:"code"`
	Reason   string            `json:"reason"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
