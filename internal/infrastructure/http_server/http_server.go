// Package httpserver 负责装配入站 HTTP Server 及其中间件栈。
// 包括：追踪、恢复、元数据透传、可选 JWT、限流、日志等中间件，以及可选的指标采集。
package httpserver

import (
	"net/http"

	"github.com/bionicotaku/lingo-services-clips/internal/controllers"
	configloader "github.com/bionicotaku/lingo-services-clips/internal/infrastructure/configloader"

	"github.com/bionicotaku/lingo-utils/gcjwt"
	"github.com/bionicotaku/lingo-utils/observability"
	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	"github.com/go-kratos/kratos/v2/middleware/ratelimit"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// HealthPath 存活探针路径，不经过业务中间件。
const HealthPath = "/healthz"

// NewHTTPServer 构造配置完整的 Kratos HTTP Server 实例。
//
// 中间件链（按执行顺序）：
// 1. obsTrace.Server() - OpenTelemetry 追踪，自动创建 Span
// 2. recovery.Recovery() - Panic 恢复
// 3. metadata.Server() - 透传 x-md- 前缀、x-request-id 与网关用户信息 header
// 4. gcjwt - 可选的 JWT 校验
// 5. ratelimit.Server() - 限流保护
// 6. logging.Server() - 结构化日志记录（含 trace_id/span_id）
//
// metricsCfg.GRPCEnabled 为真时以 otelhttp 过滤器采集 HTTP 指标，GRPCIncludeHealth 控制是否包含健康检查。
func NewHTTPServer(
	cfg configloader.ServerConfig,
	metricsCfg *observability.MetricsConfig,
	jwt gcjwt.ServerMiddleware,
	episodes *controllers.EpisodeHandler,
	clips *controllers.MovieClipHandler,
	videos *controllers.VideoHandler,
	logger log.Logger,
) *khttp.Server {
	metricsEnabled := true
	includeHealth := false
	if metricsCfg != nil {
		metricsEnabled = metricsCfg.GRPCEnabled
		includeHealth = metricsCfg.GRPCIncludeHealth
	}

	mws := []middleware.Middleware{
		obsTrace.Server(),
		recovery.Recovery(),
		metadata.Server(metadata.WithPropagatedPrefix(propagatedPrefixes(cfg.MetadataKeys)...)),
	}
	if jwt != nil {
		mws = append(mws, middleware.Middleware(jwt))
	}
	mws = append(mws,
		ratelimit.Server(),
		logging.Server(logger),
	)

	opts := []khttp.ServerOption{
		khttp.Middleware(mws...),
	}
	if metricsEnabled {
		opts = append(opts, khttp.Filter(newMetricsFilter(includeHealth)))
	}
	if cfg.Network != "" {
		opts = append(opts, khttp.Network(cfg.Network))
	}
	if cfg.Address != "" {
		opts = append(opts, khttp.Address(cfg.Address))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, khttp.Timeout(cfg.Timeout))
	}
	srv := khttp.NewServer(opts...)
	srv.HandleFunc(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if episodes != nil {
		controllers.RegisterEpisodeHTTPServer(srv, episodes)
	}
	if clips != nil {
		controllers.RegisterMovieClipHTTPServer(srv, clips)
	}
	if videos != nil {
		controllers.RegisterVideoHTTPServer(srv, videos)
	}
	return srv
}

// propagatedPrefixes 合并配置的 metadata 前缀与控制层依赖的固定 header。
func propagatedPrefixes(configured []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, key := range append(append([]string(nil), configured...), controllers.PropagatedHeaderPrefixes()...) {
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// newMetricsFilter 构造仅采集指标的 otelhttp 过滤器；追踪由 obsTrace 中间件负责。
func newMetricsFilter(includeHealth bool) khttp.FilterFunc {
	opts := []otelhttp.Option{
		otelhttp.WithMeterProvider(otel.GetMeterProvider()),
		otelhttp.WithTracerProvider(tracenoop.NewTracerProvider()),
	}
	if !includeHealth {
		opts = append(opts, otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != HealthPath
		}))
	}
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, "clips.http", opts...)
	}
}
