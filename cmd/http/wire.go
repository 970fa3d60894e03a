//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

//go:generate go run github.com/google/wire/cmd/wire

package main

import (
	"context"

	"github.com/bionicotaku/lingo-services-clips/internal/controllers"
	configloader "github.com/bionicotaku/lingo-services-clips/internal/infrastructure/configloader"
	httpserver "github.com/bionicotaku/lingo-services-clips/internal/infrastructure/http_server"
	"github.com/bionicotaku/lingo-services-clips/internal/repositories"
	"github.com/bionicotaku/lingo-services-clips/internal/services"

	"github.com/bionicotaku/lingo-utils/gcjwt"
	"github.com/bionicotaku/lingo-utils/gclog"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2"
	"github.com/google/wire"
)

// wireApp 构建整个 Kratos 应用，分阶段装配依赖。
//
// 依赖注入顺序:
//  1. 配置加载: configloader.ProviderSet 解析配置并派生组件配置
//  2. 基础设施: gclog → observability → gcjwt → pgxpoolx → txmanager
//  3. 业务层: repositories → services → controllers
//  4. 服务器: httpserver.ProviderSet 组装 HTTP Server
//  5. 应用: newApp 创建 Kratos App
func wireApp(context.Context, configloader.Params) (*kratos.App, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet, // 配置加载与解析
		gclog.ProviderSet,        // 结构化日志
		gcjwt.ProviderSet,        // JWT 认证中间件（未配置 server.jwt 时为空）
		obswire.ProviderSet,      // OpenTelemetry 追踪和指标
		pgxpoolx.ProviderSet,     // PostgreSQL 连接池
		txmanager.ProviderSet,    // 事务管理器
		httpserver.ProviderSet,   // HTTP Server
		repositories.ProviderSet, // 数据访问层（pgx）
		services.ProviderSet,     // 用例层，含仓储端口与服务接口绑定
		controllers.ProviderSet,  // 控制器层（HTTP handlers）
		newApp,                   // 组装 Kratos 应用
	))
}

// 主要 Provider 一览（生成代码见 wire_gen.go）：
//
//   - configloader.LoadRuntimeConfig(configloader.Params) (configloader.RuntimeConfig, error)
//   - gclog.NewComponent(gclog.Config) (*gclog.Component, func(), error)
//   - observability.NewComponent(context.Context, observability.ObservabilityConfig,
//     observability.ServiceInfo, log.Logger) (*observability.Component, func(), error)
//   - gcjwt.NewComponent(gcjwt.Config, log.Logger) (*gcjwt.Component, func(), error)
//   - pgxpoolx.ProvideComponent(context.Context, pgxpoolx.Config, log.Logger) (*pgxpoolx.Component, func(), error)
//   - txmanager.NewComponent(txmanager.Config, *pgxpool.Pool, log.Logger) (*txmanager.Component, func(), error)
//   - repositories.New{Episode,MovieClip,Video}Repository(repositories.DB, txmanager.Manager, log.Logger)
//   - services.New{Episode,MovieClip,Video}Service(端口接口..., log.Logger)
//   - controllers.New{Episode,MovieClip,Video}Handler(服务接口, *controllers.BaseHandler)
//   - httpserver.NewHTTPServer(configloader.ServerConfig, *observability.MetricsConfig,
//     gcjwt.ServerMiddleware, handlers..., log.Logger) *khttp.Server
//   - newApp(*observability.Component, log.Logger, *khttp.Server, configloader.ServiceInfo) *kratos.App
