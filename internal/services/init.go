// Package services 包含应用业务用例的编排逻辑。
// 该层通过仓储端口接口访问持久化，负责值对象校验与错误映射，不直接依赖传输层或基础设施细节。
package services

import (
	"github.com/bionicotaku/lingo-services-clips/internal/repositories"
	"github.com/google/wire"
)

// ProviderSet 暴露 Services 层的构造函数供 Wire 依赖注入使用。
// 仓储端口默认绑定到 PostgreSQL 实现，服务接口绑定到具体用例供 Controller 注入。
var ProviderSet = wire.NewSet(
	NewEpisodeService,
	NewMovieClipService,
	NewVideoService,
	wire.Bind(new(EpisodeRepository), new(*repositories.EpisodeRepository)),
	wire.Bind(new(MovieClipRepository), new(*repositories.MovieClipRepository)),
	wire.Bind(new(VideoRepository), new(*repositories.VideoRepository)),
	wire.Bind(new(EpisodeServiceInterface), new(*EpisodeService)),
	wire.Bind(new(MovieClipServiceInterface), new(*MovieClipService)),
	wire.Bind(new(VideoServiceInterface), new(*VideoService)),
)
