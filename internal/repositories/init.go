package repositories

import (
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProviderSet 暴露 Repository 层的构造函数供 Wire 依赖注入使用。
var ProviderSet = wire.NewSet(
	wire.Bind(new(DB), new(*pgxpool.Pool)),
	NewEpisodeRepository,
	NewMovieClipRepository,
	NewVideoRepository,
)
