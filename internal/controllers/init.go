// Package controllers 提供 HTTP 传输层 Handler，负责请求绑定、调用用例并映射错误。
package controllers

import "github.com/google/wire"

// ProviderSet exposes controller/handler constructors for DI.
var ProviderSet = wire.NewSet(
	NewBaseHandler,
	NewEpisodeHandler,
	NewMovieClipHandler,
	NewVideoHandler,
)
