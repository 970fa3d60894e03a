package controllers

import (
	"context"

	"github.com/bionicotaku/lingo-services-clips/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-clips/internal/models/vo"
	"github.com/bionicotaku/lingo-services-clips/internal/services"
)

// EpisodeHandler 处理 /v1/episodes 路由。
type EpisodeHandler struct {
	*BaseHandler
	episodes services.EpisodeServiceInterface
}

// NewEpisodeHandler 构造 EpisodeHandler。
func NewEpisodeHandler(episodes services.EpisodeServiceInterface, base *BaseHandler) *EpisodeHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &EpisodeHandler{BaseHandler: base, episodes: episodes}
}

// CreateEpisode 创建节目。
func (h *EpisodeHandler) CreateEpisode(ctx context.Context, req *dto.CreateEpisodeRequest) (*vo.Episode, error) {
	ctx, cancel := h.begin(ctx, HandlerTypeCommand)
	defer cancel()

	ep, err := h.episodes.CreateEpisode(ctx, req.ToInput())
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewEpisodeFromPO(ep), nil
}

// GetEpisode 查询单个节目。
func (h *EpisodeHandler) GetEpisode(ctx context.Context, req *dto.IDRequest) (*vo.Episode, error) {
	id, err := req.UUID()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeQuery)
	defer cancel()

	ep, err := h.episodes.GetEpisode(ctx, id)
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewEpisodeFromPO(ep), nil
}

// ListEpisodes 按播出日期区间列出节目。
func (h *EpisodeHandler) ListEpisodes(ctx context.Context, req *dto.ListEpisodesRequest) ([]*vo.Episode, error) {
	ctx, cancel := h.begin(ctx, HandlerTypeQuery)
	defer cancel()

	episodes, err := h.episodes.ListEpisodes(ctx, req.ToInput())
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewEpisodeList(episodes), nil
}

// UpdateEpisode 部分更新节目。
func (h *EpisodeHandler) UpdateEpisode(ctx context.Context, req *dto.UpdateEpisodeRequest) (*vo.Episode, error) {
	input, err := req.ToInput()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeCommand)
	defer cancel()

	ep, err := h.episodes.UpdateEpisode(ctx, input)
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewEpisodeFromPO(ep), nil
}

// DeleteEpisode 删除节目。
func (h *EpisodeHandler) DeleteEpisode(ctx context.Context, req *dto.IDRequest) (*dto.DeleteResponse, error) {
	id, err := req.UUID()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeCommand)
	defer cancel()

	if err := h.episodes.DeleteEpisode(ctx, id); err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return &dto.DeleteResponse{ID: id, Deleted: true}, nil
}

// GetEpisodeDetail 返回节目及其片段。
func (h *EpisodeHandler) GetEpisodeDetail(ctx context.Context, req *dto.IDRequest) (*vo.EpisodeDetail, error) {
	id, err := req.UUID()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeQuery)
	defer cancel()

	detail, err := h.episodes.GetEpisodeDetail(ctx, id)
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewEpisodeDetail(detail.Episode, detail.Clips), nil
}
