package controllers

import (
	"context"

	"github.com/bionicotaku/lingo-services-clips/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-clips/internal/models/vo"
	"github.com/bionicotaku/lingo-services-clips/internal/services"
)

// MovieClipHandler 处理 /v1/clips 路由。
type MovieClipHandler struct {
	*BaseHandler
	clips services.MovieClipServiceInterface
}

// NewMovieClipHandler 构造 MovieClipHandler。
func NewMovieClipHandler(clips services.MovieClipServiceInterface, base *BaseHandler) *MovieClipHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &MovieClipHandler{BaseHandler: base, clips: clips}
}

// CreateMovieClip 创建片段。
func (h *MovieClipHandler) CreateMovieClip(ctx context.Context, req *dto.CreateMovieClipRequest) (*vo.MovieClip, error) {
	input, err := req.ToInput()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeCommand)
	defer cancel()

	clip, err := h.clips.CreateMovieClip(ctx, input)
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewMovieClipFromPO(clip), nil
}

// GetMovieClip 查询单个片段。
func (h *MovieClipHandler) GetMovieClip(ctx context.Context, req *dto.IDRequest) (*vo.MovieClip, error) {
	id, err := req.UUID()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeQuery)
	defer cancel()

	clip, err := h.clips.GetMovieClip(ctx, id)
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewMovieClipFromPO(clip), nil
}

// ListMovieClips 列出片段，可按节目过滤。
func (h *MovieClipHandler) ListMovieClips(ctx context.Context, req *dto.ListMovieClipsRequest) ([]*vo.MovieClip, error) {
	input, err := req.ToInput()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeQuery)
	defer cancel()

	clips, err := h.clips.ListMovieClips(ctx, input)
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewMovieClipList(clips), nil
}

// UpdateMovieClip 部分更新片段。
func (h *MovieClipHandler) UpdateMovieClip(ctx context.Context, req *dto.UpdateMovieClipRequest) (*vo.MovieClip, error) {
	input, err := req.ToInput()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeCommand)
	defer cancel()

	clip, err := h.clips.UpdateMovieClip(ctx, input)
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewMovieClipFromPO(clip), nil
}

// DeleteMovieClip 删除片段。
func (h *MovieClipHandler) DeleteMovieClip(ctx context.Context, req *dto.IDRequest) (*dto.DeleteResponse, error) {
	id, err := req.UUID()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeCommand)
	defer cancel()

	if err := h.clips.DeleteMovieClip(ctx, id); err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return &dto.DeleteResponse{ID: id, Deleted: true}, nil
}

// LikeMovieClip 为片段点赞。
func (h *MovieClipHandler) LikeMovieClip(ctx context.Context, req *dto.IDRequest) (*vo.MovieClip, error) {
	id, err := req.UUID()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeCommand)
	defer cancel()

	clip, err := h.clips.LikeMovieClip(ctx, id)
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewMovieClipFromPO(clip), nil
}

// ListClipsByEpisode 列出指定节目的片段，节目不存在时返回 404。
func (h *MovieClipHandler) ListClipsByEpisode(ctx context.Context, req *dto.IDRequest) ([]*vo.MovieClip, error) {
	id, err := req.UUID()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeQuery)
	defer cancel()

	clips, err := h.clips.ListClipsByEpisode(ctx, id)
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewMovieClipList(clips), nil
}
