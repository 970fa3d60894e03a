package controllers

import (
	"context"

	"github.com/bionicotaku/lingo-services-clips/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-clips/internal/models/vo"
	"github.com/bionicotaku/lingo-services-clips/internal/services"
)

// VideoHandler 处理 /v1/videos 路由。
type VideoHandler struct {
	*BaseHandler
	videos services.VideoServiceInterface
}

// NewVideoHandler 构造 VideoHandler。
func NewVideoHandler(videos services.VideoServiceInterface, base *BaseHandler) *VideoHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &VideoHandler{BaseHandler: base, videos: videos}
}

// CreateVideo 创建视频。
func (h *VideoHandler) CreateVideo(ctx context.Context, req *dto.CreateVideoRequest) (*vo.Video, error) {
	ctx, cancel := h.begin(ctx, HandlerTypeCommand)
	defer cancel()

	video, err := h.videos.CreateVideo(ctx, req.ToInput())
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewVideoFromPO(video), nil
}

// GetVideo 查询单个视频。
func (h *VideoHandler) GetVideo(ctx context.Context, req *dto.IDRequest) (*vo.Video, error) {
	id, err := req.UUID()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeQuery)
	defer cancel()

	video, err := h.videos.GetVideo(ctx, id)
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewVideoFromPO(video), nil
}

// ListVideos 列出视频，可按类别过滤。
func (h *VideoHandler) ListVideos(ctx context.Context, req *dto.ListVideosRequest) ([]*vo.Video, error) {
	input, err := req.ToInput()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeQuery)
	defer cancel()

	videos, err := h.videos.ListVideos(ctx, input)
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewVideoList(videos), nil
}

// UpdateVideo 部分更新视频。
func (h *VideoHandler) UpdateVideo(ctx context.Context, req *dto.UpdateVideoRequest) (*vo.Video, error) {
	input, err := req.ToInput()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeCommand)
	defer cancel()

	video, err := h.videos.UpdateVideo(ctx, input)
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewVideoFromPO(video), nil
}

// DeleteVideo 删除视频。
func (h *VideoHandler) DeleteVideo(ctx context.Context, req *dto.IDRequest) (*dto.DeleteResponse, error) {
	id, err := req.UUID()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeCommand)
	defer cancel()

	if err := h.videos.DeleteVideo(ctx, id); err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return &dto.DeleteResponse{ID: id, Deleted: true}, nil
}

// LikeVideo 为视频点赞。
func (h *VideoHandler) LikeVideo(ctx context.Context, req *dto.IDRequest) (*vo.Video, error) {
	id, err := req.UUID()
	if err != nil {
		return nil, invalidID(err)
	}
	ctx, cancel := h.begin(ctx, HandlerTypeCommand)
	defer cancel()

	video, err := h.videos.LikeVideo(ctx, id)
	if err != nil {
		return nil, toHTTPError(ctx, err)
	}
	return vo.NewVideoFromPO(video), nil
}
