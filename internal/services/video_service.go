package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bionicotaku/lingo-services-clips/internal/metadata"
	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"
	"github.com/bionicotaku/lingo-services-clips/internal/repositories"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// VideoService 负责来源视频（Original / Kirinuki）的增删改查与点赞。
type VideoService struct {
	videos  VideoRepository
	metrics *usecaseMetrics
	log     *log.Helper
}

// NewVideoService 构造 VideoService。
func NewVideoService(videos VideoRepository, logger log.Logger) *VideoService {
	return &VideoService{
		videos:  videos,
		metrics: newUsecaseMetrics(),
		log:     log.NewHelper(logger),
	}
}

// CreateVideoInput 创建视频的原始输入，PublishedOn 为 YYYY-MM-DD，Author 可为空。
type CreateVideoInput struct {
	Title       string
	URL         string
	Kind        string
	Author      string
	PublishedOn string
}

// ListVideosInput 视频列表查询参数，OrderBy 取 published（默认）或 likes，After 为上一页最后一个视频的 ID。
type ListVideosInput struct {
	Kind    string
	OrderBy string
	After   *uuid.UUID
	Limit   int
}

// UpdateVideoInput 视频更新参数，nil 字段保持原值。
type UpdateVideoInput struct {
	ID          uuid.UUID
	Title       *string
	URL         *string
	Kind        *string
	Author      *string
	PublishedOn *string
}

// CreateVideo 校验输入并创建视频。
func (s *VideoService) CreateVideo(ctx context.Context, input CreateVideoInput) (result *po.Video, err error) {
	const op = "create video"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	title, err := valueobject.NewRequiredString("title", input.Title)
	if err != nil {
		return nil, validationError(op, err)
	}
	url, err := valueobject.NewMovieURL("url", input.URL)
	if err != nil {
		return nil, validationError(op, err)
	}
	kind, err := po.ParseVideoKind(input.Kind)
	if err != nil {
		return nil, validationError(op, err)
	}
	publishedOn, err := valueobject.ParseDate("published_on", input.PublishedOn)
	if err != nil {
		return nil, validationError(op, err)
	}
	video, err := po.NewVideo(title, url, kind, strings.TrimSpace(input.Author), publishedOn)
	if err != nil {
		return nil, validationError(op, err)
	}

	if _, err := s.videos.Create(ctx, video); err != nil {
		s.log.WithContext(ctx).Errorf("create video failed: title=%s err=%v", input.Title, err)
		return nil, mapRepositoryError(op, err)
	}
	s.log.WithContext(ctx).Infof("CreateVideo: video_id=%s kind=%s actor=%s", video.ID(), kind, metadata.Actor(ctx))
	return video, nil
}

// GetVideo 按 ID 查询视频。
func (s *VideoService) GetVideo(ctx context.Context, id uuid.UUID) (result *po.Video, err error) {
	const op = "get video"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	video, err := s.videos.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.log.WithContext(ctx).Warnf("get video not found: video_id=%s", id)
		}
		return nil, mapRepositoryError(op, err)
	}
	return video, nil
}

// ListVideos 按可选类别过滤列出视频，After 给出时从该视频之后继续翻页；After 不存在时返回 NotFound。
func (s *VideoService) ListVideos(ctx context.Context, input ListVideosInput) (result []*po.Video, err error) {
	const op = "list videos"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	var filter po.VideoFilter
	if strings.TrimSpace(input.Kind) != "" {
		kind, err := po.ParseVideoKind(input.Kind)
		if err != nil {
			return nil, validationError(op, err)
		}
		filter.Kind = &kind
	}
	switch strings.ToLower(strings.TrimSpace(input.OrderBy)) {
	case "", string(po.VideoOrderPublished):
		filter.OrderBy = po.VideoOrderPublished
	case string(po.VideoOrderLikes):
		filter.OrderBy = po.VideoOrderLikes
	default:
		return nil, validationError(op, valueobject.NewValidationError(valueobject.KindInvalidKind, "order_by", "order_by must be published or likes"))
	}
	if input.Limit < 0 {
		return nil, validationError(op, valueobject.NewValidationError(valueobject.KindInvalidRange, "limit", "limit must be non-negative"))
	}
	filter.Limit = input.Limit
	if input.After != nil {
		filter.After, err = s.videos.Get(ctx, *input.After)
		if err != nil {
			return nil, mapRepositoryError(op, err)
		}
	}

	videos, err := s.videos.List(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(op, err)
	}
	return videos, nil
}

// UpdateVideo 先校验所有出现的字段，再执行 Get → With* → Update。
func (s *VideoService) UpdateVideo(ctx context.Context, input UpdateVideoInput) (result *po.Video, err error) {
	const op = "update video"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	var (
		title       *valueobject.RequiredString
		url         *valueobject.MovieURL
		kind        *po.VideoKind
		publishedOn *valueobject.Date
	)
	if input.Title != nil {
		v, err := valueobject.NewRequiredString("title", *input.Title)
		if err != nil {
			return nil, validationError(op, err)
		}
		title = &v
	}
	if input.URL != nil {
		v, err := valueobject.NewMovieURL("url", *input.URL)
		if err != nil {
			return nil, validationError(op, err)
		}
		url = &v
	}
	if input.Kind != nil {
		v, err := po.ParseVideoKind(*input.Kind)
		if err != nil {
			return nil, validationError(op, err)
		}
		kind = &v
	}
	if input.PublishedOn != nil {
		v, err := valueobject.ParseDate("published_on", *input.PublishedOn)
		if err != nil {
			return nil, validationError(op, err)
		}
		publishedOn = &v
	}

	video, err := s.videos.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.log.WithContext(ctx).Warnf("update video not found: video_id=%s", input.ID)
		}
		return nil, mapRepositoryError(op, err)
	}
	if title != nil {
		video = video.WithTitle(*title)
	}
	if url != nil {
		video = video.WithURL(*url)
	}
	if kind != nil {
		video, err = video.WithKind(*kind)
		if err != nil {
			return nil, validationError(op, err)
		}
	}
	if input.Author != nil {
		video = video.WithAuthor(strings.TrimSpace(*input.Author))
	}
	if publishedOn != nil {
		video = video.WithPublishedOn(*publishedOn)
	}

	if err := s.videos.Update(ctx, input.ID, video); err != nil {
		s.log.WithContext(ctx).Errorf("update video failed: video_id=%s err=%v", input.ID, err)
		return nil, mapRepositoryError(op, err)
	}
	s.log.WithContext(ctx).Infof("UpdateVideo: video_id=%s actor=%s", input.ID, metadata.Actor(ctx))
	return video, nil
}

// DeleteVideo 删除视频；不存在时返回 NotFound。
func (s *VideoService) DeleteVideo(ctx context.Context, id uuid.UUID) (err error) {
	const op = "delete video"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	if err := s.videos.Delete(ctx, id); err != nil {
		return mapRepositoryError(op, err)
	}
	s.log.WithContext(ctx).Infof("DeleteVideo: video_id=%s actor=%s", id, metadata.Actor(ctx))
	return nil
}

// LikeVideo 原子地为视频点赞一次，返回点赞后的视频。
func (s *VideoService) LikeVideo(ctx context.Context, id uuid.UUID) (result *po.Video, err error) {
	const op = "like video"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	if err := s.videos.IncrementLikes(ctx, id); err != nil {
		return nil, mapRepositoryError(op, err)
	}
	video, err := s.videos.Get(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(op, err)
	}
	return video, nil
}
