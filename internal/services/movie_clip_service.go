package services

import (
	"context"
	"strings"
	"time"

	"github.com/bionicotaku/lingo-services-clips/internal/metadata"
	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// MovieClipService 负责片段的增删改查、点赞以及按节目列出片段。
type MovieClipService struct {
	clips    MovieClipRepository
	episodes EpisodeRepository
	metrics  *usecaseMetrics
	log      *log.Helper
}

// NewMovieClipService 构造 MovieClipService。
func NewMovieClipService(clips MovieClipRepository, episodes EpisodeRepository, logger log.Logger) *MovieClipService {
	return &MovieClipService{
		clips:    clips,
		episodes: episodes,
		metrics:  newUsecaseMetrics(),
		log:      log.NewHelper(logger),
	}
}

// CreateMovieClipInput 创建片段的原始输入，Start/End 单位为秒。
type CreateMovieClipInput struct {
	Title     string
	URL       string
	Start     int
	End       int
	EpisodeID uuid.UUID
}

// ListMovieClipsInput 片段列表查询参数，OrderBy 取 start（默认）、likes 或 created。
// CreatedFrom/CreatedTo 为 YYYY-MM-DD，按创建日期半开区间过滤；After 为上一页最后一个片段的 ID。
type ListMovieClipsInput struct {
	EpisodeID   *uuid.UUID
	CreatedFrom string
	CreatedTo   string
	OrderBy     string
	After       *uuid.UUID
	Limit       int
}

// UpdateMovieClipInput 片段更新参数，nil 字段保持原值。
type UpdateMovieClipInput struct {
	ID        uuid.UUID
	Title     *string
	URL       *string
	Start     *int
	End       *int
	EpisodeID *uuid.UUID
}

// CreateMovieClip 校验输入并创建片段。节目 ID 为弱引用，不校验存在性。
func (s *MovieClipService) CreateMovieClip(ctx context.Context, input CreateMovieClipInput) (result *po.MovieClip, err error) {
	const op = "create movie clip"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	title, err := valueobject.NewRequiredString("title", input.Title)
	if err != nil {
		return nil, validationError(op, err)
	}
	url, err := valueobject.NewMovieURL("url", input.URL)
	if err != nil {
		return nil, validationError(op, err)
	}
	start, err := valueobject.NewSecond("start", input.Start)
	if err != nil {
		return nil, validationError(op, err)
	}
	end, err := valueobject.NewSecond("end", input.End)
	if err != nil {
		return nil, validationError(op, err)
	}
	clip, err := po.NewMovieClip(title, url, start, end, input.EpisodeID)
	if err != nil {
		return nil, validationError(op, err)
	}

	if _, err := s.clips.Create(ctx, clip); err != nil {
		s.log.WithContext(ctx).Errorf("create movie clip failed: episode_id=%s err=%v", input.EpisodeID, err)
		return nil, mapRepositoryError(op, err)
	}
	s.log.WithContext(ctx).Infof("CreateMovieClip: clip_id=%s episode_id=%s range=%s-%s actor=%s", clip.ID(), input.EpisodeID, start, end, metadata.Actor(ctx))
	return clip, nil
}

// GetMovieClip 按 ID 查询片段。
func (s *MovieClipService) GetMovieClip(ctx context.Context, id uuid.UUID) (result *po.MovieClip, err error) {
	const op = "get movie clip"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	clip, err := s.clips.Get(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(op, err)
	}
	return clip, nil
}

// ListMovieClips 按可选节目与创建日期过滤列出片段，After 给出时从该片段之后继续翻页。
// After 指向的片段不存在时返回 NotFound。
func (s *MovieClipService) ListMovieClips(ctx context.Context, input ListMovieClipsInput) (result []*po.MovieClip, err error) {
	const op = "list movie clips"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	filter := po.MovieClipFilter{EpisodeID: input.EpisodeID, Limit: input.Limit}
	filter.OrderBy, err = parseClipOrder(input.OrderBy)
	if err != nil {
		return nil, validationError(op, err)
	}
	if input.Limit < 0 {
		return nil, validationError(op, valueobject.NewValidationError(valueobject.KindInvalidRange, "limit", "limit must be non-negative"))
	}
	if input.CreatedFrom != "" {
		from, err := valueobject.ParseDate("created_from", input.CreatedFrom)
		if err != nil {
			return nil, validationError(op, err)
		}
		filter.CreatedFrom = &from
	}
	if input.CreatedTo != "" {
		to, err := valueobject.ParseDate("created_to", input.CreatedTo)
		if err != nil {
			return nil, validationError(op, err)
		}
		filter.CreatedTo = &to
	}
	if filter.CreatedFrom != nil && filter.CreatedTo != nil && filter.CreatedTo.Before(*filter.CreatedFrom) {
		return nil, validationError(op, valueobject.NewValidationError(valueobject.KindInvalidRange, "created_from", "created_from must not be after created_to"))
	}

	if input.After != nil {
		filter.After, err = s.clips.Get(ctx, *input.After)
		if err != nil {
			return nil, mapRepositoryError(op, err)
		}
	}

	clips, err := s.clips.List(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(op, err)
	}
	return clips, nil
}

// UpdateMovieClip 先校验所有出现的字段，再执行 Get → With* → Update；合并后的区间仍需满足 start < end。
func (s *MovieClipService) UpdateMovieClip(ctx context.Context, input UpdateMovieClipInput) (result *po.MovieClip, err error) {
	const op = "update movie clip"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	var (
		title      *valueobject.RequiredString
		url        *valueobject.MovieURL
		start, end *valueobject.Second
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
	if input.Start != nil {
		v, err := valueobject.NewSecond("start", *input.Start)
		if err != nil {
			return nil, validationError(op, err)
		}
		start = &v
	}
	if input.End != nil {
		v, err := valueobject.NewSecond("end", *input.End)
		if err != nil {
			return nil, validationError(op, err)
		}
		end = &v
	}

	clip, err := s.clips.Get(ctx, input.ID)
	if err != nil {
		return nil, mapRepositoryError(op, err)
	}
	if title != nil {
		clip = clip.WithTitle(*title)
	}
	if url != nil {
		clip = clip.WithURL(*url)
	}
	if start != nil || end != nil {
		nextStart, nextEnd := clip.Start(), clip.End()
		if start != nil {
			nextStart = *start
		}
		if end != nil {
			nextEnd = *end
		}
		clip, err = clip.WithRange(nextStart, nextEnd)
		if err != nil {
			return nil, validationError(op, err)
		}
	}
	if input.EpisodeID != nil {
		clip = clip.WithEpisode(*input.EpisodeID)
	}

	if err := s.clips.Update(ctx, input.ID, clip); err != nil {
		s.log.WithContext(ctx).Errorf("update movie clip failed: clip_id=%s err=%v", input.ID, err)
		return nil, mapRepositoryError(op, err)
	}
	s.log.WithContext(ctx).Infof("UpdateMovieClip: clip_id=%s actor=%s", input.ID, metadata.Actor(ctx))
	return clip, nil
}

// DeleteMovieClip 删除片段；不存在时返回 NotFound。
func (s *MovieClipService) DeleteMovieClip(ctx context.Context, id uuid.UUID) (err error) {
	const op = "delete movie clip"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	if err := s.clips.Delete(ctx, id); err != nil {
		return mapRepositoryError(op, err)
	}
	s.log.WithContext(ctx).Infof("DeleteMovieClip: clip_id=%s actor=%s", id, metadata.Actor(ctx))
	return nil
}

// LikeMovieClip 原子地为片段点赞一次，返回点赞后的片段。
func (s *MovieClipService) LikeMovieClip(ctx context.Context, id uuid.UUID) (result *po.MovieClip, err error) {
	const op = "like movie clip"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	if err := s.clips.IncrementLikes(ctx, id); err != nil {
		return nil, mapRepositoryError(op, err)
	}
	clip, err := s.clips.Get(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(op, err)
	}
	return clip, nil
}

// ListClipsByEpisode 先确认节目存在，再按起始秒升序列出其片段。
func (s *MovieClipService) ListClipsByEpisode(ctx context.Context, episodeID uuid.UUID) (result []*po.MovieClip, err error) {
	const op = "list clips by episode"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	if _, err := s.episodes.Get(ctx, episodeID); err != nil {
		return nil, mapRepositoryError(op, err)
	}
	clips, err := s.clips.List(ctx, po.MovieClipFilter{EpisodeID: &episodeID, OrderBy: po.ClipOrderStart})
	if err != nil {
		return nil, mapRepositoryError(op, err)
	}
	return clips, nil
}

func parseClipOrder(raw string) (po.ClipOrder, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(po.ClipOrderStart):
		return po.ClipOrderStart, nil
	case string(po.ClipOrderLikes):
		return po.ClipOrderLikes, nil
	case string(po.ClipOrderCreated):
		return po.ClipOrderCreated, nil
	default:
		return "", valueobject.NewValidationError(valueobject.KindInvalidKind, "order_by", "order_by must be start, likes or created")
	}
}
