package services

import (
	"context"
	"time"

	"github.com/bionicotaku/lingo-services-clips/internal/metadata"
	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// EpisodeService 负责节目的增删改查以及节目详情组合查询。
type EpisodeService struct {
	episodes EpisodeRepository
	clips    MovieClipRepository
	metrics  *usecaseMetrics
	log      *log.Helper
}

// NewEpisodeService 构造 EpisodeService。
func NewEpisodeService(episodes EpisodeRepository, clips MovieClipRepository, logger log.Logger) *EpisodeService {
	return &EpisodeService{
		episodes: episodes,
		clips:    clips,
		metrics:  newUsecaseMetrics(),
		log:      log.NewHelper(logger),
	}
}

// CreateEpisodeInput 创建节目的原始输入，AirDate 为 YYYY-MM-DD。
type CreateEpisodeInput struct {
	Title   string
	AirDate string
}

// ListEpisodesInput 播出日期半开区间 [From, To)，空字符串表示不限。
type ListEpisodesInput struct {
	From string
	To   string
}

// UpdateEpisodeInput 节目更新参数，nil 字段保持原值。
type UpdateEpisodeInput struct {
	ID      uuid.UUID
	Title   *string
	AirDate *string
}

// EpisodeDetail 节目及其全部片段（按起始秒升序）。
type EpisodeDetail struct {
	Episode *po.Episode
	Clips   []*po.MovieClip
}

// CreateEpisode 校验输入并创建节目。
func (s *EpisodeService) CreateEpisode(ctx context.Context, input CreateEpisodeInput) (result *po.Episode, err error) {
	const op = "create episode"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	title, err := valueobject.NewRequiredString("title", input.Title)
	if err != nil {
		return nil, validationError(op, err)
	}
	airDate, err := valueobject.ParseDate("air_date", input.AirDate)
	if err != nil {
		return nil, validationError(op, err)
	}

	ep := po.NewEpisode(title, airDate)
	if _, err := s.episodes.Create(ctx, ep); err != nil {
		s.log.WithContext(ctx).Errorf("create episode failed: title=%s err=%v", input.Title, err)
		return nil, mapRepositoryError(op, err)
	}
	s.log.WithContext(ctx).Infof("CreateEpisode: episode_id=%s air_date=%s actor=%s", ep.ID(), airDate, metadata.Actor(ctx))
	return ep, nil
}

// GetEpisode 按 ID 查询节目。
func (s *EpisodeService) GetEpisode(ctx context.Context, id uuid.UUID) (result *po.Episode, err error) {
	const op = "get episode"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	ep, err := s.episodes.Get(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(op, err)
	}
	return ep, nil
}

// ListEpisodes 按播出日期区间列出节目。
func (s *EpisodeService) ListEpisodes(ctx context.Context, input ListEpisodesInput) (result []*po.Episode, err error) {
	const op = "list episodes"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	var filter po.EpisodeFilter
	if input.From != "" {
		from, err := valueobject.ParseDate("from", input.From)
		if err != nil {
			return nil, validationError(op, err)
		}
		filter.From = &from
	}
	if input.To != "" {
		to, err := valueobject.ParseDate("to", input.To)
		if err != nil {
			return nil, validationError(op, err)
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, validationError(op, valueobject.NewValidationError(valueobject.KindInvalidRange, "from", "from must not be after to"))
	}

	episodes, err := s.episodes.List(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(op, err)
	}
	return episodes, nil
}

// UpdateEpisode 先校验所有出现的字段，再执行 Get → With* → Update。
func (s *EpisodeService) UpdateEpisode(ctx context.Context, input UpdateEpisodeInput) (result *po.Episode, err error) {
	const op = "update episode"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	var (
		title   *valueobject.RequiredString
		airDate *valueobject.Date
	)
	if input.Title != nil {
		v, err := valueobject.NewRequiredString("title", *input.Title)
		if err != nil {
			return nil, validationError(op, err)
		}
		title = &v
	}
	if input.AirDate != nil {
		v, err := valueobject.ParseDate("air_date", *input.AirDate)
		if err != nil {
			return nil, validationError(op, err)
		}
		airDate = &v
	}

	ep, err := s.episodes.Get(ctx, input.ID)
	if err != nil {
		return nil, mapRepositoryError(op, err)
	}
	if title != nil {
		ep = ep.WithTitle(*title)
	}
	if airDate != nil {
		ep = ep.WithAirDate(*airDate)
	}
	if err := s.episodes.Update(ctx, input.ID, ep); err != nil {
		s.log.WithContext(ctx).Errorf("update episode failed: episode_id=%s err=%v", input.ID, err)
		return nil, mapRepositoryError(op, err)
	}
	s.log.WithContext(ctx).Infof("UpdateEpisode: episode_id=%s actor=%s", input.ID, metadata.Actor(ctx))
	return ep, nil
}

// DeleteEpisode 删除节目；不存在时返回 NotFound。关联片段保留。
func (s *EpisodeService) DeleteEpisode(ctx context.Context, id uuid.UUID) (err error) {
	const op = "delete episode"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	if err := s.episodes.Delete(ctx, id); err != nil {
		return mapRepositoryError(op, err)
	}
	s.log.WithContext(ctx).Infof("DeleteEpisode: episode_id=%s actor=%s", id, metadata.Actor(ctx))
	return nil
}

// GetEpisodeDetail 查询节目后按节目 ID 列出其片段。
func (s *EpisodeService) GetEpisodeDetail(ctx context.Context, id uuid.UUID) (result *EpisodeDetail, err error) {
	const op = "get episode detail"
	defer s.metrics.observe(ctx, op, time.Now(), &err)

	ep, err := s.episodes.Get(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(op, err)
	}
	clips, err := s.clips.List(ctx, po.MovieClipFilter{EpisodeID: &id, OrderBy: po.ClipOrderStart})
	if err != nil {
		return nil, mapRepositoryError(op, err)
	}
	s.log.WithContext(ctx).Debugf("GetEpisodeDetail: episode_id=%s clips=%d", id, len(clips))
	return &EpisodeDetail{Episode: ep, Clips: clips}, nil
}
