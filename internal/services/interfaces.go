package services

import (
	"context"

	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/google/uuid"
)

// EpisodeRepository 节目持久化端口，PostgreSQL 与内存实现均满足该接口。
type EpisodeRepository interface {
	Create(ctx context.Context, ep *po.Episode) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*po.Episode, error)
	List(ctx context.Context, filter po.EpisodeFilter) ([]*po.Episode, error)
	Update(ctx context.Context, id uuid.UUID, ep *po.Episode) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MovieClipRepository 片段持久化端口。
type MovieClipRepository interface {
	Create(ctx context.Context, clip *po.MovieClip) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*po.MovieClip, error)
	List(ctx context.Context, filter po.MovieClipFilter) ([]*po.MovieClip, error)
	Update(ctx context.Context, id uuid.UUID, clip *po.MovieClip) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementLikes(ctx context.Context, id uuid.UUID) error
}

// VideoRepository 视频持久化端口。
type VideoRepository interface {
	Create(ctx context.Context, video *po.Video) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*po.Video, error)
	List(ctx context.Context, filter po.VideoFilter) ([]*po.Video, error)
	Update(ctx context.Context, id uuid.UUID, video *po.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementLikes(ctx context.Context, id uuid.UUID) error
}

// EpisodeServiceInterface 抽象节目用例，便于 Controller 测试替换。
type EpisodeServiceInterface interface {
	CreateEpisode(ctx context.Context, input CreateEpisodeInput) (*po.Episode, error)
	GetEpisode(ctx context.Context, id uuid.UUID) (*po.Episode, error)
	ListEpisodes(ctx context.Context, input ListEpisodesInput) ([]*po.Episode, error)
	UpdateEpisode(ctx context.Context, input UpdateEpisodeInput) (*po.Episode, error)
	DeleteEpisode(ctx context.Context, id uuid.UUID) error
	GetEpisodeDetail(ctx context.Context, id uuid.UUID) (*EpisodeDetail, error)
}

// MovieClipServiceInterface 抽象片段用例。
type MovieClipServiceInterface interface {
	CreateMovieClip(ctx context.Context, input CreateMovieClipInput) (*po.MovieClip, error)
	GetMovieClip(ctx context.Context, id uuid.UUID) (*po.MovieClip, error)
	ListMovieClips(ctx context.Context, input ListMovieClipsInput) ([]*po.MovieClip, error)
	UpdateMovieClip(ctx context.Context, input UpdateMovieClipInput) (*po.MovieClip, error)
	DeleteMovieClip(ctx context.Context, id uuid.UUID) error
	LikeMovieClip(ctx context.Context, id uuid.UUID) (*po.MovieClip, error)
	ListClipsByEpisode(ctx context.Context, episodeID uuid.UUID) ([]*po.MovieClip, error)
}

// VideoServiceInterface 抽象视频用例。
type VideoServiceInterface interface {
	CreateVideo(ctx context.Context, input CreateVideoInput) (*po.Video, error)
	GetVideo(ctx context.Context, id uuid.UUID) (*po.Video, error)
	ListVideos(ctx context.Context, input ListVideosInput) ([]*po.Video, error)
	UpdateVideo(ctx context.Context, input UpdateVideoInput) (*po.Video, error)
	DeleteVideo(ctx context.Context, id uuid.UUID) error
	LikeVideo(ctx context.Context, id uuid.UUID) (*po.Video, error)
}

var (
	_ EpisodeServiceInterface   = (*EpisodeService)(nil)
	_ MovieClipServiceInterface = (*MovieClipService)(nil)
	_ VideoServiceInterface     = (*VideoService)(nil)
)
