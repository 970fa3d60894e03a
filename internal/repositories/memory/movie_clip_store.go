package memory

import (
	"context"
	"slices"

	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/google/uuid"
)

// MovieClipStore 片段仓储的内存实现。
type MovieClipStore struct {
	t *table[po.MovieClip]
}

// NewMovieClipStore 构造空的片段内存仓储。
func NewMovieClipStore() *MovieClipStore {
	return &MovieClipStore{t: newTable[po.MovieClip]()}
}

// Calls 返回调用计数快照。
func (s *MovieClipStore) Calls() Calls {
	return s.t.snapshotCalls()
}

// Create 保存片段副本并返回其 ID。
func (s *MovieClipStore) Create(ctx context.Context, clip *po.MovieClip) (uuid.UUID, error) {
	if err := s.t.insert(ctx, "create movie clip", clip.ID(), *clip); err != nil {
		return uuid.Nil, err
	}
	return clip.ID(), nil
}

// Get 返回片段副本。
func (s *MovieClipStore) Get(ctx context.Context, id uuid.UUID) (*po.MovieClip, error) {
	clip, err := s.t.get(ctx, "get movie clip", id)
	if err != nil {
		return nil, err
	}
	return &clip, nil
}

// List 排序规则与 PostgreSQL 实现一致。
func (s *MovieClipStore) List(ctx context.Context, filter po.MovieClipFilter) ([]*po.MovieClip, error) {
	all, err := s.t.list(ctx, "list movie clips")
	if err != nil {
		return nil, err
	}
	out := make([]*po.MovieClip, 0, len(all))
	for i := range all {
		if filter.Match(&all[i]) {
			out = append(out, &all[i])
		}
	}
	slices.SortFunc(out, filter.Compare)
	return applyLimit(out, po.NormalizeLimit(filter.Limit)), nil
}

// Update 覆盖可编辑字段，保留已有点赞数与创建时间。
func (s *MovieClipStore) Update(ctx context.Context, id uuid.UUID, clip *po.MovieClip) error {
	return s.t.modify(ctx, "update movie clip", id, &s.t.calls.Update, func(current po.MovieClip) (po.MovieClip, error) {
		next, err := po.RestoreMovieClip(id, clip.Title(), clip.URL(), clip.Start(), clip.End(), clip.EpisodeID(), current.Likes(), current.CreatedAt())
		if err != nil {
			return current, err
		}
		return *next, nil
	})
}

// Delete 删除片段并退役其 ID。
func (s *MovieClipStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.t.remove(ctx, "delete movie clip", id)
}

// IncrementLikes 将点赞数加一。
func (s *MovieClipStore) IncrementLikes(ctx context.Context, id uuid.UUID) error {
	return s.t.modify(ctx, "like movie clip", id, &s.t.calls.Like, func(current po.MovieClip) (po.MovieClip, error) {
		return *current.Liked(), nil
	})
}
