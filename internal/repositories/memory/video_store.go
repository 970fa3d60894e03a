package memory

import (
	"context"
	"slices"

	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/google/uuid"
)

// VideoStore 视频仓储的内存实现。
type VideoStore struct {
	t *table[po.Video]
}

// NewVideoStore 构造空的视频内存仓储。
func NewVideoStore() *VideoStore {
	return &VideoStore{t: newTable[po.Video]()}
}

// Calls 返回调用计数快照。
func (s *VideoStore) Calls() Calls {
	return s.t.snapshotCalls()
}

// Create 保存视频副本并返回其 ID。
func (s *VideoStore) Create(ctx context.Context, video *po.Video) (uuid.UUID, error) {
	if err := s.t.insert(ctx, "create video", video.ID(), *video); err != nil {
		return uuid.Nil, err
	}
	return video.ID(), nil
}

// Get 返回视频副本。
func (s *VideoStore) Get(ctx context.Context, id uuid.UUID) (*po.Video, error) {
	video, err := s.t.get(ctx, "get video", id)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// List 排序规则与 PostgreSQL 实现一致。
func (s *VideoStore) List(ctx context.Context, filter po.VideoFilter) ([]*po.Video, error) {
	all, err := s.t.list(ctx, "list videos")
	if err != nil {
		return nil, err
	}
	out := make([]*po.Video, 0, len(all))
	for i := range all {
		if filter.Match(&all[i]) {
			out = append(out, &all[i])
		}
	}
	slices.SortFunc(out, filter.Compare)
	return applyLimit(out, po.NormalizeLimit(filter.Limit)), nil
}

// Update 覆盖可编辑字段，保留已有点赞数。
func (s *VideoStore) Update(ctx context.Context, id uuid.UUID, video *po.Video) error {
	return s.t.modify(ctx, "update video", id, &s.t.calls.Update, func(current po.Video) (po.Video, error) {
		next, err := po.RestoreVideo(id, video.Title(), video.URL(), video.Kind(), video.Author(), video.PublishedOn(), current.Likes())
		if err != nil {
			return current, err
		}
		return *next, nil
	})
}

// Delete 删除视频并退役其 ID。
func (s *VideoStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.t.remove(ctx, "delete video", id)
}

// IncrementLikes 将点赞数加一。
func (s *VideoStore) IncrementLikes(ctx context.Context, id uuid.UUID) error {
	return s.t.modify(ctx, "like video", id, &s.t.calls.Like, func(current po.Video) (po.Video, error) {
		return *current.Liked(), nil
	})
}
