package memory

import (
	"context"
	"slices"

	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/google/uuid"
)

// EpisodeStore 节目仓储的内存实现。
type EpisodeStore struct {
	t *table[po.Episode]
}

// NewEpisodeStore 构造空的节目内存仓储。
func NewEpisodeStore() *EpisodeStore {
	return &EpisodeStore{t: newTable[po.Episode]()}
}

// Calls 返回调用计数快照。
func (s *EpisodeStore) Calls() Calls {
	return s.t.snapshotCalls()
}

// Create 保存节目副本并返回其 ID。
func (s *EpisodeStore) Create(ctx context.Context, ep *po.Episode) (uuid.UUID, error) {
	if err := s.t.insert(ctx, "create episode", ep.ID(), *ep); err != nil {
		return uuid.Nil, err
	}
	return ep.ID(), nil
}

// Get 返回节目副本。
func (s *EpisodeStore) Get(ctx context.Context, id uuid.UUID) (*po.Episode, error) {
	ep, err := s.t.get(ctx, "get episode", id)
	if err != nil {
		return nil, err
	}
	return &ep, nil
}

// List 按播出日期与 ID 升序返回满足过滤条件的节目。
func (s *EpisodeStore) List(ctx context.Context, filter po.EpisodeFilter) ([]*po.Episode, error) {
	all, err := s.t.list(ctx, "list episodes")
	if err != nil {
		return nil, err
	}
	out := make([]*po.Episode, 0, len(all))
	for i := range all {
		if filter.Match(&all[i]) {
			out = append(out, &all[i])
		}
	}
	slices.SortFunc(out, func(a, b *po.Episode) int {
		if c := a.AirDate().Time().Compare(b.AirDate().Time()); c != 0 {
			return c
		}
		return po.CompareID(a.ID(), b.ID())
	})
	return out, nil
}

// Update 覆盖已存在节目的字段。
func (s *EpisodeStore) Update(ctx context.Context, id uuid.UUID, ep *po.Episode) error {
	return s.t.modify(ctx, "update episode", id, &s.t.calls.Update, func(current po.Episode) (po.Episode, error) {
		return *current.WithTitle(ep.Title()).WithAirDate(ep.AirDate()), nil
	})
}

// Delete 删除节目并退役其 ID。
func (s *EpisodeStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.t.remove(ctx, "delete episode", id)
}
