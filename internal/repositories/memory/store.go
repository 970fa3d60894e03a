// Package memory 提供仓储端口的内存实现，供用例测试与本地调试替换 PostgreSQL 仓储。
// 错误分类与 PostgreSQL 实现保持一致：缺失返回 NotFound，重复或已退役 ID 返回 Conflict。
// 所有方法并发安全，同一 ID 的并发写入最后写入者生效。
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/bionicotaku/lingo-services-clips/internal/repositories"
	"github.com/google/uuid"
)

// Calls 记录各操作被调用的次数（无论成功与否）。
type Calls struct {
	Create int
	Get    int
	List   int
	Update int
	Delete int
	Like   int
}

// table 是三个内存仓储共享的底层存储，T 为实体值类型。
type table[T any] struct {
	mu      sync.RWMutex
	rows    map[uuid.UUID]T
	retired map[uuid.UUID]struct{}
	calls   Calls
}

func newTable[T any]() *table[T] {
	return &table[T]{
		rows:    make(map[uuid.UUID]T),
		retired: make(map[uuid.UUID]struct{}),
	}
}

func (t *table[T]) snapshotCalls() Calls {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.calls
}

func (t *table[T]) insert(ctx context.Context, op string, id uuid.UUID, value T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls.Create++
	if err := ctx.Err(); err != nil {
		return repositories.NewError(repositories.KindConnectionFailure, op, err.Error())
	}
	if _, ok := t.retired[id]; ok {
		return repositories.NewError(repositories.KindConflict, op, fmt.Sprintf("id %s was deleted and cannot be reused", id))
	}
	if _, ok := t.rows[id]; ok {
		return repositories.NewError(repositories.KindConflict, op, fmt.Sprintf("id %s already exists", id))
	}
	t.rows[id] = value
	return nil
}

func (t *table[T]) get(ctx context.Context, op string, id uuid.UUID) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls.Get++
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, repositories.NewError(repositories.KindConnectionFailure, op, err.Error())
	}
	value, ok := t.rows[id]
	if !ok {
		return zero, repositories.NewError(repositories.KindNotFound, op, "")
	}
	return value, nil
}

func (t *table[T]) list(ctx context.Context, op string) ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls.List++
	if err := ctx.Err(); err != nil {
		return nil, repositories.NewError(repositories.KindConnectionFailure, op, err.Error())
	}
	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		out = append(out, v)
	}
	return out, nil
}

// modify 在写锁内对已存在的记录执行 fn；counter 指定计入哪个调用计数。
func (t *table[T]) modify(ctx context.Context, op string, id uuid.UUID, counter *int, fn func(T) (T, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	*counter++
	if err := ctx.Err(); err != nil {
		return repositories.NewError(repositories.KindConnectionFailure, op, err.Error())
	}
	current, ok := t.rows[id]
	if !ok {
		return repositories.NewError(repositories.KindNotFound, op, "")
	}
	next, err := fn(current)
	if err != nil {
		return repositories.NewError(repositories.KindUnknown, op, err.Error())
	}
	t.rows[id] = next
	return nil
}

func (t *table[T]) remove(ctx context.Context, op string, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls.Delete++
	if err := ctx.Err(); err != nil {
		return repositories.NewError(repositories.KindConnectionFailure, op, err.Error())
	}
	if _, ok := t.rows[id]; !ok {
		return repositories.NewError(repositories.KindNotFound, op, "")
	}
	delete(t.rows, id)
	t.retired[id] = struct{}{}
	return nil
}

func applyLimit[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
