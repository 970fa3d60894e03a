package po

import (
	"bytes"
	"cmp"

	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"
	"github.com/google/uuid"
)

// MaxListLimit 限制单次列表查询返回的最大条数。
const MaxListLimit = 500

// ClipOrder 表示片段列表排序方式。
type ClipOrder string

// 片段排序方式
const (
	ClipOrderStart   ClipOrder = "start"   // 按起始秒升序
	ClipOrderLikes   ClipOrder = "likes"   // 按点赞数降序
	ClipOrderCreated ClipOrder = "created" // 按创建时间降序
)

// VideoOrder 表示视频列表排序方式。
type VideoOrder string

// 视频排序方式
const (
	VideoOrderPublished VideoOrder = "published" // 按发布日期降序
	VideoOrderLikes     VideoOrder = "likes"     // 按点赞数降序
)

// EpisodeFilter 按播出日期半开区间 [From, To) 过滤，按播出日期升序返回。
type EpisodeFilter struct {
	From *valueobject.Date
	To   *valueobject.Date
}

// Match 判断节目是否满足过滤条件。
func (f EpisodeFilter) Match(e *Episode) bool {
	if f.From != nil && e.AirDate().Before(*f.From) {
		return false
	}
	if f.To != nil && !e.AirDate().Before(*f.To) {
		return false
	}
	return true
}

// MovieClipFilter 描述片段列表查询条件，Limit 为 0 表示不限制。
// CreatedFrom/CreatedTo 按创建日期（UTC）半开区间 [From, To) 过滤。
// After 为翻页游标：只返回在当前排序下严格排在 After 之后的片段，排序键取自 After 本身。
// 所有排序均以 id 升序作为次级键，保证游标位置唯一。
type MovieClipFilter struct {
	EpisodeID   *uuid.UUID
	CreatedFrom *valueobject.Date
	CreatedTo   *valueobject.Date
	OrderBy     ClipOrder
	After       *MovieClip
	Limit       int
}

// Match 判断片段是否满足过滤条件（含游标）。
func (f MovieClipFilter) Match(c *MovieClip) bool {
	if f.EpisodeID != nil && c.EpisodeID() != *f.EpisodeID {
		return false
	}
	if f.CreatedFrom != nil && c.CreatedAt().Before(f.CreatedFrom.Time()) {
		return false
	}
	if f.CreatedTo != nil && !c.CreatedAt().Before(f.CreatedTo.Time()) {
		return false
	}
	return f.After == nil || f.Compare(f.After, c) < 0
}

// Compare 按过滤器的排序方式比较两个片段，a 排在 b 之前时返回负数。
func (f MovieClipFilter) Compare(a, b *MovieClip) int {
	var c int
	switch f.OrderBy {
	case ClipOrderLikes:
		c = cmp.Compare(b.Likes(), a.Likes())
	case ClipOrderCreated:
		c = b.CreatedAt().Compare(a.CreatedAt())
	default:
		c = cmp.Compare(a.Start().Int(), b.Start().Int())
	}
	if c != 0 {
		return c
	}
	return CompareID(a.ID(), b.ID())
}

// VideoFilter 描述视频列表查询条件，Limit 为 0 表示不限制。
// After 为翻页游标，语义同 MovieClipFilter.After。
type VideoFilter struct {
	Kind    *VideoKind
	OrderBy VideoOrder
	After   *Video
	Limit   int
}

// Match 判断视频是否满足过滤条件（含游标）。
func (f VideoFilter) Match(v *Video) bool {
	if f.Kind != nil && v.Kind() != *f.Kind {
		return false
	}
	return f.After == nil || f.Compare(f.After, v) < 0
}

// Compare 按过滤器的排序方式比较两个视频，a 排在 b 之前时返回负数。
func (f VideoFilter) Compare(a, b *Video) int {
	var c int
	if f.OrderBy == VideoOrderLikes {
		c = cmp.Compare(b.Likes(), a.Likes())
	} else {
		c = b.PublishedOn().Time().Compare(a.PublishedOn().Time())
	}
	if c != 0 {
		return c
	}
	return CompareID(a.ID(), b.ID())
}

// CompareID 按字节序比较 UUID，与 PostgreSQL uuid 排序一致。
func CompareID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// NormalizeLimit 将 limit 规整到 [0, MaxListLimit]，0 表示不限制。
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return 0
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
