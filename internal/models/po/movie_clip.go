package po

import (
	"time"

	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"
	"github.com/google/uuid"
)

// MovieClip 表示从某集节目中截取的片段，不变量：start < end。
type MovieClip struct {
	id        uuid.UUID
	title     valueobject.RequiredString
	url       valueobject.MovieURL
	start     valueobject.Second
	end       valueobject.Second
	episodeID uuid.UUID
	likes     int
	createdAt time.Time
}

// NewMovieClip 以新生成的 ID 构造片段，点赞数从 0 开始，创建时间取当前 UTC 时间（微秒精度，与存储一致）。
func NewMovieClip(
	title valueobject.RequiredString,
	url valueobject.MovieURL,
	start, end valueobject.Second,
	episodeID uuid.UUID,
) (*MovieClip, error) {
	createdAt := time.Now().UTC().Truncate(time.Microsecond)
	return RestoreMovieClip(uuid.New(), title, url, start, end, episodeID, 0, createdAt)
}

// RestoreMovieClip 以已有 ID、点赞数与创建时间还原片段，同样执行区间校验。
func RestoreMovieClip(
	id uuid.UUID,
	title valueobject.RequiredString,
	url valueobject.MovieURL,
	start, end valueobject.Second,
	episodeID uuid.UUID,
	likes int,
	createdAt time.Time,
) (*MovieClip, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	if likes < 0 {
		return nil, valueobject.NewValidationError(valueobject.KindInvalidRange, "likes", "likes must be non-negative")
	}
	return &MovieClip{
		id:        id,
		title:     title,
		url:       url,
		start:     start,
		end:       end,
		episodeID: episodeID,
		likes:     likes,
		createdAt: createdAt.UTC(),
	}, nil
}

func checkRange(start, end valueobject.Second) error {
	if !start.Less(end) {
		return valueobject.NewValidationError(valueobject.KindInvalidRange, "start", "start must be less than end")
	}
	return nil
}

// ID 返回片段标识。
func (c *MovieClip) ID() uuid.UUID { return c.id }

// Title 返回标题。
func (c *MovieClip) Title() valueobject.RequiredString { return c.title }

// URL 返回来源视频地址。
func (c *MovieClip) URL() valueobject.MovieURL { return c.url }

// Start 返回起始秒。
func (c *MovieClip) Start() valueobject.Second { return c.start }

// End 返回结束秒。
func (c *MovieClip) End() valueobject.Second { return c.end }

// EpisodeID 返回所属节目 ID。
func (c *MovieClip) EpisodeID() uuid.UUID { return c.episodeID }

// Likes 返回点赞数。
func (c *MovieClip) Likes() int { return c.likes }

// CreatedAt 返回创建时间（UTC）。
func (c *MovieClip) CreatedAt() time.Time { return c.createdAt }

// Duration 返回片段时长（秒）。
func (c *MovieClip) Duration() int { return c.end.Int() - c.start.Int() }

// WithTitle 返回替换标题后的副本。
func (c *MovieClip) WithTitle(title valueobject.RequiredString) *MovieClip {
	next := *c
	next.title = title
	return &next
}

// WithURL 返回替换来源地址后的副本。
func (c *MovieClip) WithURL(url valueobject.MovieURL) *MovieClip {
	next := *c
	next.url = url
	return &next
}

// WithRange 返回替换起止时间后的副本；start >= end 时返回 InvalidRange。
func (c *MovieClip) WithRange(start, end valueobject.Second) (*MovieClip, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	next := *c
	next.start = start
	next.end = end
	return &next, nil
}

// WithEpisode 返回改挂到另一集节目后的副本。
func (c *MovieClip) WithEpisode(episodeID uuid.UUID) *MovieClip {
	next := *c
	next.episodeID = episodeID
	return &next
}

// Liked 返回点赞数加一后的副本。
func (c *MovieClip) Liked() *MovieClip {
	next := *c
	next.likes++
	return &next
}
