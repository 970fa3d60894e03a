package po

import (
	"strings"

	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"
	"github.com/google/uuid"
)

// VideoKind 表示视频来源类别，封闭枚举。
type VideoKind string

// 视频类别常量定义
const (
	VideoKindOriginal VideoKind = "Original" // 原始投稿
	VideoKindKirinuki VideoKind = "Kirinuki" // 切り抜き（二次剪辑）
)

// ParseVideoKind 解析视频类别，大小写不敏感，derivative 视为 Kirinuki。
func ParseVideoKind(raw string) (VideoKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "original":
		return VideoKindOriginal, nil
	case "kirinuki", "derivative":
		return VideoKindKirinuki, nil
	default:
		return "", valueobject.NewValidationError(valueobject.KindInvalidKind, "kind", "kind must be Original or Kirinuki")
	}
}

// IsDerivative 判断是否为二次剪辑视频。
func (k VideoKind) IsDerivative() bool {
	return k == VideoKindKirinuki
}

// Video 表示一条来源视频。
type Video struct {
	id          uuid.UUID
	title       valueobject.RequiredString
	url         valueobject.MovieURL
	kind        VideoKind
	author      string
	publishedOn valueobject.Date
	likes       int
}

// NewVideo 以新生成的 ID 构造视频，点赞数从 0 开始。
func NewVideo(
	title valueobject.RequiredString,
	url valueobject.MovieURL,
	kind VideoKind,
	author string,
	publishedOn valueobject.Date,
) (*Video, error) {
	return RestoreVideo(uuid.New(), title, url, kind, author, publishedOn, 0)
}

// RestoreVideo 以已有 ID 还原视频，类别按 ParseVideoKind 规范化。
func RestoreVideo(
	id uuid.UUID,
	title valueobject.RequiredString,
	url valueobject.MovieURL,
	kind VideoKind,
	author string,
	publishedOn valueobject.Date,
	likes int,
) (*Video, error) {
	kind, err := ParseVideoKind(string(kind))
	if err != nil {
		return nil, err
	}
	if likes < 0 {
		return nil, valueobject.NewValidationError(valueobject.KindInvalidRange, "likes", "likes must be non-negative")
	}
	return &Video{
		id:          id,
		title:       title,
		url:         url,
		kind:        kind,
		author:      author,
		publishedOn: publishedOn,
		likes:       likes,
	}, nil
}

// ID 返回视频标识。
func (v *Video) ID() uuid.UUID { return v.id }

// Title 返回标题。
func (v *Video) Title() valueobject.RequiredString { return v.title }

// URL 返回视频地址。
func (v *Video) URL() valueobject.MovieURL { return v.url }

// Kind 返回视频类别。
func (v *Video) Kind() VideoKind { return v.kind }

// Author 返回作者，可能为空。
func (v *Video) Author() string { return v.author }

// PublishedOn 返回发布日期。
func (v *Video) PublishedOn() valueobject.Date { return v.publishedOn }

// Likes 返回点赞数。
func (v *Video) Likes() int { return v.likes }

// WithTitle 返回替换标题后的副本。
func (v *Video) WithTitle(title valueobject.RequiredString) *Video {
	next := *v
	next.title = title
	return &next
}

// WithURL 返回替换地址后的副本。
func (v *Video) WithURL(url valueobject.MovieURL) *Video {
	next := *v
	next.url = url
	return &next
}

// WithKind 返回替换类别后的副本，类别按 ParseVideoKind 规范化。
func (v *Video) WithKind(kind VideoKind) (*Video, error) {
	kind, err := ParseVideoKind(string(kind))
	if err != nil {
		return nil, err
	}
	next := *v
	next.kind = kind
	return &next, nil
}

// WithAuthor 返回替换作者后的副本。
func (v *Video) WithAuthor(author string) *Video {
	next := *v
	next.author = author
	return &next
}

// WithPublishedOn 返回替换发布日期后的副本。
func (v *Video) WithPublishedOn(publishedOn valueobject.Date) *Video {
	next := *v
	next.publishedOn = publishedOn
	return &next
}

// Liked 返回点赞数加一后的副本。
func (v *Video) Liked() *Video {
	next := *v
	next.likes++
	return &next
}
