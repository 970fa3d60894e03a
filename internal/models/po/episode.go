// Package po 定义领域实体（Persistent Objects），即仓储的持久化单元。
// 实体只能经由校验过的构造函数创建，字段不可直接修改，更新通过 With* 方法返回新实例。
package po

import (
	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"
	"github.com/google/uuid"
)

// Episode 表示一集完整节目。片段通过 episode_id 反向引用，不在实体内持有。
type Episode struct {
	id      uuid.UUID
	title   valueobject.RequiredString
	airDate valueobject.Date
}

// NewEpisode 以新生成的 ID 构造节目。
func NewEpisode(title valueobject.RequiredString, airDate valueobject.Date) *Episode {
	return RestoreEpisode(uuid.New(), title, airDate)
}

// RestoreEpisode 以已有 ID 还原节目，供仓储读取时使用。
func RestoreEpisode(id uuid.UUID, title valueobject.RequiredString, airDate valueobject.Date) *Episode {
	return &Episode{id: id, title: title, airDate: airDate}
}

// ID 返回节目标识。
func (e *Episode) ID() uuid.UUID { return e.id }

// Title 返回标题。
func (e *Episode) Title() valueobject.RequiredString { return e.title }

// AirDate 返回播出日期。
func (e *Episode) AirDate() valueobject.Date { return e.airDate }

// WithTitle 返回替换标题后的副本。
func (e *Episode) WithTitle(title valueobject.RequiredString) *Episode {
	next := *e
	next.title = title
	return &next
}

// WithAirDate 返回替换播出日期后的副本。
func (e *Episode) WithAirDate(airDate valueobject.Date) *Episode {
	next := *e
	next.airDate = airDate
	return &next
}
