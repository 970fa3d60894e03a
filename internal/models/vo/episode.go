package vo

import (
	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/google/uuid"
)

// Episode 节目只读视图。
type Episode struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	AirDate string    `json:"air_date"`
}

// NewEpisodeFromPO 从领域实体构造节目视图。
func NewEpisodeFromPO(ep *po.Episode) *Episode {
	if ep == nil {
		return nil
	}
	return &Episode{
		ID:      ep.ID(),
		Title:   ep.Title().String(),
		AirDate: ep.AirDate().String(),
	}
}

// NewEpisodeList 批量转换，保持输入顺序。
func NewEpisodeList(episodes []*po.Episode) []*Episode {
	out := make([]*Episode, 0, len(episodes))
	for _, ep := range episodes {
		out = append(out, NewEpisodeFromPO(ep))
	}
	return out
}

// EpisodeDetail 节目及其片段列表（按起始秒排序）。
type EpisodeDetail struct {
	Episode *Episode     `json:"episode"`
	Clips   []*MovieClip `json:"clips"`
}

// NewEpisodeDetail 组合节目与片段视图。
func NewEpisodeDetail(ep *po.Episode, clips []*po.MovieClip) *EpisodeDetail {
	return &EpisodeDetail{
		Episode: NewEpisodeFromPO(ep),
		Clips:   NewMovieClipList(clips),
	}
}
