// Package vo 定义视图对象（View Objects），由 Controller 层从领域实体转换而来，
// 作为 HTTP 响应的 JSON 载体，隔离实体的内部表示。
package vo

import (
	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/google/uuid"
)

// Video 视频只读视图。
type Video struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	YouTubeID   string    `json:"youtube_id,omitempty"`
	Kind        string    `json:"kind"`
	Derivative  bool      `json:"derivative"`
	Author      string    `json:"author,omitempty"`
	PublishedOn string    `json:"published_on"`
	Likes       int       `json:"likes"`
}

// NewVideoFromPO 从领域实体构造视频视图。
func NewVideoFromPO(video *po.Video) *Video {
	if video == nil {
		return nil
	}
	return &Video{
		ID:          video.ID(),
		Title:       video.Title().String(),
		URL:         video.URL().String(),
		YouTubeID:   video.URL().YouTubeID(),
		Kind:        string(video.Kind()),
		Derivative:  video.Kind().IsDerivative(),
		Author:      video.Author(),
		PublishedOn: video.PublishedOn().String(),
		Likes:       video.Likes(),
	}
}

// NewVideoList 批量转换，保持输入顺序。
func NewVideoList(videos []*po.Video) []*Video {
	out := make([]*Video, 0, len(videos))
	for _, v := range videos {
		out = append(out, NewVideoFromPO(v))
	}
	return out
}
