package vo

import (
	"time"

	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/google/uuid"
)

// MovieClip 片段只读视图，Start/End 同时给出秒数与 HH:MM:SS 文本。
type MovieClip struct {
	ID        uuid.UUID `json:"id"`
	EpisodeID uuid.UUID `json:"episode_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	YouTubeID string    `json:"youtube_id,omitempty"`
	Start     int       `json:"start"`
	End       int       `json:"end"`
	StartText string    `json:"start_text"`
	EndText   string    `json:"end_text"`
	Duration  int       `json:"duration"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMovieClipFromPO 从领域实体构造片段视图。
func NewMovieClipFromPO(clip *po.MovieClip) *MovieClip {
	if clip == nil {
		return nil
	}
	return &MovieClip{
		ID:        clip.ID(),
		EpisodeID: clip.EpisodeID(),
		Title:     clip.Title().String(),
		URL:       clip.URL().String(),
		YouTubeID: clip.URL().YouTubeID(),
		Start:     clip.Start().Int(),
		End:       clip.End().Int(),
		StartText: clip.Start().String(),
		EndText:   clip.End().String(),
		Duration:  clip.Duration(),
		Likes:     clip.Likes(),
		CreatedAt: clip.CreatedAt(),
	}
}

// NewMovieClipList 批量转换，保持输入顺序。
func NewMovieClipList(clips []*po.MovieClip) []*MovieClip {
	out := make([]*MovieClip, 0, len(clips))
	for _, c := range clips {
		out = append(out, NewMovieClipFromPO(c))
	}
	return out
}
