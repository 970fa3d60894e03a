// Package mappers 负责数据库行与领域实体之间的双向转换。
// 读取时重新执行值对象校验，损坏的行会以错误返回而不是构造出非法实体。
package mappers

import (
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// EpisodeRow 对应 clips.episodes 表的一行。
type EpisodeRow struct {
	ID      uuid.UUID
	Title   string
	AirDate time.Time
}

// MovieClipRow 对应 clips.movie_clips 表的一行。
type MovieClipRow struct {
	ID          uuid.UUID
	EpisodeID   uuid.UUID
	Title       string
	URL         string
	StartSecond int
	EndSecond   int
	Likes       int
	CreatedAt   time.Time
}

// VideoRow 对应 clips.videos 表的一行。
type VideoRow struct {
	ID          uuid.UUID
	Kind        string
	Title       string
	URL         string
	Author      pgtype.Text
	PublishedOn time.Time
	Likes       int
}

// EpisodeToRow 将节目实体转换为行。
func EpisodeToRow(ep *po.Episode) EpisodeRow {
	return EpisodeRow{
		ID:      ep.ID(),
		Title:   ep.Title().String(),
		AirDate: ep.AirDate().Time(),
	}
}

// EpisodeFromRow 将行还原为节目实体。
func EpisodeFromRow(row EpisodeRow) (*po.Episode, error) {
	title, err := valueobject.NewRequiredString("title", row.Title)
	if err != nil {
		return nil, fmt.Errorf("episode %s: %w", row.ID, err)
	}
	airDate, err := valueobject.DateFromTime("air_date", row.AirDate)
	if err != nil {
		return nil, fmt.Errorf("episode %s: %w", row.ID, err)
	}
	return po.RestoreEpisode(row.ID, title, airDate), nil
}

// MovieClipToRow 将片段实体转换为行。
func MovieClipToRow(clip *po.MovieClip) MovieClipRow {
	return MovieClipRow{
		ID:          clip.ID(),
		EpisodeID:   clip.EpisodeID(),
		Title:       clip.Title().String(),
		URL:         clip.URL().String(),
		StartSecond: clip.Start().Int(),
		EndSecond:   clip.End().Int(),
		Likes:       clip.Likes(),
		CreatedAt:   clip.CreatedAt(),
	}
}

// MovieClipFromRow 将行还原为片段实体。
func MovieClipFromRow(row MovieClipRow) (*po.MovieClip, error) {
	title, err := valueobject.NewRequiredString("title", row.Title)
	if err != nil {
		return nil, fmt.Errorf("movie clip %s: %w", row.ID, err)
	}
	url, err := valueobject.NewMovieURL("url", row.URL)
	if err != nil {
		return nil, fmt.Errorf("movie clip %s: %w", row.ID, err)
	}
	start, err := valueobject.NewSecond("start", row.StartSecond)
	if err != nil {
		return nil, fmt.Errorf("movie clip %s: %w", row.ID, err)
	}
	end, err := valueobject.NewSecond("end", row.EndSecond)
	if err != nil {
		return nil, fmt.Errorf("movie clip %s: %w", row.ID, err)
	}
	clip, err := po.RestoreMovieClip(row.ID, title, url, start, end, row.EpisodeID, row.Likes, row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("movie clip %s: %w", row.ID, err)
	}
	return clip, nil
}

// VideoToRow 将视频实体转换为行，空作者写为 NULL。
func VideoToRow(video *po.Video) VideoRow {
	var author *string
	if video.Author() != "" {
		value := video.Author()
		author = &value
	}
	return VideoRow{
		ID:          video.ID(),
		Kind:        string(video.Kind()),
		Title:       video.Title().String(),
		URL:         video.URL().String(),
		Author:      ToPgText(author),
		PublishedOn: video.PublishedOn().Time(),
		Likes:       video.Likes(),
	}
}

// VideoFromRow 将行还原为视频实体。
func VideoFromRow(row VideoRow) (*po.Video, error) {
	title, err := valueobject.NewRequiredString("title", row.Title)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", row.ID, err)
	}
	url, err := valueobject.NewMovieURL("url", row.URL)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", row.ID, err)
	}
	publishedOn, err := valueobject.DateFromTime("published_on", row.PublishedOn)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", row.ID, err)
	}
	kind, err := po.ParseVideoKind(row.Kind)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", row.ID, err)
	}
	author := ""
	if p := textPtr(row.Author); p != nil {
		author = *p
	}
	video, err := po.RestoreVideo(row.ID, title, url, kind, author, publishedOn, row.Likes)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", row.ID, err)
	}
	return video, nil
}

// ToPgText 将可空字符串转换为 pgtype.Text。
func ToPgText(value *string) pgtype.Text {
	if value == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *value, Valid: true}
}

func textPtr(value pgtype.Text) *string {
	if !value.Valid {
		return nil
	}
	v := value.String
	return &v
}
