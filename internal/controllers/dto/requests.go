// Package dto 定义 HTTP 请求体与查询参数的绑定结构，以及到用例输入的转换。
// json 标签同时用于请求体解码与路径/查询参数绑定。
package dto

import (
	"fmt"
	"strings"

	"github.com/bionicotaku/lingo-services-clips/internal/services"
	"github.com/google/uuid"
)

// IDRequest 绑定路径参数 {id}。
type IDRequest struct {
	ID string `json:"id"`
}

// UUID 解析路径中的 ID。
func (r *IDRequest) UUID() (uuid.UUID, error) {
	return ParseUUID("id", r.ID)
}

// DeleteResponse 删除成功后的响应体。
type DeleteResponse struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
}

// CreateEpisodeRequest POST /v1/episodes 请求体。
type CreateEpisodeRequest struct {
	Title   string `json:"title"`
	AirDate string `json:"air_date"`
}

// ToInput 转换为用例输入。
func (r *CreateEpisodeRequest) ToInput() services.CreateEpisodeInput {
	return services.CreateEpisodeInput{Title: r.Title, AirDate: r.AirDate}
}

// ListEpisodesRequest GET /v1/episodes 查询参数。
type ListEpisodesRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ToInput 转换为用例输入。
func (r *ListEpisodesRequest) ToInput() services.ListEpisodesInput {
	return services.ListEpisodesInput{From: r.From, To: r.To}
}

// UpdateEpisodeRequest PATCH /v1/episodes/{id} 请求体，缺省字段保持原值。
type UpdateEpisodeRequest struct {
	ID      string  `json:"id"`
	Title   *string `json:"title"`
	AirDate *string `json:"air_date"`
}

// ToInput 转换为用例输入。
func (r *UpdateEpisodeRequest) ToInput() (services.UpdateEpisodeInput, error) {
	id, err := ParseUUID("id", r.ID)
	if err != nil {
		return services.UpdateEpisodeInput{}, err
	}
	return services.UpdateEpisodeInput{ID: id, Title: r.Title, AirDate: r.AirDate}, nil
}

// CreateMovieClipRequest POST /v1/clips 请求体，start/end 单位为秒。
type CreateMovieClipRequest struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	EpisodeID string `json:"episode_id"`
}

// ToInput 转换为用例输入。
func (r *CreateMovieClipRequest) ToInput() (services.CreateMovieClipInput, error) {
	episodeID, err := ParseUUID("episode_id", r.EpisodeID)
	if err != nil {
		return services.CreateMovieClipInput{}, err
	}
	return services.CreateMovieClipInput{
		Title:     r.Title,
		URL:       r.URL,
		Start:     r.Start,
		End:       r.End,
		EpisodeID: episodeID,
	}, nil
}

// ListMovieClipsRequest GET /v1/clips 查询参数，after 为上一页最后一个片段的 ID。
type ListMovieClipsRequest struct {
	EpisodeID   string `json:"episode_id"`
	CreatedFrom string `json:"created_from"`
	CreatedTo   string `json:"created_to"`
	OrderBy     string `json:"order_by"`
	After       string `json:"after"`
	Limit       int    `json:"limit"`
}

// ToInput 转换为用例输入。
func (r *ListMovieClipsRequest) ToInput() (services.ListMovieClipsInput, error) {
	input := services.ListMovieClipsInput{
		CreatedFrom: r.CreatedFrom,
		CreatedTo:   r.CreatedTo,
		OrderBy:     r.OrderBy,
		Limit:       r.Limit,
	}
	var err error
	if input.EpisodeID, err = parseOptionalUUID("episode_id", r.EpisodeID); err != nil {
		return services.ListMovieClipsInput{}, err
	}
	if input.After, err = parseOptionalUUID("after", r.After); err != nil {
		return services.ListMovieClipsInput{}, err
	}
	return input, nil
}

// UpdateMovieClipRequest PATCH /v1/clips/{id} 请求体。
type UpdateMovieClipRequest struct {
	ID        string  `json:"id"`
	Title     *string `json:"title"`
	URL       *string `json:"url"`
	Start     *int    `json:"start"`
	End       *int    `json:"end"`
	EpisodeID *string `json:"episode_id"`
}

// ToInput 转换为用例输入。
func (r *UpdateMovieClipRequest) ToInput() (services.UpdateMovieClipInput, error) {
	id, err := ParseUUID("id", r.ID)
	if err != nil {
		return services.UpdateMovieClipInput{}, err
	}
	input := services.UpdateMovieClipInput{ID: id, Title: r.Title, URL: r.URL, Start: r.Start, End: r.End}
	if r.EpisodeID != nil {
		episodeID, err := ParseUUID("episode_id", *r.EpisodeID)
		if err != nil {
			return services.UpdateMovieClipInput{}, err
		}
		input.EpisodeID = &episodeID
	}
	return input, nil
}

// CreateVideoRequest POST /v1/videos 请求体。
type CreateVideoRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Kind        string `json:"kind"`
	Author      string `json:"author"`
	PublishedOn string `json:"published_on"`
}

// ToInput 转换为用例输入。
func (r *CreateVideoRequest) ToInput() services.CreateVideoInput {
	return services.CreateVideoInput{
		Title:       r.Title,
		URL:         r.URL,
		Kind:        r.Kind,
		Author:      r.Author,
		PublishedOn: r.PublishedOn,
	}
}

// ListVideosRequest GET /v1/videos 查询参数，after 为上一页最后一个视频的 ID。
type ListVideosRequest struct {
	Kind    string `json:"kind"`
	OrderBy string `json:"order_by"`
	After   string `json:"after"`
	Limit   int    `json:"limit"`
}

// ToInput 转换为用例输入。
func (r *ListVideosRequest) ToInput() (services.ListVideosInput, error) {
	after, err := parseOptionalUUID("after", r.After)
	if err != nil {
		return services.ListVideosInput{}, err
	}
	return services.ListVideosInput{Kind: r.Kind, OrderBy: r.OrderBy, After: after, Limit: r.Limit}, nil
}

// UpdateVideoRequest PATCH /v1/videos/{id} 请求体。
type UpdateVideoRequest struct {
	ID          string  `json:"id"`
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Kind        *string `json:"kind"`
	Author      *string `json:"author"`
	PublishedOn *string `json:"published_on"`
}

// ToInput 转换为用例输入。
func (r *UpdateVideoRequest) ToInput() (services.UpdateVideoInput, error) {
	id, err := ParseUUID("id", r.ID)
	if err != nil {
		return services.UpdateVideoInput{}, err
	}
	return services.UpdateVideoInput{
		ID:          id,
		Title:       r.Title,
		URL:         r.URL,
		Kind:        r.Kind,
		Author:      r.Author,
		PublishedOn: r.PublishedOn,
	}, nil
}

func parseOptionalUUID(field, raw string) (*uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := ParseUUID(field, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseUUID 解析 UUID 字符串，错误信息带字段名。
func ParseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	return id, nil
}
