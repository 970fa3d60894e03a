package valueobject

import (
	"net/url"
	"strings"
)

// MovieURL 表示视频来源地址，必须是带 host 的 http/https 绝对 URL。
type MovieURL struct {
	raw       string
	youTubeID string
}

// NewMovieURL 解析并校验 URL，原样保留输入文本。
func NewMovieURL(field, raw string) (MovieURL, error) {
	invalid := NewValidationError(KindInvalidURL, field, field+" is not well-formed")
	if strings.TrimSpace(raw) != raw || raw == "" {
		return MovieURL{}, invalid
	}
	u, err := url.Parse(raw)
	if err != nil {
		return MovieURL{}, invalid
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return MovieURL{}, invalid
	}
	if u.Hostname() == "" {
		return MovieURL{}, invalid
	}
	return MovieURL{raw: raw, youTubeID: extractYouTubeID(u)}, nil
}

// String 返回原始 URL 文本。
func (u MovieURL) String() string {
	return u.raw
}

// YouTubeID 返回 YouTube 视频 ID；非 YouTube 地址返回空串。
func (u MovieURL) YouTubeID() string {
	return u.youTubeID
}

// IsZero 判断是否为未初始化的零值。
func (u MovieURL) IsZero() bool {
	return u.raw == ""
}

func extractYouTubeID(u *url.URL) string {
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if u.Path == "/watch" {
			return u.Query().Get("v")
		}
		if id, ok := strings.CutPrefix(u.Path, "/shorts/"); ok {
			return strings.Trim(id, "/")
		}
	case "youtu.be":
		return strings.Trim(u.Path, "/")
	}
	return ""
}
