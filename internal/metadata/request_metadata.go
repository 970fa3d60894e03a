// Package metadata 在 Context 中传递从 HTTP 请求头解析出的请求元信息，供控制器与服务层共享。
package metadata

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

// RequestMetadata 描述单次请求的调用方与追踪信息。
type RequestMetadata struct {
	RequestID       string
	TraceID         string
	IdempotencyKey  string
	UserID          string
	InvalidUserInfo bool
}

// IsZero 判断 Metadata 是否为空。
func (m RequestMetadata) IsZero() bool {
	return m == RequestMetadata{}
}

type ctxKey struct{}

// Inject 将 RequestMetadata 注入 Context，空值不注入。
func Inject(ctx context.Context, meta RequestMetadata) context.Context {
	if meta.IsZero() {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, meta)
}

// FromContext 读取上游注入的 RequestMetadata。
func FromContext(ctx context.Context) (RequestMetadata, bool) {
	if ctx == nil {
		return RequestMetadata{}, false
	}
	meta, ok := ctx.Value(ctxKey{}).(RequestMetadata)
	return meta, ok
}

// Actor 返回日志中使用的调用方标识，未知时为 anonymous。
func Actor(ctx context.Context) string {
	if meta, ok := FromContext(ctx); ok && meta.UserID != "" {
		return meta.UserID
	}
	return "anonymous"
}

var userClaimKeys = []string{"sub", "user_id", "uid"}

// ExtractUserIDFromUserInfo 从网关注入的 base64 JSON 用户信息头中解析用户标识。
// 依次尝试 sub、user_id、uid，均缺失时返回空字符串。
func ExtractUserIDFromUserInfo(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	payload, err := decodeBase64(raw)
	if err != nil {
		return "", err
	}
	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", err
	}
	for _, key := range userClaimKeys {
		if v, ok := claims[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), nil
		}
	}
	return "", nil
}

func decodeBase64(raw string) ([]byte, error) {
	for _, enc := range []*base64.Encoding{base64.RawURLEncoding, base64.URLEncoding, base64.StdEncoding, base64.RawStdEncoding} {
		if payload, err := enc.DecodeString(raw); err == nil {
			return payload, nil
		}
	}
	return nil, errors.New("decode userinfo header failed")
}
