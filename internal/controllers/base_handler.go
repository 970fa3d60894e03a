package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/bionicotaku/lingo-services-clips/internal/metadata"

	kmetadata "github.com/go-kratos/kratos/v2/metadata"
	"go.opentelemetry.io/otel/trace"
)

// HandlerType 表示 Handler 的语义类别，用于选择超时策略。
type HandlerType int

const (
	// HandlerTypeDefault 表示未显式区分的 Handler。
	HandlerTypeDefault HandlerType = iota
	// HandlerTypeCommand 表示写操作 Handler。
	HandlerTypeCommand
	// HandlerTypeQuery 表示只读查询 Handler。
	HandlerTypeQuery
)

// HandlerTimeouts 聚合不同类型 Handler 的超时策略。
type HandlerTimeouts struct {
	Default time.Duration
	Command time.Duration
	Query   time.Duration
}

const (
	fallbackDefaultTimeout = 5 * time.Second
	fallbackQueryTimeout   = 3 * time.Second

	// 由 metadata.Server 中间件按前缀透传到 Context 的请求头。
	HeaderRequestID      = "x-request-id"
	HeaderUserInfo       = "x-apigateway-api-userinfo"
	HeaderIdempotencyKey = "x-md-idempotency-key"
)

// PropagatedHeaderPrefixes 返回需要透传进 kratos metadata 的请求头前缀。
func PropagatedHeaderPrefixes() []string {
	return []string{"x-md-", HeaderRequestID, HeaderUserInfo}
}

// BaseHandler 提供公共的超时与请求元信息解析能力，供具体 Handler 内嵌复用。
type BaseHandler struct {
	timeouts HandlerTimeouts
}

// NewBaseHandler 构造基础 Handler，并为缺省值填充回退策略。
func NewBaseHandler(timeouts HandlerTimeouts) *BaseHandler {
	if timeouts.Default <= 0 {
		switch {
		case timeouts.Command > 0:
			timeouts.Default = timeouts.Command
		case timeouts.Query > 0:
			timeouts.Default = timeouts.Query
		default:
			timeouts.Default = fallbackDefaultTimeout
		}
	}
	if timeouts.Command <= 0 {
		timeouts.Command = timeouts.Default
	}
	if timeouts.Query <= 0 {
		timeouts.Query = min(timeouts.Default, fallbackQueryTimeout)
	}
	return &BaseHandler{timeouts: timeouts}
}

// Timeouts 返回填充回退值之后的超时配置。
func (h *BaseHandler) Timeouts() HandlerTimeouts {
	return h.timeouts
}

// WithTimeout 根据 Handler 类型包装上下文，返回绑定超时的新 Context 与取消函数。
func (h *BaseHandler) WithTimeout(ctx context.Context, kind HandlerType) (context.Context, context.CancelFunc) {
	if h == nil {
		return context.WithTimeout(ctx, fallbackDefaultTimeout)
	}
	var timeout time.Duration
	switch kind {
	case HandlerTypeCommand:
		timeout = h.timeouts.Command
	case HandlerTypeQuery:
		timeout = h.timeouts.Query
	default:
		timeout = h.timeouts.Default
	}
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// ExtractMetadata 从 kratos metadata 与链路追踪上下文中解析请求元信息。
func (h *BaseHandler) ExtractMetadata(ctx context.Context) metadata.RequestMetadata {
	var meta metadata.RequestMetadata
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		meta.TraceID = sc.TraceID().String()
	}
	md, ok := kmetadata.FromServerContext(ctx)
	if !ok {
		return meta
	}
	meta.RequestID = strings.TrimSpace(md.Get(HeaderRequestID))
	meta.IdempotencyKey = strings.TrimSpace(md.Get(HeaderIdempotencyKey))
	if raw := strings.TrimSpace(md.Get(HeaderUserInfo)); raw != "" {
		userID, err := metadata.ExtractUserIDFromUserInfo(raw)
		if err != nil || userID == "" {
			meta.InvalidUserInfo = true
		} else {
			meta.UserID = userID
		}
	}
	return meta
}

// begin 组合超时与元信息注入，所有 Handler 方法以此开头。
func (h *BaseHandler) begin(ctx context.Context, kind HandlerType) (context.Context, context.CancelFunc) {
	meta := h.ExtractMetadata(ctx)
	timeoutCtx, cancel := h.WithTimeout(ctx, kind)
	return metadata.Inject(timeoutCtx, meta), cancel
}
