package repositories

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Kind 枚举仓储错误类别（封闭集合）。
type Kind int

const (
	// KindNotFound 记录不存在。
	KindNotFound Kind = iota + 1
	// KindConnectionFailure 存储不可达或连接中断。
	KindConnectionFailure
	// KindConflict 唯一约束、已退役 ID 或并发冲突。
	KindConflict
	// KindUnknown 其他未分类错误，Detail 保留诊断信息。
	KindUnknown
)

// String 返回类别名称。
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConnectionFailure:
		return "connection_failure"
	case KindConflict:
		return "conflict"
	case KindUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Error 是所有仓储实现对外暴露的唯一错误类型，不携带存储层原生错误。
type Error struct {
	Kind   Kind
	Op     string
	Detail string
}

// 哨兵错误，配合 errors.Is 按类别匹配。
var (
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrConnectionFailure = &Error{Kind: KindConnectionFailure}
	ErrConflict          = &Error{Kind: KindConflict}
	ErrUnknown           = &Error{Kind: KindUnknown}
)

// NewError 构造仓储错误。
func NewError(kind Kind, op, detail string) *Error {
	return &Error{Kind: kind, Op: op, Detail: detail}
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is 仅比较 Kind。
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf 返回 err 的仓储错误类别；非仓储错误视为 KindUnknown。
func KindOf(err error) Kind {
	var repoErr *Error
	if errors.As(err, &repoErr) {
		return repoErr.Kind
	}
	return KindUnknown
}

// classify 将 pgx/pgconn 等存储层错误转换为仓储错误。
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var repoErr *Error
	if errors.As(err, &repoErr) {
		return repoErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NewError(KindNotFound, op, "")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505", pgErr.Code == "23P01":
			return NewError(KindConflict, op, fmt.Sprintf("%s (%s)", pgErr.ConstraintName, pgErr.Code))
		case pgErr.Code == "40001", pgErr.Code == "40P01":
			return NewError(KindConflict, op, "concurrent write ("+pgErr.Code+")")
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P0"):
			return NewError(KindConnectionFailure, op, pgErr.Code)
		default:
			return NewError(KindUnknown, op, fmt.Sprintf("%s (%s)", pgErr.Message, pgErr.Code))
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return NewError(KindConnectionFailure, op, "connect failed")
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return NewError(KindConnectionFailure, op, err.Error())
	}
	return NewError(KindUnknown, op, err.Error())
}
