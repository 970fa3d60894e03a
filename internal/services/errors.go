package services

import (
	"errors"
	"strings"

	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"
	"github.com/bionicotaku/lingo-services-clips/internal/repositories"
)

// Kind 枚举用例层对外暴露的错误类别（封闭集合）。
type Kind int

const (
	// KindValidation 输入未通过值对象或实体校验，未触达仓储。
	KindValidation Kind = iota + 1
	// KindNotFound 目标实体不存在。
	KindNotFound
	// KindInfrastructure 仓储失败（连接、冲突或未知错误）。
	KindInfrastructure
)

// String 返回类别名称。
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInfrastructure:
		return "infrastructure"
	default:
		return "invalid"
	}
}

// Error 是用例层唯一对外的错误类型。
// Validation 时 cause 为 *valueobject.ValidationError，其余为 *repositories.Error。
type Error struct {
	Kind   Kind
	Op     string
	Detail string
	cause  error
}

// 哨兵错误，配合 errors.Is 按类别匹配。
var (
	ErrValidation     = &Error{Kind: KindValidation}
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrInfrastructure = &Error{Kind: KindInfrastructure}
)

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

// Unwrap 返回底层校验或仓储错误。
func (e *Error) Unwrap() error { return e.cause }

// KindOf 返回 err 的用例错误类别，非用例错误返回 0。
func KindOf(err error) Kind {
	var ucErr *Error
	if errors.As(err, &ucErr) {
		return ucErr.Kind
	}
	return 0
}

// ValidationDetail 提取校验错误的字段与规则，非校验错误返回 nil。
func ValidationDetail(err error) *valueobject.ValidationError {
	var vErr *valueobject.ValidationError
	if errors.As(err, &vErr) {
		return vErr
	}
	return nil
}

// NewError 构造包装 cause 的用例错误，Detail 取自 cause。
func NewError(kind Kind, op string, cause error) *Error {
	e := &Error{Kind: kind, Op: op, cause: cause}
	if cause != nil && kind != KindNotFound {
		e.Detail = cause.Error()
	}
	return e
}

func validationError(op string, err error) error {
	return NewError(KindValidation, op, err)
}

// mapRepositoryError 将仓储错误一一映射为用例错误。
func mapRepositoryError(op string, err error) error {
	if err == nil {
		return nil
	}
	switch repositories.KindOf(err) {
	case repositories.KindNotFound:
		return NewError(KindNotFound, op, err)
	case repositories.KindConnectionFailure, repositories.KindConflict, repositories.KindUnknown:
		return NewError(KindInfrastructure, op, err)
	default:
		return NewError(KindInfrastructure, op, err)
	}
}
