// Package valueobject 定义领域层的不可变值对象，每个值对象在构造时校验单一不变量。
package valueobject

import "fmt"

// ValidationKind 枚举值对象校验失败的类别（封闭集合）。
type ValidationKind int

const (
	// KindInvalidURL 表示 URL 格式非法。
	KindInvalidURL ValidationKind = iota + 1
	// KindInvalidRange 表示数值越界或区间顺序错误。
	KindInvalidRange
	// KindEmptyString 表示必填文本为空或仅含空白。
	KindEmptyString
	// KindInvalidDate 表示日期不是合法的公历日期。
	KindInvalidDate
	// KindInvalidKind 表示枚举取值不在允许集合内。
	KindInvalidKind
)

// String 返回校验类别的可读名称。
func (k ValidationKind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid_url"
	case KindInvalidRange:
		return "invalid_range"
	case KindEmptyString:
		return "empty_string"
	case KindInvalidDate:
		return "invalid_date"
	case KindInvalidKind:
		return "invalid_kind"
	default:
		return "unknown"
	}
}

// ValidationError 描述值对象或实体构造失败的字段与违反的规则。
type ValidationError struct {
	Kind  ValidationKind
	Field string
	Rule  string
}

// 哨兵错误，配合 errors.Is 按类别匹配 ValidationError。
var (
	ErrInvalidURL   = &ValidationError{Kind: KindInvalidURL}
	ErrInvalidRange = &ValidationError{Kind: KindInvalidRange}
	ErrEmptyString  = &ValidationError{Kind: KindEmptyString}
	ErrInvalidDate  = &ValidationError{Kind: KindInvalidDate}
	ErrInvalidKind  = &ValidationError{Kind: KindInvalidKind}
)

// NewValidationError 构造带字段名与规则说明的校验错误。
func NewValidationError(kind ValidationKind, field, rule string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Rule: rule}
}

func (e *ValidationError) Error() string {
	if e.Field == "" && e.Rule == "" {
		return "validation: " + e.Kind.String()
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Rule)
}

// Is 仅比较 Kind，使带具体字段的错误能与哨兵错误匹配。
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
