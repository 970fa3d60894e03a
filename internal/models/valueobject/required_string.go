package valueobject

import "strings"

// RequiredString 表示去除首尾空白后长度至少为 1 的文本，保留原始内容。
type RequiredString struct {
	value string
}

// NewRequiredString 校验文本非空，field 用于错误信息。
func NewRequiredString(field, raw string) (RequiredString, error) {
	if strings.TrimSpace(raw) == "" {
		return RequiredString{}, NewValidationError(KindEmptyString, field, field+" must not be empty")
	}
	return RequiredString{value: raw}, nil
}

// String 返回构造时的原始文本。
func (s RequiredString) String() string {
	return s.value
}

// IsZero 判断是否为未初始化的零值。
func (s RequiredString) IsZero() bool {
	return s.value == ""
}
