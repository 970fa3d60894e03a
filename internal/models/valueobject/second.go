package valueobject

import (
	"fmt"
	"math"
)

// MaxSecond 与存储列 integer 的上界一致。
const MaxSecond = math.MaxInt32

// Second 表示视频内的时间偏移（秒），取值 [0, MaxSecond]。
type Second struct {
	value int
}

// NewSecond 校验秒数位于 [0, MaxSecond]。
func NewSecond(field string, raw int) (Second, error) {
	if raw < 0 {
		return Second{}, NewValidationError(KindInvalidRange, field, field+" must be non-negative")
	}
	if raw > MaxSecond {
		return Second{}, NewValidationError(KindInvalidRange, field, fmt.Sprintf("%s must not exceed %d", field, MaxSecond))
	}
	return Second{value: raw}, nil
}

// Int 返回秒数。
func (s Second) Int() int {
	return s.value
}

// HMS 拆分为时、分、秒。
func (s Second) HMS() (h, m, sec int) {
	return s.value / 3600, s.value % 3600 / 60, s.value % 60
}

// Less 判断是否严格早于 other。
func (s Second) Less(other Second) bool {
	return s.value < other.value
}

// String 以 HH:MM:SS 格式输出。
func (s Second) String() string {
	h, m, sec := s.HMS()
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}
