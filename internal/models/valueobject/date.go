package valueobject

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date 表示公历日期（不含时区），年份范围 1..9999。
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate 校验年月日组成合法公历日期（含闰年规则）。
func NewDate(field string, year, month, day int) (Date, error) {
	invalid := NewValidationError(KindInvalidDate, field, field+" must be a valid calendar date")
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return Date{}, invalid
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return Date{}, invalid
	}
	return Date{year: year, month: time.Month(month), day: day}, nil
}

// ParseDate 解析 YYYY-MM-DD 格式的日期。
func ParseDate(field, raw string) (Date, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return Date{}, NewValidationError(KindInvalidDate, field, field+" must be formatted as YYYY-MM-DD")
	}
	return NewDate(field, t.Year(), int(t.Month()), t.Day())
}

// DateFromTime 取 t 在 UTC 下的日期部分。
func DateFromTime(field string, t time.Time) (Date, error) {
	t = t.UTC()
	return NewDate(field, t.Year(), int(t.Month()), t.Day())
}

// Year 返回年份。
func (d Date) Year() int { return d.year }

// Month 返回月份。
func (d Date) Month() time.Month { return d.month }

// Day 返回日。
func (d Date) Day() int { return d.day }

// Time 返回 UTC 零点的 time.Time。
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Before 判断 d 是否早于 other。
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After 判断 d 是否晚于 other。
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// IsZero 判断是否为未初始化的零值。
func (d Date) IsZero() bool {
	return d.year == 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}
