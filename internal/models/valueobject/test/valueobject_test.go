package valueobject_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-clips/internal/models/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiredString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "普通文本", raw: "EP1"},
		{name: "保留首尾空白", raw: "  Clip A  "},
		{name: "单字符", raw: "a"},
		{name: "空串", raw: "", wantErr: true},
		{name: "仅空格", raw: "   ", wantErr: true},
		{name: "制表与换行", raw: "\t\n ", wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := valueobject.NewRequiredString("title", tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, valueobject.ErrEmptyString)
				assert.Contains(t, err.Error(), "title must not be empty")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.raw, got.String())
		})
	}
}

func TestNewMovieURL(t *testing.T) {
	t.Parallel()

	valid := []string{
		"https://example.com/v1",
		"http://example.com",
		"https://www.youtube.com/watch?v=abc123&t=10",
		"https://youtu.be/xyz789",
	}
	for _, raw := range valid {
		got, err := valueobject.NewMovieURL("url", raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, got.String())
	}

	invalid := []string{
		"not a url",
		"",
		"example.com/v1",
		"ftp://example.com/file",
		"https://",
		"https://exa mple.com",
		" https://example.com",
	}
	for _, raw := range invalid {
		_, err := valueobject.NewMovieURL("url", raw)
		require.Error(t, err, raw)
		assert.ErrorIs(t, err, valueobject.ErrInvalidURL, raw)
		assert.False(t, errors.Is(err, valueobject.ErrEmptyString))
	}
}

func TestMovieURLYouTubeID(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"https://www.youtube.com/watch?v=abc123": "abc123",
		"https://youtu.be/xyz789":                "xyz789",
		"https://youtube.com/shorts/s1":          "s1",
		"https://example.com/watch?v=abc123":     "",
	}
	for raw, want := range cases {
		u, err := valueobject.NewMovieURL("url", raw)
		require.NoError(t, err)
		assert.Equal(t, want, u.YouTubeID(), raw)
	}
}

func TestNewSecond(t *testing.T) {
	t.Parallel()

	s, err := valueobject.NewSecond("start", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Int())

	_, err = valueobject.NewSecond("start", -1)
	require.ErrorIs(t, err, valueobject.ErrInvalidRange)

	hms, err := valueobject.NewSecond("end", 3723)
	require.NoError(t, err)
	h, m, sec := hms.HMS()
	assert.Equal(t, []int{1, 2, 3}, []int{h, m, sec})
	assert.Equal(t, "01:02:03", hms.String())

	a, _ := valueobject.NewSecond("a", 10)
	b, _ := valueobject.NewSecond("b", 10)
	assert.Equal(t, a, b)
	assert.False(t, a.Less(b))
}

func TestNewSecond_UpperBound(t *testing.T) {
	t.Parallel()

	top, err := valueobject.NewSecond("end", valueobject.MaxSecond)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, top.Int())
	h, m, sec := top.HMS()
	assert.Equal(t, valueobject.MaxSecond, h*3600+m*60+sec)
	assert.GreaterOrEqual(t, h, 0)

	for _, raw := range []int{valueobject.MaxSecond + 1, 3000000000, math.MaxInt} {
		_, err := valueobject.NewSecond("start", raw)
		require.ErrorIs(t, err, valueobject.ErrInvalidRange, raw)
		var vErr *valueobject.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "start", vErr.Field)
	}
}

func TestNewDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		y, m, d int
		wantErr bool
	}{
		{name: "普通日期", y: 2024, m: 1, d: 1},
		{name: "闰年二月二十九", y: 2024, m: 2, d: 29},
		{name: "平年二月二十九", y: 2023, m: 2, d: 29, wantErr: true},
		{name: "世纪非闰年", y: 1900, m: 2, d: 29, wantErr: true},
		{name: "四百年闰年", y: 2000, m: 2, d: 29},
		{name: "月份越界", y: 2024, m: 13, d: 1, wantErr: true},
		{name: "日为零", y: 2024, m: 1, d: 0, wantErr: true},
		{name: "四月三十一", y: 2024, m: 4, d: 31, wantErr: true},
		{name: "年份为零", y: 0, m: 1, d: 1, wantErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := valueobject.NewDate("air_date", tc.y, tc.m, tc.d)
			if tc.wantErr {
				require.ErrorIs(t, err, valueobject.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.y, got.Year())
			assert.Equal(t, time.Month(tc.m), got.Month())
			assert.Equal(t, tc.d, got.Day())
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := valueobject.ParseDate("air_date", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", d.String())

	other, err := valueobject.NewDate("air_date", 2024, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, other, d)

	later, err := valueobject.ParseDate("air_date", "2024-03-15")
	require.NoError(t, err)
	assert.True(t, d.Before(later))
	assert.True(t, later.After(d))

	for _, raw := range []string{"2024-02-30", "2024/01/01", "", "yesterday"} {
		_, err := valueobject.ParseDate("air_date", raw)
		require.ErrorIs(t, err, valueobject.ErrInvalidDate, raw)
	}
}

func TestValidationErrorKinds(t *testing.T) {
	t.Parallel()

	err := valueobject.NewValidationError(valueobject.KindInvalidRange, "start", "start must be less than end")
	assert.ErrorIs(t, err, valueobject.ErrInvalidRange)
	assert.NotErrorIs(t, err, valueobject.ErrInvalidDate)
	assert.Equal(t, "validation: start: start must be less than end", err.Error())

	var target *valueobject.ValidationError
	require.True(t, errors.As(error(err), &target))
	assert.Equal(t, "start", target.Field)
	assert.Equal(t, "invalid_range", target.Kind.String())
}
