package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, m.Year)
	assert.Equal(t, time.May, m.Mon)
	assert.Equal(t, "2024-05", m.String())

	// 非法格式
	_, err = ParseMonth("2024/05")
	assert.Error(t, err)
	_, err = ParseMonth("")
	assert.Error(t, err)
}

func TestMonthDays(t *testing.T) {
	cases := map[string]int{
		"2024-01": 31,
		"2024-02": 29, // 闰年
		"2023-02": 28,
		"2024-04": 30,
	}
	for s, want := range cases {
		m, err := ParseMonth(s)
		require.NoError(t, err)
		assert.Equal(t, want, m.Days(), s)
	}
}

func TestMonthDayClamp(t *testing.T) {
	m := Month{Year: 2024, Mon: time.February}

	// 正常取日
	assert.Equal(t, 10, m.Day(10).Day())
	// 超出月末收缩到月末
	assert.Equal(t, 29, m.Day(31).Day())
	// 下界收缩到 1 号
	assert.Equal(t, 1, m.Day(0).Day())
}

func TestMonthAddAndContains(t *testing.T) {
	m := Month{Year: 2024, Mon: time.December}
	assert.Equal(t, Month{Year: 2025, Mon: time.January}, m.AddMonths(1))
	assert.Equal(t, Month{Year: 2024, Mon: time.January}, m.AddMonths(-11))

	assert.True(t, m.Contains(time.Date(2024, 12, 31, 23, 0, 0, 0, time.Local)))
	assert.False(t, m.Contains(time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)))
}
