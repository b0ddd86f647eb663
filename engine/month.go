package engine

import (
	"fmt"
	"time"
)

// Month 自然月（年 + 月），规划引擎内所有按月运算都经过它
type Month struct {
	Year int
	Mon  time.Month
}

// ParseMonth 解析 "2024-05" 形式的月份字符串
func ParseMonth(s string) (Month, error) {
	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return Month{}, fmt.Errorf("月份格式错误，应为: 2006-01: %w", err)
	}
	return Month{Year: t.Year(), Mon: t.Month()}, nil
}

// MonthOf 取日期所在的自然月
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Mon: t.Month()}
}

// String 格式化为 "2024-05"
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Mon))
}

// First 当月第一天 00:00:00
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Mon, 1, 0, 0, 0, 0, time.Local)
}

// AddMonths 前后推 n 个自然月
func (m Month) AddMonths(n int) Month {
	t := m.First().AddDate(0, n, 0)
	return Month{Year: t.Year(), Mon: t.Month()}
}

// Days 当月天数
func (m Month) Days() int {
	return m.AddMonths(1).First().AddDate(0, 0, -1).Day()
}

// Day 当月第 day 天的日期（超出当月天数时收缩到月末）
func (m Month) Day(day int) time.Time {
	if day < 1 {
		day = 1
	}
	if max := m.Days(); day > max {
		day = max
	}
	return time.Date(m.Year, m.Mon, day, 0, 0, 0, 0, time.Local)
}

// Contains 日期是否落在当月
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Mon
}
