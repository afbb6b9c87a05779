package calendar

import "time"

// Weekday returns the day of the week of a solar date.
func Weekday(year, month, day int) time.Weekday {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
}

// DayName returns the Chinese name of a weekday (星期日 ... 星期六).
func DayName(wd time.Weekday) string {
	names := []string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}
	return names[wd]
}

// NthWeekday returns the day of month of the nth given weekday in a solar
// month (n starts at 1), or 0 if the month has no such day.
func NthWeekday(year, month, n int, wd time.Weekday) int {
	if n < 1 {
		return 0
	}
	first := Weekday(year, month, 1)
	day := 1 + (int(wd)-int(first)+7)%7 + (n-1)*7
	if day > SolarMonthDays(year, month) {
		return 0
	}
	return day
}
