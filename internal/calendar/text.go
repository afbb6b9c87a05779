package calendar

import (
	"strconv"
	"strings"
)

var (
	lunarMonthNames = [12]string{"正", "二", "三", "四", "五", "六", "七", "八", "九", "十", "冬", "腊"}
	chineseDigits   = [10]string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	dayTens         = [3]string{"初", "十", "廿"}
)

// MonthName returns the traditional month name, e.g. 正月, 闰二月, 腊月.
func (l Lunar) MonthName() string {
	if l.Month < 1 || l.Month > 12 {
		return ""
	}
	name := lunarMonthNames[l.Month-1] + "月"
	if l.IsLeap {
		return "闰" + name
	}
	return name
}

// DayName returns the traditional day name, 初一 through 三十.
func (l Lunar) DayName() string {
	switch {
	case l.Day < 1 || l.Day > 30:
		return ""
	case l.Day == 10:
		return "初十"
	case l.Day == 20:
		return "二十"
	case l.Day == 30:
		return "三十"
	}
	return dayTens[l.Day/10] + chineseDigits[l.Day%10]
}

// YearName spells the year digit by digit, e.g. 二〇二三.
func (l Lunar) YearName() string {
	var b strings.Builder
	for _, r := range strconv.Itoa(l.Year) {
		b.WriteString(chineseDigits[r-'0'])
	}
	return b.String()
}

// String formats the date with the stem-branch year, e.g. 癸卯年正月初一.
func (l Lunar) String() string {
	return YearGanZhi(l.Year) + "年" + l.MonthName() + l.DayName()
}
