package calendar

// MonthInfo describes one month of a lunar year.
type MonthInfo struct {
	Month  int    `json:"month"`
	IsLeap bool   `json:"is_leap"`
	Name   string `json:"name"`
	Days   int    `json:"days"`
	Start  Solar  `json:"start"`
}

// YearInfo summarizes a lunar year.
type YearInfo struct {
	Year      int         `json:"year"`
	GanZhi    string      `json:"ganzhi"`
	Zodiac    string      `json:"zodiac"`
	NewYear   Solar       `json:"new_year"`
	Days      int         `json:"days"`
	LeapMonth int         `json:"leap_month,omitempty"`
	LeapDays  int         `json:"leap_days,omitempty"`
	Months    []MonthInfo `json:"months"`
}

// DescribeYear returns the month layout of a lunar year.
func DescribeYear(year int) (*YearInfo, error) {
	newYear, err := LunarNewYear(year)
	if err != nil {
		return nil, err
	}

	info := &YearInfo{
		Year:      year,
		GanZhi:    YearGanZhi(year),
		Zodiac:    Zodiac(year),
		NewYear:   newYear,
		Days:      LunarYearDays(year),
		LeapMonth: LunarLeapMonth(year),
		LeapDays:  LunarLeapDays(year),
	}

	start := newYear
	for slot, days := range LunarMonthLengths(year) {
		m := Lunar{Year: year, Month: slot + 1}
		if info.LeapMonth != 0 && slot >= info.LeapMonth {
			m.Month = slot
			m.IsLeap = slot == info.LeapMonth
		}
		info.Months = append(info.Months, MonthInfo{
			Month:  m.Month,
			IsLeap: m.IsLeap,
			Name:   m.MonthName(),
			Days:   days,
			Start:  start,
		})
		start = AddDays(start, days)
	}
	return info, nil
}
