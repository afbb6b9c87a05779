package calendar

// The ordinal day count treats March as the first month of the year so the
// leap day falls at the end, which lets the /4 - /100 + /400 correction
// apply to whole years. Dates before the Gregorian reform are proleptic.

// toOrdinalDay maps a proleptic Gregorian date to a monotonic day number.
func toOrdinalDay(year, month, day int) int {
	m := (month + 9) % 12
	y := year - m/10
	return 365*y + y/4 - y/100 + y/400 + (m*306+5)/10 + (day - 1)
}

// fromOrdinalDay is the inverse of toOrdinalDay.
func fromOrdinalDay(g int) (year, month, day int) {
	y := (10000*g + 14780) / 3652425
	ddd := g - (365*y + y/4 - y/100 + y/400)
	if ddd < 0 {
		y--
		ddd = g - (365*y + y/4 - y/100 + y/400)
	}
	mi := (100*ddd + 52) / 3060
	month = (mi+2)%12 + 1
	year = y + (mi+2)/12
	day = ddd - (mi*306+5)/10 + 1
	return year, month, day
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// SolarMonthDays returns the number of days in a Gregorian month, or 0 for
// a month outside 1-12.
func SolarMonthDays(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// AddDays returns the solar date n days after s (n may be negative).
func AddDays(s Solar, n int) Solar {
	y, m, d := fromOrdinalDay(toOrdinalDay(s.Year, s.Month, s.Day) + n)
	return Solar{Year: y, Month: m, Day: d}
}

// DaysBetween returns the number of days from a to b.
func DaysBetween(a, b Solar) int {
	return toOrdinalDay(b.Year, b.Month, b.Day) - toOrdinalDay(a.Year, a.Month, a.Day)
}
