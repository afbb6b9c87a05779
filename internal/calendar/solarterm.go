package calendar

import "fmt"

// solarTerm is one of the 24 jieqi with the day range it covers inside its
// month. Each month holds two terms; the first runs from its usual start day
// until the day before the second, the second runs to the end of the month.
// The start days are the common historical dates, so a term that begins a
// day early or late in a given year is not tracked.
type solarTerm struct {
	name  string
	month int
	start int
	end   int
}

// solarTerms starts at 立春, the first term of the solar year in February.
var solarTerms = [24]solarTerm{
	{"立春", 2, 4, 18},
	{"雨水", 2, 19, 29},
	{"惊蛰", 3, 5, 19},
	{"春分", 3, 20, 31},
	{"清明", 4, 4, 19},
	{"谷雨", 4, 20, 30},
	{"立夏", 5, 5, 20},
	{"小满", 5, 21, 31},
	{"芒种", 6, 5, 20},
	{"夏至", 6, 21, 30},
	{"小暑", 7, 7, 22},
	{"大暑", 7, 23, 31},
	{"立秋", 8, 7, 22},
	{"处暑", 8, 23, 31},
	{"白露", 9, 7, 22},
	{"秋分", 9, 23, 30},
	{"寒露", 10, 8, 22},
	{"霜降", 10, 23, 31},
	{"立冬", 11, 7, 21},
	{"小雪", 11, 22, 30},
	{"大雪", 12, 7, 21},
	{"冬至", 12, 22, 31},
	{"小寒", 1, 5, 19},
	{"大寒", 1, 20, 31},
}

// SolarTermIndex returns the index of the solar term covering month/day, or
// -1 for the few days at the start of a month before its first term.
func SolarTermIndex(month, day int) int {
	if month < 1 || month > 12 {
		return -1
	}
	left := 2 * ((month + 10) % 12)
	for _, i := range [2]int{left, left + 1} {
		t := solarTerms[i]
		if day >= t.start && day <= t.end {
			return i
		}
	}
	return -1
}

// SolarTerm returns the name of the solar term covering month/day.
func SolarTerm(month, day int) (string, bool) {
	i := SolarTermIndex(month, day)
	if i < 0 {
		return "", false
	}
	return solarTerms[i].name, true
}

// SolarTermRange returns the day range of the solar term covering
// month/day, formatted like "2月4日-2月18日".
func SolarTermRange(month, day int) (string, bool) {
	i := SolarTermIndex(month, day)
	if i < 0 {
		return "", false
	}
	t := solarTerms[i]
	return fmt.Sprintf("%d月%d日-%d月%d日", t.month, t.start, t.month, t.end), true
}

// SolarTermNames returns the 24 term names starting with 立春.
func SolarTermNames() []string {
	names := make([]string, len(solarTerms))
	for i, t := range solarTerms {
		names[i] = t.name
	}
	return names
}

// TermSpan is a solar term and the days of its month it covers.
type TermSpan struct {
	Name  string `json:"name"`
	Month int    `json:"month"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// SolarTermSpans returns all 24 terms in order, starting with 立春.
func SolarTermSpans() []TermSpan {
	spans := make([]TermSpan, len(solarTerms))
	for i, t := range solarTerms {
		spans[i] = TermSpan{Name: t.name, Month: t.month, Start: t.start, End: t.end}
	}
	return spans
}
