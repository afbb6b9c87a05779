// Package calendar converts between the Gregorian calendar and the
// traditional Chinese lunisolar calendar.
//
// Conversions are driven by two packed reference tables (see tables.go)
// covering lunar years 1900-2099. Every function in this package is pure:
// the tables are fixed at compile time and nothing is mutated afterwards, so
// all of it is safe for concurrent use.
package calendar

import (
	"errors"
	"fmt"
)

// Supported year window, inclusive, for both calendars.
const (
	MinYear = 1900
	MaxYear = 2099
)

// Error values returned by the conversion functions.
var (
	// ErrUnsupportedYear is returned when a year falls outside MinYear-MaxYear.
	ErrUnsupportedYear = errors.New("year outside supported range 1900-2099")

	// ErrInvalidDate is returned for a month or day that cannot exist.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidLeap is returned when a leap month is requested that the
	// lunar year does not have.
	ErrInvalidLeap = errors.New("no such leap month")

	// ErrLookup is returned if a table lookup fails unexpectedly.
	ErrLookup = errors.New("calendar table lookup failed")
)

// Solar is a Gregorian calendar date.
type Solar struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String formats the date as YYYY-MM-DD.
func (s Solar) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", s.Year, s.Month, s.Day)
}

// Lunar is a date in the Chinese lunar calendar. IsLeap marks the second
// occurrence of Month in a year that doubles it.
type Lunar struct {
	Year   int  `json:"year"`
	Month  int  `json:"month"`
	Day    int  `json:"day"`
	IsLeap bool `json:"is_leap"`
}

// Result pairs a solar date with its lunar equivalent. When Success is
// false the other fields are zero and carry no meaning.
type Result struct {
	Solar   Solar `json:"solar"`
	Lunar   Lunar `json:"lunar"`
	Success bool  `json:"success"`
}

// IsSupportedSolarYear reports whether year is inside the supported window.
func IsSupportedSolarYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// IsSupportedLunarYear reports whether year is inside the supported window.
func IsSupportedLunarYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// SolarToLunar converts a Gregorian date to the lunar calendar.
func SolarToLunar(year, month, day int) (lunar Lunar, err error) {
	if !IsSupportedSolarYear(year) {
		return Lunar{}, ErrUnsupportedYear
	}
	if month < 1 || month > 12 || day < 1 || day > SolarMonthDays(year, month) {
		return Lunar{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	defer recoverLookup(&err, func() { lunar = Lunar{} })

	// The lunar year holding this date may have started in the previous
	// solar year.
	index := tableIndex(year)
	if solarNewYear[index] > packSolar(year, month, day) {
		index--
	}
	ny, nm, nd := decodeNewYear(solarNewYear[index])
	offset := toOrdinalDay(year, month, day) - toOrdinalDay(ny, nm, nd) + 1

	record := lunarMonthDays[index]
	leap := leapMonthOf(record)

	slot := 1
	for i := 0; i < 13; i++ {
		days := slotDays(record, i)
		if offset <= days {
			break
		}
		offset -= days
		slot++
	}

	lunar = Lunar{
		Year:  index + tableBaseYear,
		Month: slot,
		Day:   offset,
	}
	if leap != 0 && slot > leap {
		lunar.Month = slot - 1
		lunar.IsLeap = slot == leap+1
	}
	return lunar, nil
}

// LunarToSolar converts a lunar date to the Gregorian calendar. isLeap must
// only be set for the year's leap month; anything else is ErrInvalidLeap.
func LunarToSolar(year, month, day int, isLeap bool) (solar Solar, err error) {
	if !IsSupportedLunarYear(year) {
		return Solar{}, ErrUnsupportedYear
	}
	if month < 1 || month > 12 || day < 1 {
		return Solar{}, fmt.Errorf("%w: lunar %d-%d-%d", ErrInvalidDate, year, month, day)
	}
	record := lunarMonthDays[tableIndex(year)]
	leap := leapMonthOf(record)
	if isLeap && leap != month {
		return Solar{}, fmt.Errorf("%w: %d has no leap month %d", ErrInvalidLeap, year, month)
	}
	defer recoverLookup(&err, func() { solar = Solar{} })

	// Slots before the target month. The leap slot sits right after the
	// month it doubles.
	slots := month - 1
	if isLeap || (leap != 0 && month > leap) {
		slots = month
	}
	if day > slotDays(record, slots) {
		return Solar{}, fmt.Errorf("%w: lunar %d-%d has %d days", ErrInvalidDate, year, month, slotDays(record, slots))
	}

	offset := 0
	for i := 0; i < slots; i++ {
		offset += slotDays(record, i)
	}
	offset += day

	ny, nm, nd := decodeNewYear(solarNewYear[tableIndex(year)])
	y, m, d := fromOrdinalDay(toOrdinalDay(ny, nm, nd) + offset - 1)
	return Solar{Year: y, Month: m, Day: d}, nil
}

// Convert is SolarToLunar in the paired Result shape.
func Convert(s Solar) Result {
	l, err := SolarToLunar(s.Year, s.Month, s.Day)
	if err != nil {
		return Result{}
	}
	return Result{Solar: s, Lunar: l, Success: true}
}

// LunarYearDays returns the number of days in a lunar year, or 0 if the
// year is unsupported.
func LunarYearDays(year int) int {
	if !IsSupportedLunarYear(year) {
		return 0
	}
	record := lunarMonthDays[tableIndex(year)]
	total := 0
	for i := 0; i < slotCount(record); i++ {
		total += slotDays(record, i)
	}
	return total
}

// LunarLeapMonth returns the leap month of a lunar year, 0 if it has none or
// the year is unsupported.
func LunarLeapMonth(year int) int {
	if !IsSupportedLunarYear(year) {
		return 0
	}
	return leapMonthOf(lunarMonthDays[tableIndex(year)])
}

// LunarLeapDays returns the length of the leap month, 0 if there is none.
func LunarLeapDays(year int) int {
	leap := LunarLeapMonth(year)
	if leap == 0 {
		return 0
	}
	return slotDays(lunarMonthDays[tableIndex(year)], leap)
}

// LunarMonthDays returns the length of the regular (non-leap) month in a
// lunar year, 0 for an unsupported year or a month outside 1-12.
func LunarMonthDays(year, month int) int {
	if !IsSupportedLunarYear(year) || month < 1 || month > 12 {
		return 0
	}
	record := lunarMonthDays[tableIndex(year)]
	slot := month - 1
	if leap := leapMonthOf(record); leap != 0 && month > leap {
		slot = month
	}
	return slotDays(record, slot)
}

// LunarMonthLengths returns the month lengths of a lunar year in calendar
// order, including the leap month where it falls. Nil for an unsupported
// year.
func LunarMonthLengths(year int) []int {
	if !IsSupportedLunarYear(year) {
		return nil
	}
	record := lunarMonthDays[tableIndex(year)]
	lengths := make([]int, slotCount(record))
	for i := range lengths {
		lengths[i] = slotDays(record, i)
	}
	return lengths
}

// LunarNewYear returns the solar date of the first day of a lunar year.
func LunarNewYear(year int) (Solar, error) {
	if !IsSupportedLunarYear(year) {
		return Solar{}, ErrUnsupportedYear
	}
	y, m, d := decodeNewYear(solarNewYear[tableIndex(year)])
	return Solar{Year: y, Month: m, Day: d}, nil
}

// recoverLookup turns an indexing panic into ErrLookup. reset clears the
// named result so no partial value escapes.
func recoverLookup(err *error, reset func()) {
	if r := recover(); r != nil {
		reset()
		*err = fmt.Errorf("%w: %v", ErrLookup, r)
	}
}
