package calendar

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"
)

// Festival is a named day fixed by month and day in one calendar. Solar
// festivals use Gregorian month/day, lunar festivals use lunar month/day.
type Festival struct {
	Name  string `json:"name"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Solar bool   `json:"solar"`
}

// Key orders and compares festivals by month and day.
func (f Festival) Key() int {
	return f.Month*100 + f.Day
}

// Festival list errors.
var (
	ErrMixedCalendar   = errors.New("festival list mixes solar and lunar records")
	ErrInvalidFestival = errors.New("invalid festival")
)

// FestivalList is an ordered, immutable list of festivals that all belong
// to the same calendar. Solar and lunar month/day numbers overlap, so the
// two kinds are never matched in one pass.
type FestivalList struct {
	solar bool
	items []Festival
}

// NewFestivalList builds a list of the given calendar kind, ordered by Key.
// Records of the other kind or with an impossible month/day are rejected.
func NewFestivalList(solar bool, festivals ...Festival) (FestivalList, error) {
	items := make([]Festival, 0, len(festivals))
	for _, f := range festivals {
		if f.Solar != solar {
			return FestivalList{}, fmt.Errorf("%w: %q", ErrMixedCalendar, f.Name)
		}
		maxDay := 30
		if solar {
			maxDay = 31
		}
		if f.Name == "" || f.Month < 1 || f.Month > 12 || f.Day < 1 || f.Day > maxDay {
			return FestivalList{}, fmt.Errorf("%w: %q %d-%d", ErrInvalidFestival, f.Name, f.Month, f.Day)
		}
		items = append(items, f)
	}
	slices.SortStableFunc(items, func(a, b Festival) int {
		return cmp.Compare(a.Key(), b.Key())
	})
	return FestivalList{solar: solar, items: items}, nil
}

// Solar reports whether the list holds solar festivals.
func (l FestivalList) Solar() bool { return l.solar }

// Len returns the number of festivals in the list.
func (l FestivalList) Len() int { return len(l.items) }

// All returns a copy of the festivals in order.
func (l FestivalList) All() []Festival {
	return slices.Clone(l.items)
}

// With returns a new list holding l's festivals plus extra.
func (l FestivalList) With(extra ...Festival) (FestivalList, error) {
	return NewFestivalList(l.solar, append(l.All(), extra...)...)
}

// DefaultSolarFestivals returns the built-in Gregorian festivals. Mother's
// Day and Father's Day float and come from DefaultHook instead.
func DefaultSolarFestivals() FestivalList {
	return mustList(true, []Festival{
		{Name: "元旦", Month: 1, Day: 1},
		{Name: "情人节", Month: 2, Day: 14},
		{Name: "妇女节", Month: 3, Day: 8},
		{Name: "植树节", Month: 3, Day: 12},
		{Name: "愚人节", Month: 4, Day: 1},
		{Name: "劳动节", Month: 5, Day: 1},
		{Name: "青年节", Month: 5, Day: 4},
		{Name: "儿童节", Month: 6, Day: 1},
		{Name: "建党节", Month: 7, Day: 1},
		{Name: "建军节", Month: 8, Day: 1},
		{Name: "教师节", Month: 9, Day: 10},
		{Name: "国庆节", Month: 10, Day: 1},
		{Name: "平安夜", Month: 12, Day: 24},
		{Name: "圣诞节", Month: 12, Day: 25},
	})
}

// DefaultLunarFestivals returns the built-in lunar festivals. New Year's Eve
// depends on the length of the twelfth month and comes from DefaultHook.
func DefaultLunarFestivals() FestivalList {
	return mustList(false, []Festival{
		{Name: "春节", Month: 1, Day: 1},
		{Name: "元宵节", Month: 1, Day: 15},
		{Name: "龙抬头", Month: 2, Day: 2},
		{Name: "端午节", Month: 5, Day: 5},
		{Name: "七夕节", Month: 7, Day: 7},
		{Name: "中元节", Month: 7, Day: 15},
		{Name: "中秋节", Month: 8, Day: 15},
		{Name: "重阳节", Month: 9, Day: 9},
		{Name: "腊八节", Month: 12, Day: 8},
		{Name: "小年", Month: 12, Day: 23},
	})
}

func mustList(solar bool, festivals []Festival) FestivalList {
	for i := range festivals {
		festivals[i].Solar = solar
	}
	l, err := NewFestivalList(solar, festivals...)
	if err != nil {
		panic(err)
	}
	return l
}

// Verdict is a hook's decision about one festival record.
type Verdict int

const (
	// HookPass defers to the plain month/day comparison.
	HookPass Verdict = iota
	// HookMatch ends the scan with the festival the hook returned.
	HookMatch
	// HookReject means the hook checked the date and it does not match,
	// so the plain comparison is skipped for this record.
	HookReject
)

// Hook is consulted for every record before the plain month/day comparison.
// It lets floating festivals be expressed without storing them in a list.
type Hook func(f Festival, year, month, day int) (Festival, Verdict)

// DefaultHook provides the floating festivals:
//
//   - solar May, 2nd Sunday: 母亲节 (Mother's Day)
//   - solar June, 3rd Sunday: 父亲节 (Father's Day)
//   - last day of lunar month 12: 除夕 (New Year's Eve)
//
// Every other day passes, so list records in May and June still match on
// their own month/day.
func DefaultHook(f Festival, year, month, day int) (Festival, Verdict) {
	if f.Solar {
		switch month {
		case 5:
			return nthSundayFestival("母亲节", year, month, day, 2)
		case 6:
			return nthSundayFestival("父亲节", year, month, day, 3)
		}
		return Festival{}, HookPass
	}
	if month == 12 {
		if last := LunarMonthDays(year, 12); last != 0 && day == last {
			return Festival{Name: "除夕", Month: 12, Day: day}, HookMatch
		}
	}
	return Festival{}, HookPass
}

func nthSundayFestival(name string, year, month, day, n int) (Festival, Verdict) {
	if day == NthWeekday(year, month, n, time.Sunday) {
		return Festival{Name: name, Month: month, Day: day, Solar: true}, HookMatch
	}
	return Festival{}, HookPass
}

// Matcher finds festivals in a list. It carries the hook as configuration;
// a Matcher is a value and never changes once built.
type Matcher struct {
	hook Hook
}

// NewMatcher returns a Matcher using hook. A nil hook disables floating
// festivals.
func NewMatcher(hook Hook) Matcher {
	return Matcher{hook: hook}
}

// Hook returns the matcher's hook, possibly nil.
func (m Matcher) Hook() Hook { return m.hook }

// WithHook returns a copy of m that uses hook.
func (m Matcher) WithHook(hook Hook) Matcher {
	return Matcher{hook: hook}
}

// Festival returns the first festival in list that falls on month/day of
// year. For a lunar list month and day are lunar and year is the lunar year.
func (m Matcher) Festival(list FestivalList, year, month, day int) (Festival, bool) {
	for _, f := range list.items {
		if match, ok, decided := m.check(f, year, month, day); decided {
			if ok {
				return match, true
			}
			continue
		}
		if f.Month == month && f.Day == day {
			return f, true
		}
	}
	return Festival{}, false
}

// IsFestival reports whether f falls on month/day of year. A hook match
// counts only when the hook returned f itself; a different floating festival
// on that day leaves f to the plain month/day comparison.
func (m Matcher) IsFestival(f Festival, year, month, day int) bool {
	match, ok, decided := m.check(f, year, month, day)
	switch {
	case decided && !ok:
		return false
	case ok && match.Name == f.Name:
		return true
	}
	return f.Month == month && f.Day == day
}

// check runs the hook. decided is false when the hook passes.
func (m Matcher) check(f Festival, year, month, day int) (match Festival, ok, decided bool) {
	if m.hook == nil {
		return Festival{}, false, false
	}
	switch result, verdict := m.hook(f, year, month, day); verdict {
	case HookMatch:
		result.Solar = f.Solar
		return result, true, true
	case HookReject:
		return Festival{}, false, true
	}
	return Festival{}, false, false
}

// GetFestival is Matcher.Festival with an explicit hook.
func GetFestival(list FestivalList, year, month, day int, hook Hook) (Festival, bool) {
	return NewMatcher(hook).Festival(list, year, month, day)
}

// IsFestival is Matcher.IsFestival with an explicit hook.
func IsFestival(f Festival, year, month, day int, hook Hook) bool {
	return NewMatcher(hook).IsFestival(f, year, month, day)
}
