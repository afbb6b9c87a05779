package calendar

import "fmt"

// DayInfo describes one solar day in both calendars.
type DayInfo struct {
	Solar         Solar     `json:"solar"`
	Lunar         Lunar     `json:"lunar"`
	Weekday       string    `json:"weekday"`
	LunarText     string    `json:"lunar_text"`
	GanZhi        string    `json:"ganzhi"`
	Zodiac        string    `json:"zodiac"`
	SolarTerm     string    `json:"solar_term,omitempty"`
	SolarFestival *Festival `json:"solar_festival,omitempty"`
	LunarFestival *Festival `json:"lunar_festival,omitempty"`
}

// Resolver builds DayInfo values from a matcher and the two festival lists
// chosen at startup.
type Resolver struct {
	matcher Matcher
	solar   FestivalList
	lunar   FestivalList
}

// NewResolver creates a resolver. The lists must be a solar and a lunar
// list, in that order.
func NewResolver(matcher Matcher, solar, lunar FestivalList) (*Resolver, error) {
	if !solar.Solar() || lunar.Solar() {
		return nil, ErrMixedCalendar
	}
	return &Resolver{matcher: matcher, solar: solar, lunar: lunar}, nil
}

// SolarFestivals returns the resolver's solar list.
func (r *Resolver) SolarFestivals() FestivalList { return r.solar }

// LunarFestivals returns the resolver's lunar list.
func (r *Resolver) LunarFestivals() FestivalList { return r.lunar }

// Resolve describes a solar date.
func (r *Resolver) Resolve(s Solar) (*DayInfo, error) {
	lunar, err := SolarToLunar(s.Year, s.Month, s.Day)
	if err != nil {
		return nil, err
	}

	info := &DayInfo{
		Solar:     s,
		Lunar:     lunar,
		Weekday:   DayName(Weekday(s.Year, s.Month, s.Day)),
		LunarText: lunar.MonthName() + lunar.DayName(),
		GanZhi:    YearGanZhi(lunar.Year),
		Zodiac:    Zodiac(lunar.Year),
	}
	if term, ok := SolarTerm(s.Month, s.Day); ok {
		info.SolarTerm = term
	}
	if f, ok := r.matcher.Festival(r.solar, s.Year, s.Month, s.Day); ok {
		info.SolarFestival = &f
	}
	// Lunar festivals are never observed in a leap month.
	if !lunar.IsLeap {
		if f, ok := r.matcher.Festival(r.lunar, lunar.Year, lunar.Month, lunar.Day); ok {
			info.LunarFestival = &f
		}
	}
	return info, nil
}

// ResolveLunar describes the solar day of a lunar date.
func (r *Resolver) ResolveLunar(l Lunar) (*DayInfo, error) {
	s, err := LunarToSolar(l.Year, l.Month, l.Day, l.IsLeap)
	if err != nil {
		return nil, err
	}
	return r.Resolve(s)
}

// Range describes every day from start to end inclusive.
func (r *Resolver) Range(start, end Solar) ([]DayInfo, error) {
	n := DaysBetween(start, end)
	if n < 0 {
		return nil, fmt.Errorf("%w: range end %s before start %s", ErrInvalidDate, end, start)
	}
	days := make([]DayInfo, 0, n+1)
	for i := 0; i <= n; i++ {
		info, err := r.Resolve(AddDays(start, i))
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", AddDays(start, i), err)
		}
		days = append(days, *info)
	}
	return days, nil
}

// Month describes every day of a solar month.
func (r *Resolver) Month(year, month int) ([]DayInfo, error) {
	last := SolarMonthDays(year, month)
	if last == 0 {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	return r.Range(Solar{Year: year, Month: month, Day: 1}, Solar{Year: year, Month: month, Day: last})
}
