package calendar

import (
	"errors"
	"testing"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver(NewMatcher(DefaultHook), DefaultSolarFestivals(), DefaultLunarFestivals())
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}

func TestResolver_Resolve(t *testing.T) {
	r := newTestResolver(t)

	info, err := r.Resolve(Solar{2023, 1, 22})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if info.Lunar != (Lunar{Year: 2023, Month: 1, Day: 1}) {
		t.Errorf("Lunar = %+v, want 2023/1/1", info.Lunar)
	}
	if info.Weekday != "星期日" {
		t.Errorf("Weekday = %q, want 星期日", info.Weekday)
	}
	if info.LunarText != "正月初一" {
		t.Errorf("LunarText = %q, want 正月初一", info.LunarText)
	}
	if info.GanZhi != "癸卯" || info.Zodiac != "兔" {
		t.Errorf("GanZhi, Zodiac = %q, %q; want 癸卯, 兔", info.GanZhi, info.Zodiac)
	}
	if info.SolarTerm != "大寒" {
		t.Errorf("SolarTerm = %q, want 大寒", info.SolarTerm)
	}
	if info.LunarFestival == nil || info.LunarFestival.Name != "春节" {
		t.Errorf("LunarFestival = %+v, want 春节", info.LunarFestival)
	}
	if info.SolarFestival != nil {
		t.Errorf("SolarFestival = %+v, want nil", info.SolarFestival)
	}
}

func TestResolver_Festivals(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name      string
		solar     Solar
		wantSolar string
		wantLunar string
	}{
		{"new year's day", Solar{2024, 1, 1}, "元旦", ""},
		{"new year's eve", Solar{2024, 2, 9}, "", "除夕"},
		{"mother's day", Solar{2024, 5, 12}, "母亲节", ""},
		{"national day and mid-autumn", Solar{2020, 10, 1}, "国庆节", "中秋节"},
		{"plain day", Solar{2024, 3, 3}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := r.Resolve(tt.solar)
			if err != nil {
				t.Fatalf("Resolve(%s) error: %v", tt.solar, err)
			}
			if got := festivalName(info.SolarFestival); got != tt.wantSolar {
				t.Errorf("SolarFestival = %q, want %q", got, tt.wantSolar)
			}
			if got := festivalName(info.LunarFestival); got != tt.wantLunar {
				t.Errorf("LunarFestival = %q, want %q", got, tt.wantLunar)
			}
		})
	}
}

func TestResolver_LeapMonthHasNoLunarFestival(t *testing.T) {
	r := newTestResolver(t)

	// Leap 2/2 of 2023; 龙抬头 is only observed in the regular month.
	info, err := r.ResolveLunar(Lunar{Year: 2023, Month: 2, Day: 2, IsLeap: true})
	if err != nil {
		t.Fatalf("ResolveLunar error: %v", err)
	}
	if info.Solar != (Solar{2023, 3, 23}) {
		t.Errorf("Solar = %s, want 2023-03-23", info.Solar)
	}
	if info.LunarFestival != nil {
		t.Errorf("LunarFestival = %+v, want nil", info.LunarFestival)
	}
}

func TestResolver_Month(t *testing.T) {
	r := newTestResolver(t)

	days, err := r.Month(2024, 2)
	if err != nil {
		t.Fatalf("Month error: %v", err)
	}
	if len(days) != 29 {
		t.Fatalf("Month(2024, 2) returned %d days, want 29", len(days))
	}
	if days[9].LunarFestival == nil || days[9].LunarFestival.Name != "春节" {
		t.Errorf("2024-02-10 LunarFestival = %+v, want 春节", days[9].LunarFestival)
	}

	if _, err := r.Month(2024, 13); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Month(2024, 13) error = %v, want ErrInvalidDate", err)
	}
	if _, err := r.Month(2100, 1); !errors.Is(err, ErrUnsupportedYear) {
		t.Errorf("Month(2100, 1) error = %v, want ErrUnsupportedYear", err)
	}
}

func TestResolver_Range(t *testing.T) {
	r := newTestResolver(t)

	if _, err := r.Range(Solar{2024, 1, 2}, Solar{2024, 1, 1}); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("reversed Range error = %v, want ErrInvalidDate", err)
	}

	days, err := r.Range(Solar{2023, 12, 31}, Solar{2024, 1, 1})
	if err != nil {
		t.Fatalf("Range error: %v", err)
	}
	if len(days) != 2 || days[1].Solar != (Solar{2024, 1, 1}) {
		t.Errorf("Range = %+v, want 2023-12-31 and 2024-01-01", days)
	}
}

func TestNewResolver_RejectsSwappedLists(t *testing.T) {
	if _, err := NewResolver(NewMatcher(nil), DefaultLunarFestivals(), DefaultSolarFestivals()); !errors.Is(err, ErrMixedCalendar) {
		t.Errorf("NewResolver with swapped lists error = %v, want ErrMixedCalendar", err)
	}
}

func festivalName(f *Festival) string {
	if f == nil {
		return ""
	}
	return f.Name
}
