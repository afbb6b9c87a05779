package calendar

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSolarToLunar_KnownDates(t *testing.T) {
	tests := []struct {
		name  string
		solar Solar
		want  Lunar
	}{
		{"lunar new year 2023", Solar{2023, 1, 22}, Lunar{Year: 2023, Month: 1, Day: 1}},
		{"leap second month 2023", Solar{2023, 3, 22}, Lunar{Year: 2023, Month: 2, Day: 1, IsLeap: true}},
		{"month after leap 2023", Solar{2023, 4, 20}, Lunar{Year: 2023, Month: 3, Day: 1}},
		{"new year's eve 2023", Solar{2024, 2, 9}, Lunar{Year: 2023, Month: 12, Day: 30}},
		{"first supported new year", Solar{1900, 1, 31}, Lunar{Year: 1900, Month: 1, Day: 1}},
		{"january 1900 belongs to 1899", Solar{1900, 1, 1}, Lunar{Year: 1899, Month: 12, Day: 1}},
		{"last supported day", Solar{2099, 12, 31}, Lunar{Year: 2099, Month: 11, Day: 20}},
		{"leap fourth month 2020", Solar{2020, 5, 23}, Lunar{Year: 2020, Month: 4, Day: 1, IsLeap: true}},
		{"leap eleventh month 2033", Solar{2033, 12, 22}, Lunar{Year: 2033, Month: 11, Day: 1, IsLeap: true}},
		{"leap sixth month 1987", Solar{1987, 7, 26}, Lunar{Year: 1987, Month: 6, Day: 1, IsLeap: true}},
		{"millennium", Solar{2000, 1, 1}, Lunar{Year: 1999, Month: 11, Day: 25}},
		{"beijing olympics", Solar{2008, 8, 8}, Lunar{Year: 2008, Month: 7, Day: 8}},
		{"1949-10-01", Solar{1949, 10, 1}, Lunar{Year: 1949, Month: 8, Day: 10}},
		{"29 day twelfth month", Solar{2025, 1, 28}, Lunar{Year: 2024, Month: 12, Day: 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SolarToLunar(tt.solar.Year, tt.solar.Month, tt.solar.Day)
			if err != nil {
				t.Fatalf("SolarToLunar(%s) error: %v", tt.solar, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SolarToLunar(%s) mismatch (-want +got):\n%s", tt.solar, diff)
			}
		})
	}
}

func TestLunarToSolar_KnownDates(t *testing.T) {
	tests := []struct {
		name  string
		lunar Lunar
		want  Solar
	}{
		{"regular second month", Lunar{Year: 2023, Month: 2, Day: 1}, Solar{2023, 2, 20}},
		{"leap second month", Lunar{Year: 2023, Month: 2, Day: 1, IsLeap: true}, Solar{2023, 3, 22}},
		{"leap fourth month", Lunar{Year: 2020, Month: 4, Day: 1, IsLeap: true}, Solar{2020, 5, 23}},
		{"last day of 2099", Lunar{Year: 2099, Month: 12, Day: 30}, Solar{2100, 2, 8}},
		{"new year 2025", Lunar{Year: 2025, Month: 1, Day: 1}, Solar{2025, 1, 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LunarToSolar(tt.lunar.Year, tt.lunar.Month, tt.lunar.Day, tt.lunar.IsLeap)
			if err != nil {
				t.Fatalf("LunarToSolar(%+v) error: %v", tt.lunar, err)
			}
			if got != tt.want {
				t.Errorf("LunarToSolar(%+v) = %s, want %s", tt.lunar, got, tt.want)
			}
		})
	}
}

func TestSolarToLunar_Errors(t *testing.T) {
	tests := []struct {
		name    string
		solar   Solar
		wantErr error
	}{
		{"year before window", Solar{1899, 12, 31}, ErrUnsupportedYear},
		{"year after window", Solar{2100, 1, 1}, ErrUnsupportedYear},
		{"month zero", Solar{2023, 0, 1}, ErrInvalidDate},
		{"month thirteen", Solar{2023, 13, 1}, ErrInvalidDate},
		{"february 29 in common year", Solar{2023, 2, 29}, ErrInvalidDate},
		{"april 31", Solar{2023, 4, 31}, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SolarToLunar(tt.solar.Year, tt.solar.Month, tt.solar.Day)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SolarToLunar(%s) error = %v, want %v", tt.solar, err, tt.wantErr)
			}
			if got != (Lunar{}) {
				t.Errorf("SolarToLunar(%s) = %+v, want zero value", tt.solar, got)
			}
		})
	}
}

func TestLunarToSolar_Errors(t *testing.T) {
	tests := []struct {
		name    string
		lunar   Lunar
		wantErr error
	}{
		{"year before window", Lunar{Year: 1899, Month: 1, Day: 1}, ErrUnsupportedYear},
		{"year after window", Lunar{Year: 2100, Month: 1, Day: 1}, ErrUnsupportedYear},
		{"month zero", Lunar{Year: 2023, Month: 0, Day: 1}, ErrInvalidDate},
		{"day zero", Lunar{Year: 2023, Month: 1, Day: 0}, ErrInvalidDate},
		{"day 30 of a 29 day month", Lunar{Year: 2023, Month: 1, Day: 30}, ErrInvalidDate},
		{"leap in a year without one", Lunar{Year: 2024, Month: 2, Day: 1, IsLeap: true}, ErrInvalidLeap},
		{"leap on the wrong month", Lunar{Year: 2023, Month: 3, Day: 1, IsLeap: true}, ErrInvalidLeap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LunarToSolar(tt.lunar.Year, tt.lunar.Month, tt.lunar.Day, tt.lunar.IsLeap)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LunarToSolar(%+v) error = %v, want %v", tt.lunar, err, tt.wantErr)
			}
			if got != (Solar{}) {
				t.Errorf("LunarToSolar(%+v) = %s, want zero value", tt.lunar, got)
			}
		})
	}
}

func TestRoundTrip_SolarLunarSolar(t *testing.T) {
	start := Solar{1901, 1, 1}
	end := Solar{2099, 12, 31}

	for i := 0; i <= DaysBetween(start, end); i++ {
		s := AddDays(start, i)
		l, err := SolarToLunar(s.Year, s.Month, s.Day)
		if err != nil {
			t.Fatalf("SolarToLunar(%s) error: %v", s, err)
		}
		back, err := LunarToSolar(l.Year, l.Month, l.Day, l.IsLeap)
		if err != nil {
			t.Fatalf("LunarToSolar(%+v) from %s error: %v", l, s, err)
		}
		if back != s {
			t.Fatalf("round trip %s -> %+v -> %s", s, l, back)
		}
	}
}

func TestRoundTrip_LunarSolarLunar(t *testing.T) {
	for year := MinYear; year <= MaxYear; year++ {
		leap := LunarLeapMonth(year)
		for month := 1; month <= 12; month++ {
			for _, isLeap := range []bool{false, true} {
				if isLeap && month != leap {
					continue
				}
				days := LunarMonthDays(year, month)
				if isLeap {
					days = LunarLeapDays(year)
				}
				for day := 1; day <= days; day++ {
					s, err := LunarToSolar(year, month, day, isLeap)
					if err != nil {
						t.Fatalf("LunarToSolar(%d, %d, %d, %v) error: %v", year, month, day, isLeap, err)
					}
					if s.Year > MaxYear {
						// Lunar 2099 runs into 2100, which SolarToLunar does not accept.
						continue
					}
					want := Lunar{Year: year, Month: month, Day: day, IsLeap: isLeap}
					got, err := SolarToLunar(s.Year, s.Month, s.Day)
					if err != nil {
						t.Fatalf("SolarToLunar(%s) error: %v", s, err)
					}
					if got != want {
						t.Fatalf("round trip %+v -> %s -> %+v", want, s, got)
					}
				}
			}
		}
	}
}

func TestLunarYearDays_MatchesMonthLengths(t *testing.T) {
	for year := MinYear; year <= MaxYear; year++ {
		sum := 0
		for month := 1; month <= 12; month++ {
			sum += LunarMonthDays(year, month)
		}
		sum += LunarLeapDays(year)

		if got := LunarYearDays(year); got != sum {
			t.Errorf("LunarYearDays(%d) = %d, month sum = %d", year, got, sum)
		}

		lengths := LunarMonthLengths(year)
		wantSlots := 12
		if LunarLeapMonth(year) != 0 {
			wantSlots = 13
		}
		if len(lengths) != wantSlots {
			t.Errorf("LunarMonthLengths(%d) has %d entries, want %d", year, len(lengths), wantSlots)
		}

		// Successive new years are exactly one lunar year apart.
		if year < MaxYear {
			this, _ := LunarNewYear(year)
			next, _ := LunarNewYear(year + 1)
			if got := DaysBetween(this, next); got != LunarYearDays(year) {
				t.Errorf("new year %d to %d is %d days, want %d", year, year+1, got, LunarYearDays(year))
			}
		}
	}
}

func TestLunarYearQueries(t *testing.T) {
	tests := []struct {
		year      int
		days      int
		leapMonth int
		leapDays  int
		lengths   []int
	}{
		{1900, 384, 8, 29, []int{29, 30, 29, 29, 30, 29, 30, 30, 29, 30, 30, 29, 30}},
		{2020, 384, 4, 29, []int{29, 30, 30, 30, 29, 30, 29, 29, 30, 29, 30, 29, 30}},
		{2023, 384, 2, 29, []int{29, 30, 29, 29, 30, 30, 29, 30, 30, 29, 30, 29, 30}},
		{2024, 354, 0, 0, []int{29, 30, 29, 29, 30, 29, 30, 30, 29, 30, 30, 29}},
		{2033, 384, 11, 29, []int{29, 30, 29, 29, 30, 29, 30, 29, 30, 30, 30, 29, 30}},
	}

	for _, tt := range tests {
		if got := LunarYearDays(tt.year); got != tt.days {
			t.Errorf("LunarYearDays(%d) = %d, want %d", tt.year, got, tt.days)
		}
		if got := LunarLeapMonth(tt.year); got != tt.leapMonth {
			t.Errorf("LunarLeapMonth(%d) = %d, want %d", tt.year, got, tt.leapMonth)
		}
		if got := LunarLeapDays(tt.year); got != tt.leapDays {
			t.Errorf("LunarLeapDays(%d) = %d, want %d", tt.year, got, tt.leapDays)
		}
		if diff := cmp.Diff(tt.lengths, LunarMonthLengths(tt.year)); diff != "" {
			t.Errorf("LunarMonthLengths(%d) mismatch (-want +got):\n%s", tt.year, diff)
		}
	}

	if got := LunarMonthDays(2023, 12); got != 30 {
		t.Errorf("LunarMonthDays(2023, 12) = %d, want 30", got)
	}
	if got := LunarMonthDays(2024, 12); got != 29 {
		t.Errorf("LunarMonthDays(2024, 12) = %d, want 29", got)
	}
}

func TestUnsupportedYearSentinels(t *testing.T) {
	for _, year := range []int{1899, 2100} {
		if got := LunarYearDays(year); got != 0 {
			t.Errorf("LunarYearDays(%d) = %d, want 0", year, got)
		}
		if got := LunarLeapMonth(year); got != 0 {
			t.Errorf("LunarLeapMonth(%d) = %d, want 0", year, got)
		}
		if got := LunarLeapDays(year); got != 0 {
			t.Errorf("LunarLeapDays(%d) = %d, want 0", year, got)
		}
		if got := LunarMonthDays(year, 1); got != 0 {
			t.Errorf("LunarMonthDays(%d, 1) = %d, want 0", year, got)
		}
		if got := LunarMonthLengths(year); got != nil {
			t.Errorf("LunarMonthLengths(%d) = %v, want nil", year, got)
		}
		if _, err := LunarNewYear(year); !errors.Is(err, ErrUnsupportedYear) {
			t.Errorf("LunarNewYear(%d) error = %v, want ErrUnsupportedYear", year, err)
		}
	}
}

func TestSupportedYearBoundaries(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1899, false},
		{1900, true},
		{2023, true},
		{2099, true},
		{2100, false},
	}

	for _, tt := range tests {
		if got := IsSupportedLunarYear(tt.year); got != tt.want {
			t.Errorf("IsSupportedLunarYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
		if got := IsSupportedSolarYear(tt.year); got != tt.want {
			t.Errorf("IsSupportedSolarYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestConvert(t *testing.T) {
	got := Convert(Solar{2023, 1, 22})
	want := Result{Solar: Solar{2023, 1, 22}, Lunar: Lunar{Year: 2023, Month: 1, Day: 1}, Success: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Convert mismatch (-want +got):\n%s", diff)
	}

	if got := Convert(Solar{2100, 1, 1}); got != (Result{}) {
		t.Errorf("Convert(2100-01-01) = %+v, want zero Result", got)
	}
}

func TestRecoverLookup(t *testing.T) {
	run := func() (out int, err error) {
		defer recoverLookup(&err, func() { out = 0 })
		out = 42
		var table []int
		return table[1], nil
	}

	out, err := run()
	if !errors.Is(err, ErrLookup) {
		t.Errorf("error = %v, want ErrLookup", err)
	}
	if out != 0 {
		t.Errorf("out = %d, want 0", out)
	}
}

func TestExtractBits(t *testing.T) {
	tests := []struct {
		packed uint32
		width  uint
		shift  uint
		want   uint32
	}{
		{0x1096d, 4, 13, 8},
		{0x1096d, 13, 0, 0x096d},
		{0xed83f, 12, 9, 1900},
		{0xed83f, 4, 5, 1},
		{0xed83f, 5, 0, 31},
	}

	for _, tt := range tests {
		if got := extractBits(tt.packed, tt.width, tt.shift); got != tt.want {
			t.Errorf("extractBits(%#x, %d, %d) = %#x, want %#x", tt.packed, tt.width, tt.shift, got, tt.want)
		}
	}
}
