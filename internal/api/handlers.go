package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/lunar-api/internal/calendar"
	"github.com/zapponejosh/lunar-api/internal/config"
	"github.com/zapponejosh/lunar-api/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	resolver *calendar.Resolver
	cfg      *config.Config
	now      func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(resolver *calendar.Resolver, cfg *config.Config) *Handlers {
	return &Handlers{
		resolver: resolver,
		cfg:      cfg,
		now:      time.Now,
	}
}

// LunarDay is the response for a lunar date lookup.
type LunarDay struct {
	Query calendar.Lunar `json:"query"`
	*calendar.DayInfo
}

// SolarTermInfo is the response for a solar term lookup.
type SolarTermInfo struct {
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Term  string `json:"term,omitempty"`
	Range string `json:"range,omitempty"`
}

// FestivalsInfo lists the configured festivals.
type FestivalsInfo struct {
	Solar []calendar.Festival `json:"solar,omitempty"`
	Lunar []calendar.Festival `json:"lunar,omitempty"`
}

// RangeInfo is the response for a range query.
type RangeInfo struct {
	Start calendar.Solar     `json:"start"`
	End   calendar.Solar     `json:"end"`
	Count int                `json:"count"`
	Days  []calendar.DayInfo `json:"days"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]any{
		"status":   "healthy",
		"min_year": calendar.MinYear,
		"max_year": calendar.MaxYear,
	})
}

// GetToday handles GET /api/v1/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	h.writeDay(w, r, calendar.FromTime(h.now()))
}

// GetSolarDay handles GET /api/v1/solar/{date}
func (h *Handlers) GetSolarDay(w http.ResponseWriter, r *http.Request) {
	date, err := calendar.ParseSolar(chi.URLParam(r, "date"))
	if err != nil {
		WriteCalendarError(w, err)
		return
	}
	h.writeDay(w, r, date)
}

func (h *Handlers) writeDay(w http.ResponseWriter, r *http.Request, date calendar.Solar) {
	info, err := h.resolver.Resolve(date)
	if err != nil {
		h.logCalendarError(r, "resolve solar date", err, slog.String("date", date.String()))
		WriteCalendarError(w, err)
		return
	}
	WriteSuccess(w, info)
}

// GetLunarDay handles GET /api/v1/lunar/{year}/{month}/{day}?leap=true
func (h *Handlers) GetLunarDay(w http.ResponseWriter, r *http.Request) {
	var query calendar.Lunar
	var err error

	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"year", &query.Year},
		{"month", &query.Month},
		{"day", &query.Day},
	} {
		if *p.dst, err = strconv.Atoi(chi.URLParam(r, p.name)); err != nil {
			WriteBadRequest(w, fmt.Sprintf("Invalid %s: %q", p.name, chi.URLParam(r, p.name)))
			return
		}
	}

	if leap := r.URL.Query().Get("leap"); leap != "" {
		if query.IsLeap, err = strconv.ParseBool(leap); err != nil {
			WriteBadRequest(w, fmt.Sprintf("Invalid leap flag: %q", leap))
			return
		}
	}

	info, err := h.resolver.ResolveLunar(query)
	if err != nil {
		h.logCalendarError(r, "resolve lunar date", err,
			slog.Int("year", query.Year),
			slog.Int("month", query.Month),
			slog.Int("day", query.Day),
			slog.Bool("leap", query.IsLeap))
		WriteCalendarError(w, err)
		return
	}

	WriteSuccess(w, LunarDay{Query: query, DayInfo: info})
}

// GetYear handles GET /api/v1/years/{year}
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %q", chi.URLParam(r, "year")))
		return
	}

	info, err := calendar.DescribeYear(year)
	if err != nil {
		WriteCalendarError(w, err)
		return
	}
	WriteSuccess(w, info)
}

// GetSolarTerms handles GET /api/v1/terms?month=&day=
//
// Without parameters it lists all 24 terms with their day spans.
func (h *Handlers) GetSolarTerms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("month") == "" && q.Get("day") == "" {
		WriteSuccess(w, calendar.SolarTermSpans())
		return
	}

	month, errM := strconv.Atoi(q.Get("month"))
	day, errD := strconv.Atoi(q.Get("day"))
	if errM != nil || errD != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		WriteError(w, http.StatusBadRequest, "month and day must be numbers in 1-12 and 1-31", CodeInvalidDate)
		return
	}

	info := SolarTermInfo{Month: month, Day: day}
	if term, ok := calendar.SolarTerm(month, day); ok {
		info.Term = term
		info.Range, _ = calendar.SolarTermRange(month, day)
	}
	WriteSuccess(w, info)
}

// GetFestivals handles GET /api/v1/festivals?calendar=solar|lunar
func (h *Handlers) GetFestivals(w http.ResponseWriter, r *http.Request) {
	var info FestivalsInfo

	switch kind := r.URL.Query().Get("calendar"); kind {
	case "":
		info.Solar = h.resolver.SolarFestivals().All()
		info.Lunar = h.resolver.LunarFestivals().All()
	case "solar":
		info.Solar = h.resolver.SolarFestivals().All()
	case "lunar":
		info.Lunar = h.resolver.LunarFestivals().All()
	default:
		WriteBadRequest(w, fmt.Sprintf("calendar must be solar or lunar, got %q", kind))
		return
	}

	WriteSuccess(w, info)
}

// GetRange handles GET /api/v1/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := calendar.ParseSolar(startStr)
	if err != nil {
		WriteCalendarError(w, err)
		return
	}
	end, err := calendar.ParseSolar(endStr)
	if err != nil {
		WriteCalendarError(w, err)
		return
	}

	if n := calendar.DaysBetween(start, end) + 1; n > h.cfg.MaxRangeDays {
		WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("Date range cannot exceed %d days", h.cfg.MaxRangeDays), CodeRangeTooLarge)
		return
	}

	days, err := h.resolver.Range(start, end)
	if err != nil {
		h.logCalendarError(r, "resolve range", err,
			slog.String("start", startStr),
			slog.String("end", endStr))
		WriteCalendarError(w, err)
		return
	}

	WriteSuccess(w, RangeInfo{Start: start, End: end, Count: len(days), Days: days})
}

// NotFound answers unknown routes with the JSON envelope.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, "Route not found", CodeNotFound)
}

// MethodNotAllowed answers wrong methods with the JSON envelope.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", CodeMethodNotAllowed)
}

// logCalendarError logs caller mistakes at debug and everything else at
// error level.
func (h *Handlers) logCalendarError(r *http.Request, msg string, err error, args ...any) {
	if isClientError(err) {
		logger.Debug(r.Context(), msg, append([]any{slog.Any("error", err)}, args...)...)
		return
	}
	logger.Error(r.Context(), msg, err, args...)
}
