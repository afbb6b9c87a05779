package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/lunar-api/internal/calendar"
)

func newSolarCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "solar [YYYY-MM-DD]",
		Short:   "Show the lunar date of a Gregorian date (default today)",
		Example: "  lunarcal solar 2023-01-22",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := calendar.FromTime(opts.now())
			if len(args) == 1 {
				var err error
				if date, err = calendar.ParseSolar(args[0]); err != nil {
					return err
				}
			}

			r, err := opts.resolver()
			if err != nil {
				return err
			}
			info, err := r.Resolve(date)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			return printDay(cmd.OutOrStdout(), info)
		},
	}
}

func newLunarCmd(opts *options) *cobra.Command {
	var leap bool

	cmd := &cobra.Command{
		Use:     "lunar YEAR MONTH DAY",
		Short:   "Show the Gregorian date of a lunar date",
		Example: "  lunarcal lunar 2023 2 1 --leap",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := atoiAll(args, "year", "month", "day")
			if err != nil {
				return err
			}

			r, err := opts.resolver()
			if err != nil {
				return err
			}
			info, err := r.ResolveLunar(calendar.Lunar{Year: nums[0], Month: nums[1], Day: nums[2], IsLeap: leap})
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			return printDay(cmd.OutOrStdout(), info)
		},
	}

	cmd.Flags().BoolVar(&leap, "leap", false, "the date is in the leap month")
	return cmd
}

func newMonthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "month [YYYY-MM]",
		Short:   "List every day of a Gregorian month (default this month)",
		Example: "  lunarcal month 2024-02",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := opts.now()
			if len(args) == 1 {
				var err error
				if t, err = time.Parse("2006-01", args[0]); err != nil {
					return fmt.Errorf("%w: %q, use YYYY-MM", calendar.ErrInvalidDate, args[0])
				}
			}

			r, err := opts.resolver()
			if err != nil {
				return err
			}
			days, err := r.Month(t.Year(), int(t.Month()))
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), days)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "公历\t星期\t农历\t节气\t节日")
			for _, d := range days {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					d.Solar, d.Weekday, d.LunarText, d.SolarTerm, festivalNames(&d))
			}
			return tw.Flush()
		},
	}
}

func newYearCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "year YEAR",
		Short:   "Show the month layout of a lunar year",
		Example: "  lunarcal year 2023",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := atoiAll(args, "year")
			if err != nil {
				return err
			}
			info, err := calendar.DescribeYear(nums[0])
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), info)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%d %s年 (%s) 共%d天, 正月初一 %s\n",
				info.Year, info.GanZhi, info.Zodiac, info.Days, info.NewYear)
			if info.LeapMonth != 0 {
				fmt.Fprintf(w, "闰%d月 %d天\n", info.LeapMonth, info.LeapDays)
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "月份\t天数\t初一")
			for _, m := range info.Months {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", m.Name, m.Days, m.Start)
			}
			return tw.Flush()
		},
	}
}

func newTermsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "terms",
		Short: "List the 24 solar terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spans := calendar.SolarTermSpans()
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), spans)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, s := range spans {
				fmt.Fprintf(tw, "%s\t%d月%d日-%d月%d日\n", s.Name, s.Month, s.Start, s.Month, s.End)
			}
			return tw.Flush()
		},
	}
}

func printDay(w io.Writer, d *calendar.DayInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "公历\t%s %s\n", d.Solar, d.Weekday)
	fmt.Fprintf(tw, "农历\t%s 属%s\n", d.Lunar, d.Zodiac)
	if d.SolarTerm != "" {
		fmt.Fprintf(tw, "节气\t%s\n", d.SolarTerm)
	}
	if names := festivalNames(d); names != "" {
		fmt.Fprintf(tw, "节日\t%s\n", names)
	}
	return tw.Flush()
}

func festivalNames(d *calendar.DayInfo) string {
	var names []string
	for _, f := range []*calendar.Festival{d.SolarFestival, d.LunarFestival} {
		if f != nil {
			names = append(names, f.Name)
		}
	}
	return strings.Join(names, "、")
}

func atoiAll(args []string, names ...string) ([]int, error) {
	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", names[i], a)
		}
		nums[i] = n
	}
	return nums, nil
}
