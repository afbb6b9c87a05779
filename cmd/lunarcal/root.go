package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/lunar-api/internal/calendar"
	"github.com/zapponejosh/lunar-api/internal/catalog"
	"github.com/zapponejosh/lunar-api/internal/config"
	"github.com/zapponejosh/lunar-api/internal/logger"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	festivals string
	hook      string
	json      bool
	logLevel  string
	now       func() time.Time
}

func newRootCmd() *cobra.Command {
	return newRootCmdAt(time.Now)
}

// newRootCmdAt builds the command tree with now as the clock for commands
// that default to today.
func newRootCmdAt(now func() time.Time) *cobra.Command {
	opts := &options{now: now}

	root := &cobra.Command{
		Use:           "lunarcal",
		Short:         "Convert dates between the Gregorian and Chinese lunar calendars",
		Long:          fmt.Sprintf("Convert dates between the Gregorian and Chinese lunar calendars for lunar years %d-%d.", calendar.MinYear, calendar.MaxYear),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.logLevel {
			case "debug", "info", "warn", "error":
			default:
				return fmt.Errorf("--log-level must be one of: debug, info, warn, error; got %q", opts.logLevel)
			}
			logger.SetupWriter(cmd.ErrOrStderr(), &config.Config{
				Env:       config.EnvDevelopment,
				LogLevel:  opts.logLevel,
				LogFormat: "text",
			})
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.festivals, "festivals", os.Getenv("FESTIVALS_FILE"), "YAML or TOML file with extra festivals")
	flags.StringVar(&opts.hook, "hook", config.HookDefault, "festival hook: default or none")
	flags.BoolVar(&opts.json, "json", false, "print JSON instead of a table")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		newSolarCmd(opts),
		newLunarCmd(opts),
		newMonthCmd(opts),
		newYearCmd(opts),
		newTermsCmd(opts),
	)
	return root
}

// resolver loads the festival catalog named by the flags.
func (o *options) resolver() (*calendar.Resolver, error) {
	cat, err := catalog.Load(o.festivals)
	if err != nil {
		return nil, err
	}
	hook, err := catalog.HookByName(o.hook)
	if err != nil {
		return nil, err
	}
	slog.Debug("festival catalog loaded",
		slog.String("file", o.festivals),
		slog.Int("solar", cat.Solar.Len()),
		slog.Int("lunar", cat.Lunar.Len()),
	)
	return cat.Resolver(hook)
}

// writeJSON prints v indented, leaving CJK text unescaped.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
