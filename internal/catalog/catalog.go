// Package catalog loads extra festival records from a YAML or TOML file and
// merges them into the built-in festival lists.
//
// A catalog file has two optional sections, solar and lunar, each a list of
// {name, month, day} records. Setting replace_defaults drops the built-in
// records so the file is the whole catalog.
//
//	replace_defaults = false
//
//	[[solar]]
//	name  = "程序员节"
//	month = 10
//	day   = 24
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/lunar-api/internal/calendar"
)

// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("catalog: unknown file format")

// Entry is one festival record as written in a catalog file.
type Entry struct {
	Name  string `yaml:"name" toml:"name"`
	Month int    `yaml:"month" toml:"month"`
	Day   int    `yaml:"day" toml:"day"`
}

// File is the decoded form of a catalog file.
type File struct {
	ReplaceDefaults bool    `yaml:"replace_defaults" toml:"replace_defaults"`
	Solar           []Entry `yaml:"solar" toml:"solar"`
	Lunar           []Entry `yaml:"lunar" toml:"lunar"`
}

// Catalog is the pair of festival lists a resolver works from.
type Catalog struct {
	Solar calendar.FestivalList
	Lunar calendar.FestivalList
}

// Default returns the built-in lists.
func Default() Catalog {
	return Catalog{
		Solar: calendar.DefaultSolarFestivals(),
		Lunar: calendar.DefaultLunarFestivals(),
	}
}

// Load reads the catalog at path. An empty path yields the built-in lists.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := Decode(path)
	if err != nil {
		return Catalog{}, err
	}
	return Default().Merge(f)
}

// Decode reads and decodes a catalog file, choosing the decoder by
// extension. Unknown keys are rejected so typos do not silently drop records.
func Decode(path string) (*File, error) {
	var f File

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.DecodeFile(path, &f)
		if err != nil {
			return nil, fmt.Errorf("decode catalog %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode catalog %s: unknown key %q", path, undecoded[0].String())
		}

	case ".yaml", ".yml":
		r, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		defer r.Close()

		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; treat it as an empty catalog.
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode catalog %s: %w", path, err)
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	return &f, nil
}

// Merge returns a catalog holding c's records plus the file's. With
// ReplaceDefaults set, only the file's records are kept.
func (c Catalog) Merge(f *File) (Catalog, error) {
	base := c
	if f.ReplaceDefaults {
		base = Catalog{}
		var err error
		if base.Solar, err = calendar.NewFestivalList(true); err != nil {
			return Catalog{}, err
		}
		if base.Lunar, err = calendar.NewFestivalList(false); err != nil {
			return Catalog{}, err
		}
	}

	solar, err := base.Solar.With(toFestivals(f.Solar, true)...)
	if err != nil {
		return Catalog{}, fmt.Errorf("solar festivals: %w", err)
	}
	lunar, err := base.Lunar.With(toFestivals(f.Lunar, false)...)
	if err != nil {
		return Catalog{}, fmt.Errorf("lunar festivals: %w", err)
	}
	return Catalog{Solar: solar, Lunar: lunar}, nil
}

func toFestivals(entries []Entry, solar bool) []calendar.Festival {
	out := make([]calendar.Festival, 0, len(entries))
	for _, e := range entries {
		out = append(out, calendar.Festival{
			Name:  strings.TrimSpace(e.Name),
			Month: e.Month,
			Day:   e.Day,
			Solar: solar,
		})
	}
	return out
}

// HookByName returns the festival hook registered under name: "default" for
// calendar.DefaultHook and "none" for no hook.
func HookByName(name string) (calendar.Hook, error) {
	switch strings.ToLower(name) {
	case "default":
		return calendar.DefaultHook, nil
	case "none":
		return nil, nil
	}
	return nil, fmt.Errorf("catalog: unknown festival hook %q", name)
}

// Resolver builds a resolver over the catalog's lists using hook.
func (c Catalog) Resolver(hook calendar.Hook) (*calendar.Resolver, error) {
	return calendar.NewResolver(calendar.NewMatcher(hook), c.Solar, c.Lunar)
}
