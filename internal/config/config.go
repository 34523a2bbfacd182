package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/rafin/routine-genius/pkg/model"
)

// Config is the full program configuration: where the feed snapshot
// lives, where exports go, how to log, and the search constraints.
type Config struct {
	FeedFile     string
	ExportCSV    string
	ExportPDF    string
	ConfirmedDir string

	Log    LogConfig
	Search SearchConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// SearchConfig mirrors the on-disk search section before it is turned
// into a model.SearchConfig.
type SearchConfig struct {
	Courses       []string
	ExcludedDays  []string
	ExcludedSlots []string
	MinDays       int
	MaxDays       int
	MaxPerDay     int
	Preferences   map[string]PreferenceConfig
}

type PreferenceConfig struct {
	Faculties []string
	Sections  []string
}

// Load reads the YAML config at path, falling back to defaults for
// anything unset. Environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("ROUTINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		FeedFile:     v.GetString("feed.file"),
		ExportCSV:    v.GetString("export.csv"),
		ExportPDF:    v.GetString("export.pdf"),
		ConfirmedDir: v.GetString("store.dir"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Search: SearchConfig{
			Courses:       v.GetStringSlice("search.courses"),
			ExcludedDays:  v.GetStringSlice("search.excludedDays"),
			ExcludedSlots: v.GetStringSlice("search.excludedSlots"),
			MinDays:       v.GetInt("search.minDays"),
			MaxDays:       v.GetInt("search.maxDays"),
			MaxPerDay:     v.GetInt("search.maxPerDay"),
		},
	}

	if err := v.UnmarshalKey("search.preferences", &cfg.Search.Preferences); err != nil {
		return nil, fmt.Errorf("parse search preferences: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("feed.file", "./feed.json")
	v.SetDefault("export.csv", "")
	v.SetDefault("export.pdf", "")
	v.SetDefault("store.dir", "./confirmed")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("search.minDays", 1)
	v.SetDefault("search.maxDays", 7)
	v.SetDefault("search.maxPerDay", 7)
}

// BuildSearchConfig converts the on-disk search section into the value
// object the generator takes. Course codes are upper-cased to match the
// catalog; unknown day names are ignored.
func (c *Config) BuildSearchConfig() model.SearchConfig {
	courses := make([]string, 0, len(c.Search.Courses))
	for _, code := range c.Search.Courses {
		if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
			courses = append(courses, code)
		}
	}
	sc := model.SearchConfig{
		Courses:       courses,
		ExcludedDays:  make(map[model.Day]bool),
		ExcludedSlots: make(map[model.SlotID]bool),
		MinDays:       c.Search.MinDays,
		MaxDays:       c.Search.MaxDays,
		MaxPerDay:     c.Search.MaxPerDay,
		Preferences:   make(map[string]*model.CoursePreference),
	}
	for _, name := range c.Search.ExcludedDays {
		if day, ok := model.ParseDay(name); ok {
			sc.ExcludedDays[day] = true
		}
	}
	for _, slot := range c.Search.ExcludedSlots {
		sc.ExcludedSlots[model.SlotID(strings.TrimSpace(slot))] = true
	}
	for code, pref := range c.Search.Preferences {
		sc.Preferences[strings.ToUpper(code)] = model.PreferenceOf(pref.Faculties, pref.Sections)
	}
	sc.Normalize()
	return sc
}
