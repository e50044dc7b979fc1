// Package config loads the adminkit command's configuration using Viper, from
// a YAML file and ADMINKIT_ environment variables, and the dashboard data
// files it renders.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"impractical.co/adminkit"
)

var (
	// ErrInvalidColor is returned when a palette override isn't a hex
	// color.
	ErrInvalidColor = errors.New("invalid color")

	// ErrUnknownMode is returned when the configured theme mode isn't
	// "dark" or "light".
	ErrUnknownMode = errors.New("unknown theme mode")

	// ErrUnknownLogFormat is returned when the configured log format isn't
	// "text" or "json".
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// EnvPrefix is the prefix of environment variables that override the
// configuration file, e.g. ADMINKIT_THEME_MODE.
const EnvPrefix = "ADMINKIT"

// Config is the adminkit command's configuration.
type Config struct {
	Theme  ThemeConfig  `mapstructure:"theme"`
	Layout LayoutConfig `mapstructure:"layout"`
	Log    LogConfig    `mapstructure:"log"`

	// Data is the dashboard data file rendered when no --data flag is
	// passed.
	Data string `mapstructure:"data"`
}

// ThemeConfig selects the starting theme mode and overrides palette colors.
type ThemeConfig struct {
	Mode  string           `mapstructure:"mode"`
	Dark  PaletteOverrides `mapstructure:"dark"`
	Light PaletteOverrides `mapstructure:"light"`
}

// PaletteOverrides replace colors in one of the default palettes. Empty
// fields keep the default color.
type PaletteOverrides struct {
	Primary       string `mapstructure:"primary"`
	PrimaryDark   string `mapstructure:"primary_dark"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Background    string `mapstructure:"background"`
	Surface       string `mapstructure:"surface"`
	Border        string `mapstructure:"border"`
	Text          string `mapstructure:"text"`
	TextSecondary string `mapstructure:"text_secondary"`
	Success       string `mapstructure:"success"`
	Warning       string `mapstructure:"warning"`
	Error         string `mapstructure:"error"`
}

// LayoutConfig configures the layout injector.
type LayoutConfig struct {
	Anchor          string `mapstructure:"anchor"`
	TemplateName    string `mapstructure:"template_name"`
	TemplateVersion string `mapstructure:"template_version"`
}

// LogConfig configures the command's logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers the configuration's default values with v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("theme.mode", string(adminkit.ModeDark))
	v.SetDefault("layout.anchor", adminkit.DefaultAnchor)
	v.SetDefault("layout.template_name", adminkit.DefaultTemplateName)
	v.SetDefault("layout.template_version", adminkit.DefaultTemplateVersion)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load decodes and validates the configuration v has read.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding configuration: %w", err)
	}
	if _, err := cfg.Mode(); err != nil {
		return nil, err
	}
	if _, err := cfg.ThemeConfig(); err != nil {
		return nil, err
	}
	if _, err := cfg.level(); err != nil {
		return nil, err
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("log format %q: %w", cfg.Log.Format, ErrUnknownLogFormat)
	}
	return &cfg, nil
}

// Mode returns the configured theme mode. An empty mode is ModeDark.
func (c Config) Mode() (adminkit.ThemeMode, error) {
	switch mode := adminkit.ThemeMode(strings.ToLower(c.Theme.Mode)); mode {
	case "", adminkit.ModeDark:
		return adminkit.ModeDark, nil
	case adminkit.ModeLight:
		return adminkit.ModeLight, nil
	default:
		return "", fmt.Errorf("theme mode %q: %w", c.Theme.Mode, ErrUnknownMode)
	}
}

// ThemeConfig returns the default theme with the configured palette
// overrides applied.
func (c Config) ThemeConfig() (adminkit.ThemeConfig, error) {
	theme := adminkit.DefaultTheme()
	dark, err := c.Theme.Dark.apply(theme.Dark)
	if err != nil {
		return theme, fmt.Errorf("dark palette: %w", err)
	}
	light, err := c.Theme.Light.apply(theme.Light)
	if err != nil {
		return theme, fmt.Errorf("light palette: %w", err)
	}
	theme.Dark, theme.Light = dark, light
	return theme, nil
}

// Injector returns a layout injector for layout configured with c.
func (c Config) Injector(layout adminkit.LayoutRenderer) (*adminkit.Injector, error) {
	theme, err := c.ThemeConfig()
	if err != nil {
		return nil, err
	}
	injector := adminkit.NewInjector(layout)
	injector.Theme = adminkit.Theme{Config: theme}
	if c.Layout.Anchor != "" {
		injector.Anchor = c.Layout.Anchor
	}
	if c.Layout.TemplateName != "" {
		injector.TemplateName = c.Layout.TemplateName
	}
	if c.Layout.TemplateVersion != "" {
		injector.TemplateVersion = c.Layout.TemplateVersion
	}
	return injector, nil
}

// Logger returns a logger writing to w at the configured level, in the
// configured format.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.level()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return level, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

func (o PaletteOverrides) apply(palette adminkit.Palette) (adminkit.Palette, error) {
	fields := []struct {
		name     string
		override string
		target   *string
	}{
		{"primary", o.Primary, &palette.Primary},
		{"primary_dark", o.PrimaryDark, &palette.PrimaryDark},
		{"secondary", o.Secondary, &palette.Secondary},
		{"accent", o.Accent, &palette.Accent},
		{"background", o.Background, &palette.Background},
		{"surface", o.Surface, &palette.Surface},
		{"border", o.Border, &palette.Border},
		{"text", o.Text, &palette.Text},
		{"text_secondary", o.TextSecondary, &palette.TextSecondary},
		{"success", o.Success, &palette.Success},
		{"warning", o.Warning, &palette.Warning},
		{"error", o.Error, &palette.Error},
	}
	for _, field := range fields {
		if field.override == "" {
			continue
		}
		color, err := colorful.Hex(field.override)
		if err != nil {
			return palette, fmt.Errorf("%s %q: %w", field.name, field.override, ErrInvalidColor)
		}
		*field.target = color.Hex()
	}
	return palette, nil
}
