package adminkit

import (
	"context"
	"html/template"
	"strings"
	texttemplate "text/template"
)

// ThemeMode selects one of the two palettes.
type ThemeMode string

const (
	ModeDark  ThemeMode = "dark"
	ModeLight ThemeMode = "light"
)

// Palette is the set of colors used for one theme mode. Every color widgets
// use is looked up through the CSS variable bound to one of these fields, so
// swapping palettes reskins rendered markup without re-rendering it.
type Palette struct {
	Primary       string
	PrimaryDark   string
	Secondary     string
	Accent        string
	Background    string
	Surface       string
	Border        string
	Text          string
	TextSecondary string
	Success       string
	Warning       string
	Error         string
}

// Typography is the font family and the font-size scale.
type Typography struct {
	FontFamily string
	XS         string
	SM         string
	Base       string
	LG         string
	XL         string
	XXL        string
}

// Spacing is the spacing scale.
type Spacing struct {
	XS string
	SM string
	MD string
	LG string
	XL string
}

// Gradients are the gradients shared by both palettes.
type Gradients struct {
	Primary string
	Surface string
}

// Elevations are the box-shadow presets.
type Elevations struct {
	SM string
	MD string
	LG string
	XL string
}

// Motion are the transition presets.
type Motion struct {
	Fast   string
	Normal string
	Slow   string
}

// Breakpoints are the responsive breakpoints. Grid layouts collapse to a
// single column below MD.
type Breakpoints struct {
	SM string
	MD string
	LG string
	XL string
}

// ThemeConfig is everything ThemeCSS needs to build a stylesheet.
type ThemeConfig struct {
	Dark        Palette
	Light       Palette
	Typography  Typography
	Spacing     Spacing
	Gradients   Gradients
	Elevations  Elevations
	Motion      Motion
	Breakpoints Breakpoints
}

// Palette returns the palette for mode, defaulting to the dark palette for
// anything other than ModeLight.
func (c ThemeConfig) Palette(mode ThemeMode) Palette {
	if mode == ModeLight {
		return c.Light
	}
	return c.Dark
}

var (
	darkPalette = Palette{
		Primary:       "#3b82f6",
		PrimaryDark:   "#1e40af",
		Secondary:     "#8b5cf6",
		Accent:        "#ec4899",
		Background:    "#0f172a",
		Surface:       "#1e293b",
		Border:        "#334155",
		Text:          "#f1f5f9",
		TextSecondary: "#cbd5e1",
		Success:       "#10b981",
		Warning:       "#f59e0b",
		Error:         "#ef4444",
	}

	lightPalette = Palette{
		Primary:       "#2563eb",
		PrimaryDark:   "#1e40af",
		Secondary:     "#7c3aed",
		Accent:        "#db2777",
		Background:    "#f8fafc",
		Surface:       "#ffffff",
		Border:        "#e2e8f0",
		Text:          "#0f172a",
		TextSecondary: "#475569",
		Success:       "#059669",
		Warning:       "#d97706",
		Error:         "#dc2626",
	}

	modernDark = ThemeConfig{
		Dark:  darkPalette,
		Light: lightPalette,
		Typography: Typography{
			FontFamily: `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`,
			XS:         "12px",
			SM:         "14px",
			Base:       "16px",
			LG:         "18px",
			XL:         "20px",
			XXL:        "24px",
		},
		Spacing: Spacing{
			XS: "4px",
			SM: "8px",
			MD: "16px",
			LG: "24px",
			XL: "32px",
		},
		Gradients: Gradients{
			Primary: "linear-gradient(135deg, var(--color-primary), var(--color-secondary))",
			Surface: "linear-gradient(180deg, rgba(255,255,255,0.05), rgba(255,255,255,0))",
		},
		Elevations: Elevations{
			SM: "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
			MD: "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)",
			LG: "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)",
			XL: "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 10px 10px -5px rgba(0, 0, 0, 0.04)",
		},
		Motion: Motion{
			Fast:   "150ms cubic-bezier(0.4, 0, 0.2, 1)",
			Normal: "300ms cubic-bezier(0.4, 0, 0.2, 1)",
			Slow:   "500ms cubic-bezier(0.4, 0, 0.2, 1)",
		},
		Breakpoints: Breakpoints{
			SM: "640px",
			MD: "768px",
			LG: "1024px",
			XL: "1280px",
		},
	}
)

// DefaultTheme returns the built-in "Modern Dark" theme. The returned value
// is a copy; changing it does not affect the built-in palettes.
func DefaultTheme() ThemeConfig {
	return modernDark
}

// stylesheet is parsed once; it's only ever executed afterwards, which is
// safe from multiple goroutines.
var stylesheet = texttemplate.Must(texttemplate.New("theme.css.tmpl").
	ParseFS(templateFS, "templates/theme.css.tmpl"))

// ThemeCSS builds the complete stylesheet for cfg: the :root variable
// bindings (dark palette by default), a [data-theme] block per palette, and
// the structural, utility, and widget rules that consume those variables.
func ThemeCSS(cfg ThemeConfig) template.CSS {
	var out strings.Builder
	// the template is embedded and its data is a plain struct of strings;
	// executing it can only fail if the writer fails, and strings.Builder
	// doesn't.
	_ = stylesheet.Execute(&out, cfg)
	return template.CSS(out.String()) // #nosec G203
}

// ThemeScript returns the client-side bootstrap. When run in a browser, it
// applies the persisted theme preference (or the OS preference, if none is
// persisted) to the document, then wires the #theme-toggle and
// #sidebar-toggle controls.
func ThemeScript() template.JS {
	return template.JS(themeScript) // #nosec G203
}

// ThemeToggle returns the floating controller holding the #sidebar-toggle
// and #theme-toggle buttons ThemeScript attaches to.
func ThemeToggle() template.HTML {
	return template.HTML(strings.TrimSpace(themeToggle)) // #nosec G203
}

var _ CSSEmbedder = Theme{}
var _ JSEmbedder = Theme{}

// Theme is a Component that embeds the stylesheet and bootstrap script for
// Config into any page that uses it.
type Theme struct {
	Config ThemeConfig
}

// Templates returns nil; a Theme only contributes resources.
func (Theme) Templates(_ context.Context) []string {
	return nil
}

// EmbedCSS returns ThemeCSS for the Theme's Config.
func (t Theme) EmbedCSS(_ context.Context) template.CSS {
	return ThemeCSS(t.Config)
}

// EmbedJS returns ThemeScript.
func (Theme) EmbedJS(_ context.Context) template.JS {
	return ThemeScript()
}
