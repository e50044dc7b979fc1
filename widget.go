package adminkit

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"math"
	"strconv"
)

//go:embed templates
var templateFS embed.FS

//go:embed templates/theme.js
var themeScript string

//go:embed templates/theme_toggle.html
var themeToggle string

// Templates returns the kit's embedded templates. Sites that render
// BaseLayout, or their own pages built from the kit's widget templates,
// should serve these from TemplateDir.
func Templates() fs.FS {
	return templateFS
}

// widgets is the Site every widget renderer executes against. Its template
// cache is shared across goroutines.
var widgets = NewCachedSite(templateFS)

// widgetTemplate is embedded in widget views to make them Renderable. Its
// value is the name of the template the widget defines, which is also the
// base name of the file it's defined in.
type widgetTemplate string

func (w widgetTemplate) Templates(_ context.Context) []string {
	return []string{"templates/" + string(w) + ".html.tmpl"}
}

func (w widgetTemplate) Key(_ context.Context) string {
	return string(w)
}

func (w widgetTemplate) ExecutedTemplate(_ context.Context) string {
	return string(w)
}

// renderWidget renders a widget view. Widgets never fail: an error is logged
// and an empty fragment returned in its place.
func renderWidget(ctx context.Context, view Renderable) template.HTML {
	out, err := RenderFragment(ctx, widgets, view)
	if err != nil {
		logger(ctx, "widgets").ErrorContext(ctx, "error rendering widget",
			"widget", view.ExecutedTemplate(ctx), "error", err)
		return ""
	}
	return out
}

// GridColumns is the number of columns a grid widget lays its children out
// in. Only Columns2, Columns3, and Columns4 are laid out as asked; the zero
// value means Columns4, and any other value is clamped to Columns2.
type GridColumns int

const (
	Columns2 GridColumns = 2
	Columns3 GridColumns = 3
	Columns4 GridColumns = 4
)

func gridClass(ctx context.Context, columns GridColumns) string {
	switch columns {
	case 0, Columns4:
		return "grid-4"
	case Columns3:
		return "grid-3"
	case Columns2:
		return "grid-2"
	}
	logger(ctx, "widgets").WarnContext(ctx, "unsupported grid column count, using 2 columns",
		"columns", int(columns))
	return "grid-2"
}

// scaleMax returns the value proportions are measured against: the largest
// value, or 1 if no value is positive.
func scaleMax(values []float64) float64 {
	var largest float64
	for _, v := range values {
		if v > largest {
			largest = v
		}
	}
	if largest <= 0 || math.IsInf(largest, 1) {
		return 1
	}
	return largest
}

// proportion returns value as a percentage of scale, clamped to
// [floor, 100] and rounded to two decimal places.
func proportion(value, scale, floor float64) float64 {
	pct := value / scale * 100
	if math.IsNaN(pct) || pct < floor {
		pct = floor
	}
	if pct > 100 {
		pct = 100
	}
	return math.Round(pct*100) / 100
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
