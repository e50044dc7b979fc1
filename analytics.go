package adminkit

import (
	"context"
	"html/template"
)

// ChartType is how an analytics panel draws its data. The zero value is
// ChartBar.
type ChartType int

const (
	// ChartBar draws a vertical bar per data point.
	ChartBar ChartType = iota

	// ChartList draws a labeled row with a horizontal progress bar per
	// data point.
	ChartList
)

var chartTypeNames = []string{"bar", "list"}

func (c ChartType) String() string { return enumName(chartTypeNames, c) }

// MarshalText encodes the chart type as its name.
func (c ChartType) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes "bar" or "list".
func (c *ChartType) UnmarshalText(text []byte) error {
	parsed, err := parseEnum[ChartType](chartTypeNames, "chart type", text)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Minimum sizes, as percentages, that keep zero-valued points visible.
const (
	minBarHeight = 4
	minListWidth = 1
)

// DefaultChartHeight is the height of a bar chart whose props don't set one.
const DefaultChartHeight template.CSS = "200px"

// DataPoint is a single labeled value in an analytics panel.
type DataPoint struct {
	Label string
	Value float64

	// DisplayValue is shown in list charts instead of Value. Optional.
	DisplayValue string

	Tone Tone
}

// AnalyticsPanelProps describes an analytics panel.
type AnalyticsPanelProps struct {
	Title string

	// Description is optional. Without one, no description paragraph is
	// rendered.
	Description string

	Data []DataPoint
	Type ChartType

	// Height is the CSS height of a bar chart, like "250px" or
	// "calc(100% - 2rem)". It's trusted and embedded as-is. It defaults to
	// DefaultChartHeight and is ignored for list charts.
	Height template.CSS

	Class string
}

type chartPoint struct {
	Label   string
	Display string
	Tone    Tone

	// Percent is the bar height for bar charts and the bar width for list
	// charts.
	Percent string
}

type analyticsPanelView struct {
	widgetTemplate
	Title       string
	Description string
	Bar         bool
	Height      template.CSS
	Points      []chartPoint
	Class       string
}

// RenderAnalyticsPanel renders a titled panel charting props.Data. Every
// point is sized relative to the largest value, which is drawn at 100%.
func RenderAnalyticsPanel(ctx context.Context, props AnalyticsPanelProps) template.HTML {
	values := make([]float64, 0, len(props.Data))
	for _, point := range props.Data {
		values = append(values, point.Value)
	}
	scale := scaleMax(values)
	floor := float64(minBarHeight)
	if props.Type == ChartList {
		floor = minListWidth
	}

	points := make([]chartPoint, 0, len(props.Data))
	for _, point := range props.Data {
		display := point.DisplayValue
		if display == "" {
			display = formatNumber(point.Value)
		}
		points = append(points, chartPoint{
			Label:   point.Label,
			Display: display,
			Tone:    point.Tone,
			Percent: formatNumber(proportion(point.Value, scale, floor)),
		})
	}

	height := props.Height
	if height == "" {
		height = DefaultChartHeight
	}
	return renderWidget(ctx, analyticsPanelView{
		widgetTemplate: "analytics_panel",
		Title:          props.Title,
		Description:    props.Description,
		Bar:            props.Type != ChartList,
		Height:         height,
		Points:         points,
		Class:          props.Class,
	})
}
