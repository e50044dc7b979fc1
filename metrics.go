package adminkit

import (
	"context"
	"fmt"
	"html/template"
)

// Trend is the change in a metric over some period.
type Trend struct {
	// Value is the size of the change, as a percentage.
	Value float64

	// Label describes the period, e.g. "from last week". Optional.
	Label string

	Direction TrendDirection
}

// Percent returns Value formatted for display, without the percent sign.
func (t Trend) Percent() string {
	return formatNumber(t.Value)
}

// Arrow returns the indicator icon for the trend's direction. Only one of
// the three is ever returned, so markup for an upward trend never contains
// the downward indicator.
func (t Trend) Arrow() template.HTML {
	switch t.Direction {
	case TrendUp:
		return arrowUp
	case TrendDown:
		return arrowDown
	}
	return arrowNeutral
}

// MetricCardProps describes a single metric card.
type MetricCardProps struct {
	Title string

	// Value is displayed using its default formatting, the way fmt.Sprint
	// would, and escaped. A nil Value displays as nothing.
	Value any

	// Trend is optional. Without one, no trend row is rendered.
	Trend *Trend

	// Icon is trusted markup, embedded as-is.
	Icon template.HTML

	// Class is appended to the card's class list.
	Class string
}

type metricCardView struct {
	widgetTemplate
	MetricCardProps
	Display string
}

func newMetricCardView(props MetricCardProps) metricCardView {
	var display string
	if props.Value != nil {
		display = fmt.Sprint(props.Value)
	}
	return metricCardView{
		widgetTemplate:  "metric_card",
		MetricCardProps: props,
		Display:         display,
	}
}

// RenderMetricCard renders a card displaying a single metric.
func RenderMetricCard(ctx context.Context, props MetricCardProps) template.HTML {
	return renderWidget(ctx, newMetricCardView(props))
}

// MetricGridProps describes a grid of metric cards.
type MetricGridProps struct {
	Metrics []MetricCardProps
	Columns GridColumns
	Class   string
}

type metricGridView struct {
	widgetTemplate
	Cards     []metricCardView
	GridClass string
	Class     string
}

func (metricGridView) UseComponents(_ context.Context) []Component {
	return []Component{metricCardView{widgetTemplate: "metric_card"}}
}

// RenderMetricGrid renders one metric card per metric, in order, laid out in
// a grid.
func RenderMetricGrid(ctx context.Context, props MetricGridProps) template.HTML {
	cards := make([]metricCardView, 0, len(props.Metrics))
	for _, metric := range props.Metrics {
		cards = append(cards, newMetricCardView(metric))
	}
	return renderWidget(ctx, metricGridView{
		widgetTemplate: "metric_grid",
		Cards:          cards,
		GridClass:      gridClass(ctx, props.Columns),
		Class:          props.Class,
	})
}
