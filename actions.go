package adminkit

import (
	"context"
	"html/template"
)

// Action is a single quick action.
type Action struct {
	Label string

	// Href makes the action a link. Without one, it's a button.
	Href string

	// Icon is trusted markup, embedded as-is.
	Icon template.HTML

	// OnClick is trusted script, run when a button action is clicked.
	// It's ignored for link actions.
	OnClick template.JS

	Variant  ActionVariant
	Disabled bool
}

// actionStyles maps every ActionVariant to its inline style.
var actionStyles = [...]template.CSS{
	ActionPrimary:   "color: var(--color-primary); background-color: color-mix(in srgb, var(--color-primary), transparent 90%); border-color: color-mix(in srgb, var(--color-primary), transparent 80%);",
	ActionSecondary: "color: var(--color-text); background-color: var(--color-surface); border-color: var(--color-border);",
	ActionDanger:    "color: var(--color-error); background-color: color-mix(in srgb, var(--color-error), transparent 90%); border-color: color-mix(in srgb, var(--color-error), transparent 80%);",
}

// ActionGridProps describes a grid of quick actions.
type ActionGridProps struct {
	Actions []Action
	Columns GridColumns
	Class   string
}

type actionView struct {
	Action
	Style template.CSS
}

type actionGridView struct {
	widgetTemplate
	Actions   []actionView
	GridClass string
	Class     string
}

// RenderActionGrid renders each action as a tile in a grid. Actions with an
// Href render as links; the rest render as buttons.
func RenderActionGrid(ctx context.Context, props ActionGridProps) template.HTML {
	actions := make([]actionView, 0, len(props.Actions))
	for _, action := range props.Actions {
		variant := action.Variant
		if variant < 0 || int(variant) >= len(actionStyles) {
			variant = ActionPrimary
		}
		actions = append(actions, actionView{
			Action: action,
			Style:  actionStyles[variant],
		})
	}
	return renderWidget(ctx, actionGridView{
		widgetTemplate: "action_grid",
		Actions:        actions,
		GridClass:      gridClass(ctx, props.Columns),
		Class:          props.Class,
	})
}
