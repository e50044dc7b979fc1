package adminkit

import (
	"context"
	"html/template"
)

// ActivityUser is the person an activity item is attributed to.
type ActivityUser struct {
	Name string

	// Avatar is the URL of the user's picture. Without one, a monogram is
	// shown instead.
	Avatar string

	// Initials are the monogram. They default to the first two characters
	// of Name.
	Initials string
}

// Monogram returns the text shown in place of a missing avatar.
func (u ActivityUser) Monogram() string {
	if u.Initials != "" {
		return u.Initials
	}
	runes := []rune(u.Name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return string(runes)
}

// ActivityItem is a single entry in an activity list.
type ActivityItem struct {
	ID     string
	User   ActivityUser
	Action string

	// Target is what the action was performed on. Optional.
	Target string

	// Time is displayed as-is, so it should already be formatted.
	Time string

	// Icon is trusted markup, embedded as-is.
	Icon template.HTML
}

// ActivityListProps describes an activity list.
type ActivityListProps struct {
	// Title is optional. Without one, no header is rendered.
	Title string

	Items []ActivityItem

	// MaxHeight is the CSS height the list scrolls beyond, like "400px" or
	// "min(60vh, 400px)". It's trusted and embedded as-is. Optional.
	MaxHeight template.CSS

	Class string
}

type activityListView struct {
	widgetTemplate
	ActivityListProps
}

// RenderActivityList renders a list of recent activity. A list with no items
// still renders its container and title, with an empty list body.
func RenderActivityList(ctx context.Context, props ActivityListProps) template.HTML {
	return renderWidget(ctx, activityListView{
		widgetTemplate:    "activity_list",
		ActivityListProps: props,
	})
}
