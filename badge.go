package adminkit

import (
	"context"
	"html/template"
)

// BadgeSize is the size of a badge. The zero value is BadgeMedium.
type BadgeSize int

const (
	BadgeMedium BadgeSize = iota
	BadgeSmall
)

var badgeSizeNames = []string{"md", "sm"}

func (s BadgeSize) String() string { return enumName(badgeSizeNames, s) }

// MarshalText encodes the size as "md" or "sm".
func (s BadgeSize) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes "md" or "sm".
func (s *BadgeSize) UnmarshalText(text []byte) error {
	parsed, err := parseEnum[BadgeSize](badgeSizeNames, "badge size", text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// badgeStyles maps every BadgeVariant to its inline style.
var badgeStyles = [...]template.CSS{
	BadgeDefault: "background-color: var(--color-surface); color: var(--color-text); border: 1px solid var(--color-border);",
	BadgePrimary: "background-color: color-mix(in srgb, var(--color-primary), transparent 85%); color: var(--color-primary);",
	BadgeSuccess: "background-color: color-mix(in srgb, var(--color-success), transparent 85%); color: var(--color-success);",
	BadgeWarning: "background-color: color-mix(in srgb, var(--color-warning), transparent 85%); color: var(--color-warning);",
	BadgeError:   "background-color: color-mix(in srgb, var(--color-error), transparent 85%); color: var(--color-error);",
	BadgeNeutral: "background-color: var(--color-background); color: var(--color-text-secondary); border: 1px solid var(--color-border);",
}

// BadgeProps describes a badge.
type BadgeProps struct {
	Label   string
	Variant BadgeVariant
	Size    BadgeSize

	// Rounded renders a pill instead of a rounded rectangle.
	Rounded bool

	Class string
}

type badgeView struct {
	widgetTemplate
	BadgeProps
	Style template.CSS
}

// RenderBadge renders a small inline label.
func RenderBadge(ctx context.Context, props BadgeProps) template.HTML {
	variant := props.Variant
	if variant < 0 || int(variant) >= len(badgeStyles) {
		variant = BadgeDefault
	}
	return renderWidget(ctx, badgeView{
		widgetTemplate: "badge",
		BadgeProps:     props,
		Style:          badgeStyles[variant],
	})
}
