package adminkit

import (
	"errors"
	"fmt"
)

// ErrUnknownValue is returned when text that doesn't name a known value is
// unmarshaled into one of the kit's enumerated types.
var ErrUnknownValue = errors.New("unknown value")

// enumName returns the name of value, or the name of the zero value when
// value is out of range.
func enumName[E ~int](names []string, value E) string {
	if value < 0 || int(value) >= len(names) {
		return names[0]
	}
	return names[value]
}

func parseEnum[E ~int](names []string, kind string, text []byte) (E, error) {
	for pos, name := range names {
		if name == string(text) {
			return E(pos), nil
		}
	}
	return 0, fmt.Errorf("%s %q: %w", kind, text, ErrUnknownValue)
}

// TrendDirection is the direction a metric moved in. The zero value is
// TrendNeutral.
type TrendDirection int

const (
	TrendNeutral TrendDirection = iota
	TrendUp
	TrendDown
)

var trendDirectionNames = []string{"neutral", "up", "down"}

func (d TrendDirection) String() string { return enumName(trendDirectionNames, d) }

// MarshalText encodes the direction as its name.
func (d TrendDirection) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText decodes "up", "down", or "neutral".
func (d *TrendDirection) UnmarshalText(text []byte) error {
	v, err := parseEnum[TrendDirection](trendDirectionNames, "trend direction", text)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ActionVariant is the visual style of a quick action. The zero value is
// ActionPrimary.
type ActionVariant int

const (
	ActionPrimary ActionVariant = iota
	ActionSecondary
	ActionDanger
)

var actionVariantNames = []string{"primary", "secondary", "danger"}

func (v ActionVariant) String() string { return enumName(actionVariantNames, v) }

// MarshalText encodes the variant as its name.
func (v ActionVariant) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText decodes "primary", "secondary", or "danger".
func (v *ActionVariant) UnmarshalText(text []byte) error {
	parsed, err := parseEnum[ActionVariant](actionVariantNames, "action variant", text)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// BadgeVariant is the visual style of a badge. The zero value is
// BadgeDefault.
type BadgeVariant int

const (
	BadgeDefault BadgeVariant = iota
	BadgePrimary
	BadgeSuccess
	BadgeWarning
	BadgeError
	BadgeNeutral
)

var badgeVariantNames = []string{"default", "primary", "success", "warning", "error", "neutral"}

func (v BadgeVariant) String() string { return enumName(badgeVariantNames, v) }

// MarshalText encodes the variant as its name.
func (v BadgeVariant) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText decodes a badge variant name.
func (v *BadgeVariant) UnmarshalText(text []byte) error {
	parsed, err := parseEnum[BadgeVariant](badgeVariantNames, "badge variant", text)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Tone is the semantic palette color a chart series is drawn in. The zero
// value is TonePrimary.
type Tone int

const (
	TonePrimary Tone = iota
	ToneSecondary
	ToneAccent
	ToneSuccess
	ToneWarning
	ToneError
)

var toneNames = []string{"primary", "secondary", "accent", "success", "warning", "error"}

func (t Tone) String() string { return enumName(toneNames, t) }

// Var returns the CSS variable reference for the tone, e.g.
// var(--color-primary).
func (t Tone) Var() string { return "var(--color-" + t.String() + ")" }

// MarshalText encodes the tone as its name.
func (t Tone) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText decodes a tone name.
func (t *Tone) UnmarshalText(text []byte) error {
	parsed, err := parseEnum[Tone](toneNames, "tone", text)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ActivityType is the kind of object an activity happened to. The zero value
// is ActivityTypeOther.
type ActivityType int

const (
	ActivityTypeOther ActivityType = iota
	ActivityTypeContent
	ActivityTypeMedia
	ActivityTypeUser
	ActivityTypeCollection
)

var activityTypeNames = []string{"other", "content", "media", "user", "collection"}

func (t ActivityType) String() string { return enumName(activityTypeNames, t) }

// MarshalText encodes the type as its name.
func (t ActivityType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText decodes an activity type name.
func (t *ActivityType) UnmarshalText(text []byte) error {
	parsed, err := parseEnum[ActivityType](activityTypeNames, "activity type", text)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
