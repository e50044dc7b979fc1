package adminkit

import (
	"context"
	"html/template"
)

// LogoSize is the size of the logo. The zero value is LogoMedium.
type LogoSize int

const (
	LogoMedium LogoSize = iota
	LogoSmall
	LogoLarge
)

var logoSizeNames = []string{"md", "sm", "lg"}

func (s LogoSize) String() string { return enumName(logoSizeNames, s) }

// MarshalText encodes the size as "sm", "md", or "lg".
func (s LogoSize) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes "sm", "md", or "lg".
func (s *LogoSize) UnmarshalText(text []byte) error {
	parsed, err := parseEnum[LogoSize](logoSizeNames, "logo size", text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Defaults for LogoProps fields left empty.
const (
	DefaultLogoText = "CF-CMS"
	DefaultLogoHref = "/admin"
)

// LogoProps describes the product logo.
type LogoProps struct {
	Text     string
	Size     LogoSize
	Href     string
	HideText bool
}

type logoView struct {
	widgetTemplate
	LogoProps
	Mark string
}

// RenderLogo renders the product logo: a gradient mark holding the first
// letter of Text, followed by Text itself unless HideText is set.
func RenderLogo(ctx context.Context, props LogoProps) template.HTML {
	if props.Text == "" {
		props.Text = DefaultLogoText
	}
	if props.Href == "" {
		props.Href = DefaultLogoHref
	}
	return renderWidget(ctx, logoView{
		widgetTemplate: "logo",
		LogoProps:      props,
		Mark:           string([]rune(props.Text)[:1]),
	})
}
