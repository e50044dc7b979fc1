package adminkit

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/net/html"
)

// ErrNoLayoutRenderer is returned when an Injector needs to render a layout
// but doesn't have a LayoutRenderer to do it with.
var ErrNoLayoutRenderer = errors.New("no layout renderer configured")

// Slot comments a layout can place in its output to mark where an Injector
// should inject. A layout that has them doesn't need to include the anchor
// script.
const (
	HeadSlot    template.HTML = "<!-- adminkit:head -->"
	BodyEndSlot template.HTML = "<!-- adminkit:body-end -->"
)

// Defaults for Injector fields left empty.
const (
	DefaultAnchor          = "https://unpkg.com/htmx.org@2.0.3"
	DefaultTemplateName    = "Modern Dark"
	DefaultTemplateVersion = "1.0.0"
)

// User is the signed-in user a layout is rendered for.
type User struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

// MenuItem is a navigation link.
type MenuItem struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`

	// Icon is trusted markup, embedded as-is.
	Icon template.HTML `yaml:"-"`

	// IsPlugin marks links contributed by plugins rather than the core
	// admin.
	IsPlugin bool `yaml:"is_plugin"`
}

// LayoutData is what a page hands to an Injector to be wrapped in the admin
// layout.
type LayoutData struct {
	Title string

	// Content is the page content, already rendered.
	Content template.HTML

	User        *User
	Version     string
	CurrentPath string
	MenuItems   []MenuItem

	// FullHTML is a complete document that was already rendered. When set,
	// the Injector patches it instead of rendering a layout.
	FullHTML string
}

// CoreLayoutData is what an Injector hands to its LayoutRenderer.
type CoreLayoutData struct {
	LayoutData
	TemplateName    string
	TemplateVersion string
}

// LayoutRenderer renders a complete HTML document around page content. The
// document should contain HeadSlot and BodyEndSlot, or failing that the
// Injector's anchor script tag and a closing body tag.
type LayoutRenderer interface {
	RenderLayout(context.Context, CoreLayoutData) (string, error)
}

// LayoutRendererFunc adapts a function to a LayoutRenderer.
type LayoutRendererFunc func(context.Context, CoreLayoutData) (string, error)

// RenderLayout calls f.
func (f LayoutRendererFunc) RenderLayout(ctx context.Context, data CoreLayoutData) (string, error) {
	return f(ctx, data)
}

// Injector injects a theme's stylesheet and script, and the theme toggle,
// into documents rendered by a LayoutRenderer or passed in already rendered.
type Injector struct {
	// Layout renders documents for LayoutData without FullHTML.
	Layout LayoutRenderer

	// Theme is injected into every document.
	Theme Theme

	// Components contribute their embedded CSS and JavaScript to the
	// injection alongside Theme's.
	Components []Component

	TemplateName    string
	TemplateVersion string

	// Anchor is the src of the script tag the injection is placed before,
	// when a document has no HeadSlot.
	Anchor string
}

// NewInjector returns an Injector that renders documents with layout and
// injects the default theme into them.
func NewInjector(layout LayoutRenderer) *Injector {
	return &Injector{
		Layout:          layout,
		Theme:           Theme{Config: DefaultTheme()},
		TemplateName:    DefaultTemplateName,
		TemplateVersion: DefaultTemplateVersion,
		Anchor:          DefaultAnchor,
	}
}

// RenderLayout returns the document for data with the theme injected into
// it. If data.FullHTML is set, that document is patched. Otherwise the
// Injector's LayoutRenderer renders one first.
func (i *Injector) RenderLayout(ctx context.Context, data LayoutData) (_ string, err error) {
	log := logger(ctx, "layout")
	mode := "delegate"
	if data.FullHTML != "" {
		mode = "patch"
	}
	ctx, span := startSpan(ctx, "adminkit.Injector.RenderLayout",
		attribute.String("adminkit.layout.mode", mode))
	defer func() { endSpan(span, err) }()

	if data.FullHTML != "" {
		log.DebugContext(ctx, "injecting theme into existing document")
		return i.Patch(ctx, data.FullHTML), nil
	}

	if i.Layout == nil {
		return "", ErrNoLayoutRenderer
	}
	log.DebugContext(ctx, "rendering with core layout", "template", i.templateName())
	doc, err := i.Layout.RenderLayout(ctx, CoreLayoutData{
		LayoutData:      data,
		TemplateName:    i.templateName(),
		TemplateVersion: i.templateVersion(),
	})
	if err != nil {
		return "", fmt.Errorf("error rendering layout: %w", err)
	}
	return i.Patch(ctx, doc), nil
}

// Patch injects the theme into doc. The stylesheet and script replace
// HeadSlot, or go right before the anchor script tag if there's no
// HeadSlot; if there's neither, they're left out. The theme toggle replaces
// BodyEndSlot, or goes right before </body>, or is appended to the end of
// the document. Everything else in doc is left exactly as it was.
func (i *Injector) Patch(ctx context.Context, doc string) string {
	log := logger(ctx, "layout")
	points := findInjectionPoints(doc, i.anchor())

	var edits []edit
	head := i.headInjection(ctx)
	switch {
	case points.headSlot != nil:
		edits = append(edits, edit{byteRange: *points.headSlot, text: head})
	case points.anchor >= 0:
		edits = append(edits, edit{byteRange: byteRange{points.anchor, points.anchor}, text: head + "\n  "})
	default:
		log.DebugContext(ctx, "anchor not found, theme not injected", "anchor", i.anchor())
	}

	toggle := string(ThemeToggle())
	switch {
	case points.bodyEndSlot != nil:
		edits = append(edits, edit{byteRange: *points.bodyEndSlot, text: toggle})
	case points.bodyEnd >= 0:
		edits = append(edits, edit{byteRange: byteRange{points.bodyEnd, points.bodyEnd}, text: toggle + "\n"})
	default:
		edits = append(edits, edit{byteRange: byteRange{len(doc), len(doc)}, text: "\n" + toggle})
	}

	// apply from the end of the document backwards, so earlier offsets
	// stay valid
	slices.SortFunc(edits, func(a, b edit) int { return b.start - a.start })
	for _, e := range edits {
		doc = doc[:e.start] + e.text + doc[e.end:]
	}
	log.DebugContext(ctx, "theme and theme controller injected")
	return doc
}

// injection is the set of Components whose embedded resources are injected.
type injection []Component

func (injection) Templates(_ context.Context) []string { return nil }

func (in injection) UseComponents(_ context.Context) []Component { return in }

func (i *Injector) headInjection(ctx context.Context) string {
	components := append(injection{i.Theme}, i.Components...)
	return "<style>" + string(getComponentCSSEmbeds(ctx, components)) + "</style>\n" +
		"<script>" + string(getComponentJSEmbeds(ctx, components)) + "</script>"
}

func (i *Injector) anchor() string {
	if i.Anchor == "" {
		return DefaultAnchor
	}
	return i.Anchor
}

func (i *Injector) templateName() string {
	if i.TemplateName == "" {
		return DefaultTemplateName
	}
	return i.TemplateName
}

func (i *Injector) templateVersion() string {
	if i.TemplateVersion == "" {
		return DefaultTemplateVersion
	}
	return i.TemplateVersion
}

type byteRange struct {
	start, end int
}

type edit struct {
	byteRange
	text string
}

// injectionPoints are byte offsets into a document. Slots are nil and
// offsets are -1 when the document doesn't have them.
type injectionPoints struct {
	headSlot    *byteRange
	bodyEndSlot *byteRange
	anchor      int
	bodyEnd     int
}

// findInjectionPoints tokenizes doc and records the first occurrence of
// each injection point in it.
func findInjectionPoints(doc, anchor string) injectionPoints {
	points := injectionPoints{anchor: -1, bodyEnd: -1}
	z := html.NewTokenizer(strings.NewReader(doc))
	var offset int
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// reading from a strings.Reader, so this is always io.EOF
			return points
		}
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.CommentToken:
			tok := strings.TrimSpace(string(z.Text()))
			r := byteRange{start, offset}
			switch {
			case tok == slotName(HeadSlot) && points.headSlot == nil:
				points.headSlot = &r
			case tok == slotName(BodyEndSlot) && points.bodyEndSlot == nil:
				points.bodyEndSlot = &r
			}
		case html.StartTagToken:
			if points.anchor >= 0 {
				continue
			}
			name, hasAttr := z.TagName()
			if string(name) != "script" || !hasAttr {
				continue
			}
			for {
				key, val, more := z.TagAttr()
				if string(key) == "src" && string(val) == anchor {
					points.anchor = start
					break
				}
				if !more {
					break
				}
			}
		case html.EndTagToken:
			if points.bodyEnd >= 0 {
				continue
			}
			if name, _ := z.TagName(); string(name) == "body" {
				points.bodyEnd = start
			}
		}
	}
}

// slotName returns the text inside a slot comment.
func slotName(slot template.HTML) string {
	name := strings.TrimPrefix(string(slot), "<!--")
	name = strings.TrimSuffix(name, "-->")
	return strings.TrimSpace(name)
}
