package adminkit

import (
	"context"
	_ "embed"
	"html/template"
	"strings"
)

//go:embed templates/layout.css
var layoutCSS string

var _ LayoutRenderer = BaseLayout{}

// DefaultMenu is the core admin navigation, shown above any plugin links.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Label: "Dashboard", Path: "/admin", Icon: IconDashboard},
		{Label: "Content", Path: "/admin/content", Icon: smallIcon(IconContent)},
		{Label: "Media", Path: "/admin/media", Icon: smallIcon(IconMedia)},
		{Label: "Users", Path: "/admin/users", Icon: smallIcon(IconUsers)},
		{Label: "Settings", Path: "/admin/settings", Icon: smallIcon(IconSettings)},
	}
}

// BaseLayout is a LayoutRenderer for sites without a layout of their own:
// a sidebar with the navigation, a header with the signed-in user, and the
// page content. Its documents contain HeadSlot and BodyEndSlot, as well as
// the default anchor script.
type BaseLayout struct {
	// Site renders the layout's templates. It defaults to a Site serving
	// the kit's own templates.
	Site Site

	// Mode is the theme mode documents start in, before the theme script
	// applies the visitor's preference.
	Mode ThemeMode

	// Menu is the core navigation. It defaults to DefaultMenu.
	Menu []MenuItem

	Logo LogoProps
}

type navLink struct {
	MenuItem
	Active bool
}

// layoutPage is the Renderable a BaseLayout renders for each document.
type layoutPage struct {
	CoreLayoutData
	Mode    ThemeMode
	Logo    template.HTML
	Menu    []navLink
	Plugins []navLink
}

func (layoutPage) Templates(_ context.Context) []string {
	return []string{"templates/layout.html.tmpl"}
}

func (layoutPage) Key(_ context.Context) string { return "layout" }

func (layoutPage) ExecutedTemplate(_ context.Context) string { return "layout" }

func (layoutPage) EmbedCSS(_ context.Context) template.CSS {
	return template.CSS(layoutCSS) // #nosec G203
}

func (layoutPage) LinkJS(_ context.Context) []string {
	return []string{DefaultAnchor}
}

// HeadSlot and BodyEndSlot are methods so the layout template can emit the
// comments; html/template strips comments written in template text.
func (layoutPage) HeadSlot() template.HTML    { return HeadSlot }
func (layoutPage) BodyEndSlot() template.HTML { return BodyEndSlot }

// RenderLayout renders a complete document around data.Content.
func (b BaseLayout) RenderLayout(ctx context.Context, data CoreLayoutData) (string, error) {
	site := b.Site
	if site == nil {
		site = widgets
	}
	menu := b.Menu
	if menu == nil {
		menu = DefaultMenu()
	}
	mode := b.Mode
	if mode == "" {
		mode = ModeDark
	}
	page := layoutPage{
		CoreLayoutData: data,
		Mode:           mode,
		Logo:           RenderLogo(ctx, b.Logo),
		Menu:           navLinks(menu, data.CurrentPath),
		Plugins:        navLinks(data.MenuItems, data.CurrentPath),
	}
	var out strings.Builder
	err := basicRender(ctx, &out, site, page)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

func navLinks(items []MenuItem, current string) []navLink {
	links := make([]navLink, 0, len(items))
	for _, item := range items {
		links = append(links, navLink{MenuItem: item, Active: item.Path == current})
	}
	return links
}
