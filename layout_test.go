package adminkit_test

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"impractical.co/adminkit"
)

// themeHead is what an Injector with the default theme and no other
// components injects into a document's head.
func themeHead() string {
	return "<style>\n/* embedded CSS from adminkit.Theme */\n" + string(adminkit.ThemeCSS(adminkit.DefaultTheme())) + "</style>\n" +
		"<script>\n/* embedded JavaScript from adminkit.Theme */\n" + string(adminkit.ThemeScript()) + "</script>"
}

const anchorTag = `<script src="https://unpkg.com/htmx.org@2.0.3"></script>`

func ExampleInjector_Patch() {
	injector := adminkit.NewInjector(nil)
	doc := "<!DOCTYPE html><html><head>" + string(adminkit.HeadSlot) + "</head>" +
		"<body><main>Hello</main>" + string(adminkit.BodyEndSlot) + "</body></html>"

	out := injector.Patch(context.Background(), doc)
	fmt.Println(strings.Contains(out, "adminkit:"))
	fmt.Println(strings.Count(out, `<div id="theme-controller"`))
	fmt.Println(strings.Index(out, "<style>") < strings.Index(out, "</head>"))
	fmt.Println(strings.HasSuffix(out, "</div></body></html>"))
	//Output:
	// false
	// 1
	// true
	// true
}

func TestInjectorPatchSlots(t *testing.T) {
	t.Parallel()

	doc := "<html><head><title>Slots</title>\n" + string(adminkit.HeadSlot) + "\n" + anchorTag + "</head>" +
		"<body><p>x</p>" + string(adminkit.BodyEndSlot) + "</body></html>"
	want := "<html><head><title>Slots</title>\n" + themeHead() + "\n" + anchorTag + "</head>" +
		"<body><p>x</p>" + string(adminkit.ThemeToggle()) + "</body></html>"

	assert.Equal(t, want, adminkit.NewInjector(nil).Patch(context.Background(), doc))
}

func TestInjectorPatchSlotWhitespace(t *testing.T) {
	t.Parallel()

	doc := "<head><!--adminkit:head--></head><body><!--   adminkit:body-end\n--></body>"
	want := "<head>" + themeHead() + "</head><body>" + string(adminkit.ThemeToggle()) + "</body>"

	assert.Equal(t, want, adminkit.NewInjector(nil).Patch(context.Background(), doc))
}

func TestInjectorPatchAnchor(t *testing.T) {
	t.Parallel()

	doc := "<!DOCTYPE html>\n<html>\n<head>\n  <title>Anchored</title>\n  " + anchorTag + "\n</head>\n" +
		"<body>\n  <p>hi</p>\n</body>\n</html>"
	want := "<!DOCTYPE html>\n<html>\n<head>\n  <title>Anchored</title>\n  " + themeHead() + "\n  " + anchorTag + "\n</head>\n" +
		"<body>\n  <p>hi</p>\n" + string(adminkit.ThemeToggle()) + "\n</body>\n</html>"

	assert.Equal(t, want, adminkit.NewInjector(nil).Patch(context.Background(), doc))
}

func TestInjectorPatchCustomAnchor(t *testing.T) {
	t.Parallel()

	injector := adminkit.NewInjector(nil)
	injector.Anchor = "/static/app.js"

	doc := `<head>` + anchorTag + `<script src='/static/app.js' defer></script></head>`
	want := `<head>` + anchorTag + themeHead() + "\n  " + `<script src='/static/app.js' defer></script></head>` +
		"\n" + string(adminkit.ThemeToggle())

	assert.Equal(t, want, injector.Patch(context.Background(), doc))
}

func TestInjectorPatchWithoutInjectionPoints(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"fragment":          "<p>hello</p>",
		"empty":             "",
		"other-version":     `<head><script src="https://unpkg.com/htmx.org@2.0.4"></script></head>`,
		"anchor-in-text":    `<pre>` + template.HTMLEscapeString(anchorTag) + `</pre>`,
		"anchor-in-comment": "<!-- " + anchorTag + " -->",
		"slot-in-text":      "<p>adminkit:head</p>",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out := adminkit.NewInjector(nil).Patch(context.Background(), doc)
			assert.Equal(t, doc+"\n"+string(adminkit.ThemeToggle()), out)
		})
	}
}

func TestInjectorPatchFirstBodyEnd(t *testing.T) {
	t.Parallel()

	doc := "<body><p>one</p></body><p>two</p></body>"
	want := "<body><p>one</p>" + string(adminkit.ThemeToggle()) + "\n</body><p>two</p></body>"

	assert.Equal(t, want, adminkit.NewInjector(nil).Patch(context.Background(), doc))
}

type extraCSS struct{}

func (extraCSS) Templates(_ context.Context) []string { return nil }

func (extraCSS) EmbedCSS(_ context.Context) template.CSS {
	return ".extra { color: var(--color-accent); }"
}

func TestInjectorComponents(t *testing.T) {
	t.Parallel()

	injector := adminkit.NewInjector(nil)
	injector.Components = []adminkit.Component{extraCSS{}, injector.Theme}

	out := injector.Patch(context.Background(), string(adminkit.HeadSlot))
	assert.Equal(t, 1, strings.Count(out, "/* embedded CSS from adminkit.Theme */"))
	assert.Equal(t, 1, strings.Count(out, "/* embedded JavaScript from adminkit.Theme */"))
	assert.Contains(t, out, "/* embedded CSS from adminkit_test.extraCSS */\n.extra { color: var(--color-accent); }</style>")
	assert.Less(t, strings.Index(out, "adminkit.Theme"), strings.Index(out, "adminkit_test.extraCSS"))
}

func TestInjectorDelegates(t *testing.T) {
	t.Parallel()

	var got adminkit.CoreLayoutData
	layout := adminkit.LayoutRendererFunc(func(_ context.Context, data adminkit.CoreLayoutData) (string, error) {
		got = data
		return "<html><head>" + string(adminkit.HeadSlot) + "</head><body>" + string(data.Content) +
			string(adminkit.BodyEndSlot) + "</body></html>", nil
	})

	data := adminkit.LayoutData{
		Title:       "Dashboard",
		Content:     "<p>content</p>",
		User:        &adminkit.User{Name: "Ada"},
		Version:     "2.1.0",
		CurrentPath: "/admin",
	}
	out, err := adminkit.NewInjector(layout).RenderLayout(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, data, got.LayoutData)
	assert.Equal(t, "Modern Dark", got.TemplateName)
	assert.Equal(t, "1.0.0", got.TemplateVersion)
	assert.Equal(t, "<html><head>"+themeHead()+"</head><body><p>content</p>"+string(adminkit.ThemeToggle())+"</body></html>", out)
}

func TestInjectorZeroValueDefaults(t *testing.T) {
	t.Parallel()

	var got adminkit.CoreLayoutData
	injector := &adminkit.Injector{
		Layout: adminkit.LayoutRendererFunc(func(_ context.Context, data adminkit.CoreLayoutData) (string, error) {
			got = data
			return "<head>" + anchorTag + "</head>", nil
		}),
	}
	out, err := injector.RenderLayout(context.Background(), adminkit.LayoutData{})
	require.NoError(t, err)

	assert.Equal(t, adminkit.DefaultTemplateName, got.TemplateName)
	assert.Equal(t, adminkit.DefaultTemplateVersion, got.TemplateVersion)
	assert.Contains(t, out, "<style>\n/* embedded CSS from adminkit.Theme */\n")
	assert.Contains(t, out, "</script>\n  "+anchorTag)
}

func TestInjectorPatchesFullHTML(t *testing.T) {
	t.Parallel()

	// patching doesn't need a layout renderer
	injector := adminkit.NewInjector(nil)
	out, err := injector.RenderLayout(context.Background(), adminkit.LayoutData{
		Title:    "ignored",
		FullHTML: "<html><body>" + string(adminkit.BodyEndSlot) + "</body></html>",
	})
	require.NoError(t, err)
	assert.Equal(t, "<html><body>"+string(adminkit.ThemeToggle())+"</body></html>", out)
}

func TestInjectorNoLayoutRenderer(t *testing.T) {
	t.Parallel()

	_, err := adminkit.NewInjector(nil).RenderLayout(context.Background(), adminkit.LayoutData{Title: "x"})
	require.ErrorIs(t, err, adminkit.ErrNoLayoutRenderer)
}

func TestInjectorLayoutError(t *testing.T) {
	t.Parallel()

	errBroken := errors.New("layout is broken")
	injector := adminkit.NewInjector(adminkit.LayoutRendererFunc(func(context.Context, adminkit.CoreLayoutData) (string, error) {
		return "", errBroken
	}))

	out, err := injector.RenderLayout(context.Background(), adminkit.LayoutData{})
	require.ErrorIs(t, err, errBroken)
	assert.ErrorContains(t, err, "error rendering layout")
	assert.Empty(t, out)
}

func TestBaseLayout(t *testing.T) {
	t.Parallel()

	out, err := adminkit.NewInjector(adminkit.BaseLayout{}).RenderLayout(context.Background(), adminkit.LayoutData{
		Title:       "Media - CF-CMS",
		Content:     "<p class=\"page\">hi</p>",
		User:        &adminkit.User{Name: hostile, Email: "ada@example.com"},
		Version:     "2.1.0",
		CurrentPath: "/admin/media",
		MenuItems:   []adminkit.MenuItem{{Label: "SEO", Path: "/admin/seo", IsPlugin: true}},
	})
	require.NoError(t, err)

	assert.NotContains(t, out, "adminkit:head")
	assert.NotContains(t, out, "adminkit:body-end")
	assert.Equal(t, 1, strings.Count(out, "/* embedded CSS from adminkit.Theme */"))
	assert.Equal(t, 1, strings.Count(out, `id="theme-controller"`))
	assert.Equal(t, 1, strings.Count(out, anchorTag))
	assert.NotContains(t, out, "<script>alert")

	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)
	nodes := []*html.Node{doc}

	htmls := byTag(nodes, "html")
	require.Len(t, htmls, 1)
	assert.Equal(t, "dark", attr(htmls[0], "data-theme"))
	assert.Equal(t, "Media - CF-CMS", text(byTag(nodes, "title")[0]))

	var generator string
	for _, meta := range byTag(nodes, "meta") {
		if attr(meta, "name") == "generator" {
			generator = attr(meta, "content")
		}
	}
	assert.Equal(t, "Modern Dark 1.0.0", generator)

	links := byClass(nodes, "sidebar__link")
	require.Len(t, links, 6)
	assert.Equal(t, "/admin/media", attr(links[2], "href"))
	assert.Equal(t, "page", attr(links[2], "aria-current"))
	assert.Contains(t, attr(links[2], "class"), "sidebar__link--active")
	assert.Empty(t, attr(links[0], "aria-current"))
	assert.Equal(t, "/admin/seo", attr(links[5], "href"))
	assert.Contains(t, attr(links[5], "class"), "sidebar__link--plugin")
	assert.Equal(t, "SEO", text(links[5]))

	assert.Equal(t, "v2.1.0", text(byClass(nodes, "sidebar__version")[0]))
	assert.Equal(t, hostile, text(byClass(nodes, "header__name")[0]))
	assert.Equal(t, "ada@example.com", text(byClass(nodes, "header__email")[0]))
	assert.Len(t, byClass(nodes, "logo"), 1)

	content := byClass(nodes, "main-content")
	require.Len(t, content, 1)
	assert.Equal(t, "hi", text(byClass(content, "page")[0]))

	// the toggle ends up in the body, the theme in the head
	bodies := byTag(nodes, "body")
	require.Len(t, bodies, 1)
	controllers := byClass(bodies, "theme-controller")
	require.Len(t, controllers, 1)
	assert.Equal(t, "body", controllers[0].Parent.Data)

	heads := byTag(nodes, "head")
	require.Len(t, heads, 1)
	styles := byTag(heads, "style")
	require.Len(t, styles, 2)
	assert.Contains(t, text(styles[0]), ".sidebar")
	assert.Contains(t, text(styles[1]), "--color-primary: #3b82f6;")
	assert.Len(t, byTag(heads, "script"), 2)
}

func TestBaseLayoutOptions(t *testing.T) {
	t.Parallel()

	layout := adminkit.BaseLayout{
		Mode: adminkit.ModeLight,
		Menu: []adminkit.MenuItem{{Label: "Home", Path: "/"}},
		Logo: adminkit.LogoProps{Text: "Acme", Href: "/"},
	}
	out, err := layout.RenderLayout(context.Background(), adminkit.CoreLayoutData{
		LayoutData:      adminkit.LayoutData{CurrentPath: "/"},
		TemplateName:    "Custom",
		TemplateVersion: "0.1.0",
	})
	require.NoError(t, err)

	assert.Contains(t, out, `<html lang="en" data-theme="light">`)
	assert.Contains(t, out, `<meta name="generator" content="Custom 0.1.0">`)
	assert.Contains(t, out, "<title>Admin</title>")
	assert.Contains(t, out, string(adminkit.HeadSlot))
	assert.Contains(t, out, string(adminkit.BodyEndSlot))
	assert.NotContains(t, out, `class="sidebar__section"`)
	assert.NotContains(t, out, `class="header__user"`)

	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)
	links := byClass([]*html.Node{doc}, "sidebar__link")
	require.Len(t, links, 1)
	assert.Equal(t, "page", attr(links[0], "aria-current"))
	assert.Equal(t, "Acme", text(byClass([]*html.Node{doc}, "logo__text")[0]))
}
