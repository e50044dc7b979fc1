package adminkit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"maps"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

var (
	// ErrNoTemplatePath is returned when a template path is needed, but
	// none are supplied.
	ErrNoTemplatePath = errors.New("need at least one template path")

	// ErrTemplatePatternMatchesNoFiles is returned when a template path is
	// a pattern, but that pattern doesn't match any files.
	ErrTemplatePatternMatchesNoFiles = errors.New("pattern matches no files")
)

// Component is an interface for a UI component that can be rendered to HTML.
type Component interface {
	// Templates returns a list of filepaths to html/template contents
	// that need to be parsed before the component can be rendered.
	Templates(context.Context) []string
}

// ComponentUser is an interface that a Component can optionally implement to
// list the Components that it relies upon. Their templates, function maps,
// and embedded or linked resources are collected along with the Component's
// own.
type ComponentUser interface {
	// UseComponents returns the Components that this Component relies on.
	UseComponents(context.Context) []Component
}

// FuncMapExtender is an interface that Components and Sites can fulfill to
// add to the map of functions available to templates when rendering.
type FuncMapExtender interface {
	// FuncMap returns an html/template.FuncMap containing all the
	// functions that the Component is adding to the FuncMap.
	FuncMap(context.Context) template.FuncMap
}

// Renderable is a Component that can be executed on its own, either as a
// whole page passed to Render or as a fragment passed to RenderFragment.
type Renderable interface {
	Component

	// Key is a unique key to use when caching this Renderable's parsed
	// templates. A good key is consistent, but unique per Renderable.
	Key(context.Context) string

	// ExecutedTemplate is the name of the template that gets executed.
	// For pages this is usually the layout's base template; for widgets it
	// is the template the widget defines.
	ExecutedTemplate(context.Context) string
}

// RenderData is the data that is passed to a page when rendering it with
// Render.
type RenderData[SiteType Site, PageType Renderable] struct {
	// Site is the Site the page is being rendered for.
	Site SiteType

	// Page is the Renderable being rendered.
	Page PageType

	// EmbeddedJS is the concatenated EmbedJS output of the page and every
	// Component it uses.
	EmbeddedJS template.JS

	// EmbeddedCSS is the concatenated EmbedCSS output of the page and
	// every Component it uses.
	EmbeddedCSS template.CSS

	// LinkedJS is the deduplicated LinkJS output of the page and every
	// Component it uses, in the order they were found.
	LinkedJS []string
}

// builtinFuncs are available to every template, before any Site or Component
// function maps are merged in.
var builtinFuncs = template.FuncMap{
	// text escapes free text for element content. It returns template.HTML
	// so html/template passes the already-escaped result through untouched.
	"text": func(s string) template.HTML {
		return template.HTML(Escape(s)) // #nosec G203
	},
	"join": strings.Join,
}

// Render renders the passed Renderable to the Writer. If it can't, a server
// error page is written instead. If the Site implements ServerErrorPager, that
// will be rendered; if not, a simple text page indicating a server error will
// be written.
func Render[SiteType Site, PageType Renderable](ctx context.Context, out io.Writer, site SiteType, page PageType) {
	log := logger(ctx, "render")
	defer func() {
		if closer, ok := out.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				log.ErrorContext(ctx, "error closing response writer", "error", err)
			}
		}
	}()

	err := basicRender(ctx, out, site, page)
	if err == nil {
		return
	}
	log.ErrorContext(ctx, "error rendering page", "error", err, "page", fmt.Sprintf("%T", page))

	if pager, ok := Site(site).(ServerErrorPager); ok {
		err = basicRender(ctx, out, site, pager.ServerErrorPage(ctx))
		if err != nil {
			log.ErrorContext(ctx, "error rendering server error page", "error", err)
		}
		return
	}

	_, err = out.Write([]byte("Server error."))
	if err != nil {
		log.ErrorContext(ctx, "error writing server error message", "error", err)
	}
}

func basicRender[SiteType Site, PageType Renderable](ctx context.Context, output io.Writer, site SiteType, page PageType) (err error) {
	executed := page.ExecutedTemplate(ctx)
	ctx, span := startSpan(ctx, "adminkit.Render",
		attribute.String("adminkit.key", page.Key(ctx)),
		attribute.String("adminkit.template", executed))
	defer func() { endSpan(span, err) }()

	tmpl, err := getTemplate(ctx, site, page)
	if err != nil {
		return err
	}

	data := RenderData[SiteType, PageType]{
		Site:        site,
		Page:        page,
		EmbeddedJS:  getComponentJSEmbeds(ctx, page),
		EmbeddedCSS: getComponentCSSEmbeds(ctx, page),
		LinkedJS:    getComponentJSLinks(ctx, page),
	}

	// buffer the output, so a page that fails halfway through doesn't
	// leave half a page in front of the server error page
	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, executed, data)
	if err != nil {
		return fmt.Errorf("error executing template %q for %T: %w", executed, page, err)
	}
	_, err = buf.WriteTo(output)
	if err != nil {
		return fmt.Errorf("error writing %T: %w", page, err)
	}
	return nil
}

// RenderFragment executes the Renderable's template with the Renderable
// itself as the template's data, and returns the result as a trusted HTML
// fragment that can be embedded in other templates without being escaped
// again.
func RenderFragment(ctx context.Context, site Site, fragment Renderable) (_ template.HTML, err error) {
	executed := fragment.ExecutedTemplate(ctx)
	ctx, span := startSpan(ctx, "adminkit.RenderFragment",
		attribute.String("adminkit.key", fragment.Key(ctx)),
		attribute.String("adminkit.template", executed))
	defer func() { endSpan(span, err) }()

	tmpl, err := getTemplate(ctx, site, fragment)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	err = tmpl.ExecuteTemplate(&out, executed, fragment)
	if err != nil {
		return "", fmt.Errorf("error executing template %q for %T: %w", executed, fragment, err)
	}
	return template.HTML(out.String()), nil // #nosec G203
}

func getTemplate(ctx context.Context, site Site, page Renderable) (*template.Template, error) {
	key := page.Key(ctx)
	if cache, ok := site.(TemplateCacher); ok {
		cached := cache.GetCachedTemplate(ctx, key)
		if cached != nil {
			return cached, nil
		}
	}
	tmplPaths := getComponentTemplatePaths(ctx, page)
	if len(tmplPaths) < 1 {
		return nil, fmt.Errorf("error rendering %T: %w", page, ErrNoTemplatePath)
	}
	funcMap := getComponentFuncMap(ctx, site, page)
	parsed, err := parseTemplates(site.TemplateDir(ctx), funcMap, tmplPaths...)
	if err != nil {
		return nil, fmt.Errorf("error parsing templates %v for %T: %w", tmplPaths, page, err)
	}
	if cache, ok := site.(TemplateCacher); ok {
		cache.SetCachedTemplate(ctx, key, parsed)
	}
	return parsed, nil
}

func getRecursiveComponents(ctx context.Context, component Component) []Component {
	results := []Component{component}

	if uses, ok := component.(ComponentUser); ok {
		for _, child := range uses.UseComponents(ctx) {
			results = append(results, getRecursiveComponents(ctx, child)...)
		}
	}
	return results
}

// getComponentTemplatePaths lists every template path component and the
// Components it uses need, each once, in the order they were found.
func getComponentTemplatePaths(ctx context.Context, component Component) []string {
	var paths []string
	for _, comp := range getRecursiveComponents(ctx, component) {
		for _, path := range comp.Templates(ctx) {
			if !slices.Contains(paths, path) {
				paths = append(paths, path)
			}
		}
	}
	return paths
}

func getComponentFuncMap(ctx context.Context, site Site, component Component) template.FuncMap {
	results := mergeFuncMaps(template.FuncMap{}, builtinFuncs)
	if fm, ok := site.(FuncMapExtender); ok {
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	for _, comp := range getRecursiveComponents(ctx, component) {
		fm, ok := comp.(FuncMapExtender)
		if !ok {
			continue
		}
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	return results
}

func parseTemplates(fsys fs.FS, funcs template.FuncMap, patterns ...string) (*template.Template, error) {
	var files []string
	for _, pattern := range patterns {
		list, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("error listing files for %q: %w", pattern, err)
		}
		if len(list) < 1 {
			return nil, fmt.Errorf("error parsing %q: %w", pattern, ErrTemplatePatternMatchesNoFiles)
		}
		files = append(files, list...)
	}
	if len(files) < 1 {
		return nil, ErrNoTemplatePath
	}
	tmpl := template.New("").Funcs(funcs)
	for _, file := range files {
		contents, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", file, err)
		}
		_, err = tmpl.New(file).Parse(string(contents))
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", file, err)
		}
	}
	return tmpl, nil
}

// mergeFuncMaps returns a new FuncMap holding base's functions and then
// override's, so override wins on conflicting names.
func mergeFuncMaps(base, override template.FuncMap) template.FuncMap {
	res := make(template.FuncMap, len(base)+len(override))
	maps.Copy(res, base)
	maps.Copy(res, override)
	return res
}
