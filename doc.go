// Package adminkit renders a themed admin dashboard on top of the
// html/template package.
//
// adminkit is organized around widgets, a theme, and a layout injector.
//
// Widgets are the pieces of the dashboard: metric cards and grids, analytics
// panels, quick action grids, activity lists, badges, and the logo. Each has
// a Render function that takes a props struct and returns a trusted
// template.HTML fragment, so widgets can be embedded in other widgets and in
// pages without being escaped again. Free text in props is always escaped;
// fields typed template.HTML or template.JS are trusted and embedded as-is.
// Widgets never fail. If a widget's template can't be rendered, the error is
// logged and the widget renders as nothing.
//
// The theme is a pair of palettes and the scales shared between them.
// ThemeCSS binds all of them to CSS variables, and every color a widget uses
// goes through one of those variables, so switching the document's
// data-theme attribute between "dark" and "light" reskins everything without
// rendering it again. ThemeScript switches it in the browser, remembering the
// visitor's choice.
//
// The layout injector wraps page content, like the Dashboard's, in a
// complete document rendered by a LayoutRenderer, then injects the theme
// into it. It can also inject the theme into documents rendered elsewhere.
// BaseLayout is a LayoutRenderer for sites without a layout of their own.
//
// Underneath, rendering is done with Components and Sites. A Component is
// some piece of the HTML document, and lists the templates it needs; a
// Renderable is a Component that can be executed on its own, as a page
// passed to Render or as a fragment passed to RenderFragment. Components can
// rely on other Components through UseComponents, and can embed CSS and
// JavaScript or link to JavaScript, which is collected from every Component
// a page uses. A Site provides the fs.FS the templates are read from, and a
// CachedSite keeps templates parsed between renders.
//
// Logging is done through a *slog.Logger attached to the context with
// LoggingContext. Renders and layout injection are traced with
// OpenTelemetry, using the global tracer provider.
package adminkit
