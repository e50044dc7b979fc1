package adminkit

import (
	"context"
	"html/template"
	"io/fs"
	"sync"
)

// Site supplies the templates Renderables are parsed from. Template paths
// returned by a Component's Templates method are resolved against the fs.FS
// returned by TemplateDir.
type Site interface {
	TemplateDir(ctx context.Context) fs.FS
}

// TemplateCacher is implemented by Sites that keep parsed templates between
// renders, keyed by each Renderable's Key. Everything rendered under one key
// must use the same templates.
type TemplateCacher interface {
	// GetCachedTemplate returns the template parsed for key, or nil if
	// nothing has been parsed for it yet.
	GetCachedTemplate(ctx context.Context, key string) *template.Template

	// SetCachedTemplate keeps tmpl for later renders under key.
	SetCachedTemplate(ctx context.Context, key string, tmpl *template.Template)
}

// ServerErrorPager is implemented by Sites that want their own page shown
// when Render fails, instead of a plain "Server error." message.
type ServerErrorPager interface {
	ServerErrorPage(ctx context.Context) Renderable
}

var (
	_ Site           = &CachedSite{}
	_ TemplateCacher = &CachedSite{}
)

// CachedSite is a Site and TemplateCacher over a fixed fs.FS. Embed it in a
// Site of your own to get template caching for free. Use NewCachedSite; the
// zero value has no cache to write to.
//
// Every widget renders against one shared CachedSite, so all methods are
// safe for concurrent use.
type CachedSite struct {
	mu        sync.RWMutex
	templates map[string]*template.Template

	dir fs.FS
}

// NewCachedSite returns a CachedSite reading templates from dir.
func NewCachedSite(dir fs.FS) *CachedSite {
	return &CachedSite{
		templates: map[string]*template.Template{},
		dir:       dir,
	}
}

func (s *CachedSite) GetCachedTemplate(_ context.Context, key string) *template.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.templates[key]
}

func (s *CachedSite) SetCachedTemplate(_ context.Context, key string, tmpl *template.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[key] = tmpl
}

// TemplateDir returns the fs.FS the CachedSite was created with.
func (s *CachedSite) TemplateDir(_ context.Context) fs.FS {
	return s.dir
}
