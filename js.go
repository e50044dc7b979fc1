package adminkit

import (
	"context"
	"crypto/sha256"
	"fmt"
	"html/template"
)

// JSEmbedder is implemented by Components that inline a script into the page.
// Layouts see every embedded script, concatenated, as .EmbeddedJS; Theme uses
// it to ship the theme bootstrap.
type JSEmbedder interface {
	// EmbedJS returns the script body, with no <script> wrapper.
	EmbedJS(context.Context) template.JS
}

// JSLinker is implemented by Components that load scripts by URL. Layouts see
// the URLs, each listed once, as .LinkedJS.
type JSLinker interface {
	LinkJS(context.Context) []string
}

// getComponentJSEmbeds is the script counterpart of getComponentCSSEmbeds.
func getComponentJSEmbeds(ctx context.Context, component Component) template.JS {
	var results template.JS
	seen := map[[sha256.Size]byte]struct{}{}
	for _, comp := range getRecursiveComponents(ctx, component) {
		embed, ok := comp.(JSEmbedder)
		if !ok {
			continue
		}
		script := embed.EmbedJS(ctx)
		if script == "" {
			continue
		}
		checksum := sha256.Sum256([]byte(script))
		if _, ok := seen[checksum]; ok {
			continue
		}
		seen[checksum] = struct{}{}
		results += template.JS(fmt.Sprintf("\n/* embedded JavaScript from %T */\n%s", comp, script)) // #nosec G203
	}
	return results
}

// getComponentJSLinks keeps the first occurrence of every URL, in the order
// Components are visited.
func getComponentJSLinks(ctx context.Context, component Component) []string {
	var results []string
	seen := map[string]struct{}{}
	for _, comp := range getRecursiveComponents(ctx, component) {
		link, ok := comp.(JSLinker)
		if !ok {
			continue
		}
		for _, source := range link.LinkJS(ctx) {
			if _, ok := seen[source]; ok {
				continue
			}
			results = append(results, source)
			seen[source] = struct{}{}
		}
	}
	return results
}
