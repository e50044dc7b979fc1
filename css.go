package adminkit

import (
	"context"
	"crypto/sha256"
	"fmt"
	"html/template"
)

// CSSEmbedder is implemented by Components that inline a stylesheet into the
// page. Layouts see every embedded stylesheet, concatenated, as .EmbeddedCSS.
type CSSEmbedder interface {
	// EmbedCSS returns the stylesheet, with no <style> wrapper.
	EmbedCSS(context.Context) template.CSS
}

// getComponentCSSEmbeds concatenates the EmbedCSS output of component and
// every Component it uses. Identical stylesheets are only included once, no
// matter how many Components embed them.
func getComponentCSSEmbeds(ctx context.Context, component Component) template.CSS {
	var results template.CSS
	seen := map[[sha256.Size]byte]struct{}{}
	for _, comp := range getRecursiveComponents(ctx, component) {
		embed, ok := comp.(CSSEmbedder)
		if !ok {
			continue
		}
		css := embed.EmbedCSS(ctx)
		if css == "" {
			continue
		}
		checksum := sha256.Sum256([]byte(css))
		if _, ok := seen[checksum]; ok {
			continue
		}
		seen[checksum] = struct{}{}
		results += template.CSS(fmt.Sprintf("\n/* embedded CSS from %T */\n%s", comp, css)) // #nosec G203
	}
	return results
}
