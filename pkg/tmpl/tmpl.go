// Package tmpl carries the static boilerplate blocks of the document
// format. The emitter only needs get-by-name text retrieval, so the
// blocks are compiled in with embed and handed out verbatim. The one
// placeholder (the chain count) is substituted by the caller.
package tmpl

import (
	"embed"
	"fmt"
)

//go:embed cif/*.txt
var blocks embed.FS

// Get returns the named template block.
func Get(name string) (string, error) {
	b, err := blocks.ReadFile("cif/" + name + ".txt")
	if err != nil {
		return "", fmt.Errorf("no template block %q: %w", name, err)
	}
	return string(b), nil
}
