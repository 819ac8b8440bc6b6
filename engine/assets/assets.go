// Package assets resolves content paths against the game's asset base.
package assets

import (
	"path"
	"strings"
)

// Resolver prefixes relative asset paths with a base path. Absolute URLs
// and rooted paths pass through unchanged.
type Resolver struct {
	Base string
}

// Resolve returns the effective path for an asset reference.
func (r *Resolver) Resolve(p string) string {
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") || strings.HasPrefix(p, "/") {
		return p
	}
	if r.Base == "" {
		return p
	}
	if strings.HasPrefix(r.Base, "http://") || strings.HasPrefix(r.Base, "https://") {
		return strings.TrimSuffix(r.Base, "/") + "/" + p
	}
	return path.Join(r.Base, p)
}
