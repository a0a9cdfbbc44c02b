package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// renderers hands out glamour renderers, one sync.Pool per distinct
// Options value. A TermRenderer is not safe for concurrent use, so each
// caller holds its own until release.
type renderers struct {
	mu    sync.Mutex
	pools map[Options]*sync.Pool
}

var shared = &renderers{pools: make(map[Options]*sync.Pool)}

func (r *renderers) pool(opts Options) *sync.Pool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pools[opts]
	if !ok {
		p = &sync.Pool{}
		r.pools[opts] = p
	}
	return p
}

// acquire returns an idle renderer for opts or builds a new one
func (r *renderers) acquire(opts Options) (*glamour.TermRenderer, error) {
	if tr, ok := r.pool(opts).Get().(*glamour.TermRenderer); ok {
		return tr, nil
	}
	return newRenderer(opts)
}

func (r *renderers) release(opts Options, tr *glamour.TermRenderer) {
	if tr != nil {
		r.pool(opts).Put(tr)
	}
}

// newRenderer builds a TermRenderer for opts. Style may be a standard
// glamour style name (light, dark, notty, ...) or a JSON style path.
func newRenderer(opts Options) (*glamour.TermRenderer, error) {
	ropts := []glamour.TermRendererOption{
		glamour.WithStylePath(opts.Style),
		glamour.WithWordWrap(opts.Width),
		glamour.WithTableWrap(opts.TableWrap),
		glamour.WithInlineTableLinks(opts.InlineTableLinks),
	}
	if opts.EnableEmoji {
		ropts = append(ropts, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		ropts = append(ropts, glamour.WithPreservedNewLines())
	}
	return glamour.NewTermRenderer(ropts...)
}

// ClearCache drops every idle renderer.
func ClearCache() {
	shared.mu.Lock()
	shared.pools = make(map[Options]*sync.Pool)
	shared.mu.Unlock()
}

// CacheSize returns how many distinct option sets have a pool.
func CacheSize() int {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	return len(shared.pools)
}
