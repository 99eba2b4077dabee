package render

import (
	"fmt"

	"github.com/paramveer-prakash/career-sub001/internal/domain"
	"github.com/paramveer-prakash/career-sub001/internal/model"
)

// Renderer turns a resume into a complete HTML document.
type Renderer interface {
	Render(r *model.Resume) (string, error)
}

// Template is the public description of a registered template.
type Template struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Entry pairs template metadata with its renderer.
type Entry struct {
	Template
	Renderer Renderer
}

// Registry maps template keys to renderers. It is built once and never
// modified afterwards, so it is safe for concurrent use.
type Registry struct {
	order   []Template
	entries map[string]Entry
}

// NewRegistry builds a registry from entries, keeping their order for
// listing. Keys must be unique and non-empty.
func NewRegistry(entries ...Entry) (*Registry, error) {
	reg := &Registry{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("registry: empty template key")
		}
		if e.Renderer == nil {
			return nil, fmt.Errorf("registry: template %q has no renderer", e.Key)
		}
		if _, dup := reg.entries[e.Key]; dup {
			return nil, fmt.Errorf("registry: duplicate template key %q", e.Key)
		}
		reg.entries[e.Key] = e
		reg.order = append(reg.order, e.Template)
	}
	return reg, nil
}

// List returns template metadata in registration order.
func (r *Registry) List() []Template {
	out := make([]Template, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Has(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Render renders res with the template registered under key. Unknown keys
// yield domain.ErrTemplateNotFound; there is no default template.
func (r *Registry) Render(key string, res *model.Resume) (string, error) {
	e, ok := r.entries[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, key)
	}
	return e.Renderer.Render(res)
}

// Subset returns a registry restricted to keys, in the given order. Every
// key must exist in r.
func (r *Registry) Subset(keys ...string) (*Registry, error) {
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		e, ok := r.entries[k]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, k)
		}
		entries = append(entries, e)
	}
	return NewRegistry(entries...)
}
