// Package plugin models the host's two registration hooks and resolves
// "prefix:argument" references to the registered loaders.
package plugin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/timvw/tmux-fragments/internal/fragment"
	"github.com/timvw/tmux-fragments/internal/model"
	telemetry "github.com/timvw/tmux-fragments/internal/otel"
	"github.com/timvw/tmux-fragments/internal/template"
)

// FragmentLoader turns an argument into one or more fragments.
type FragmentLoader func(ctx context.Context, argument string) ([]model.Fragment, error)

// TemplateLoader turns a name into a template.
type TemplateLoader func(name string) (model.Template, error)

// Registry holds registered loaders keyed by prefix.
type Registry struct {
	fragments map[string]FragmentLoader
	templates map[string]TemplateLoader
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fragments: make(map[string]FragmentLoader),
		templates: make(map[string]TemplateLoader),
	}
}

// RegisterFragmentLoader registers a fragment loader under prefix.
func (r *Registry) RegisterFragmentLoader(prefix string, fn FragmentLoader) {
	r.fragments[prefix] = fn
}

// RegisterTemplateLoader registers a template loader under prefix.
func (r *Registry) RegisterTemplateLoader(prefix string, fn TemplateLoader) {
	r.templates[prefix] = fn
}

// FragmentPrefixes returns the registered fragment prefixes, sorted.
func (r *Registry) FragmentPrefixes() []string {
	return sortedKeys(r.fragments)
}

// TemplatePrefixes returns the registered template prefixes, sorted.
func (r *Registry) TemplatePrefixes() []string {
	return sortedKeys(r.templates)
}

// LoadFragments resolves a reference like "tmux:all:50". Everything after
// the first ':' is passed to the loader untouched.
func (r *Registry) LoadFragments(ctx context.Context, ref string) ([]model.Fragment, error) {
	prefix, arg := splitRef(ref)
	fn, ok := r.fragments[prefix]
	if !ok {
		return nil, fmt.Errorf("no fragment loader registered for prefix %q (have: %s)",
			prefix, strings.Join(r.FragmentPrefixes(), ", "))
	}
	return fn(ctx, arg)
}

// LoadTemplate resolves a reference like "shassist:command".
func (r *Registry) LoadTemplate(ref string) (model.Template, error) {
	prefix, arg := splitRef(ref)
	fn, ok := r.templates[prefix]
	if !ok {
		return model.Template{}, fmt.Errorf("no template loader registered for prefix %q (have: %s)",
			prefix, strings.Join(r.TemplatePrefixes(), ", "))
	}
	return fn(arg)
}

// Register installs the tmux fragment loader and the shassist template
// loader. The fragment loader records its own metrics; template loads are
// recorded here. m may be nil.
func Register(r *Registry, b *fragment.Builder, m *telemetry.Metrics) {
	r.RegisterFragmentLoader(fragment.Prefix, b.Load)
	r.RegisterTemplateLoader(template.Prefix, func(name string) (model.Template, error) {
		tpl, err := template.Load(name)
		mode, outcome := strings.TrimPrefix(tpl.Name, template.Prefix+":"), "ok"
		if err != nil {
			mode, outcome = "unknown", "error"
		}
		m.RecordLoad(context.Background(), template.Prefix, mode, outcome)
		return tpl, err
	})
}

func splitRef(ref string) (prefix, arg string) {
	prefix, arg, _ = strings.Cut(ref, ":")
	return prefix, arg
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
