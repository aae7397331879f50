// Package render maps domain records to HTML fragments and swaps them into a
// container. Mapping is pure; only Container.Replace has side effects.
package render

import (
	"html/template"
	"strings"
	"sync"
)

// FragmentFunc renders one record
type FragmentFunc[T any] func(T) template.HTML

// Container is a page region whose content is replaced as a whole
type Container interface {
	Replace(fragments ...template.HTML)
}

// Fragments renders records in input order. An empty input yields exactly
// one placeholder fragment.
func Fragments[T any](records []T, fn FragmentFunc[T], placeholder template.HTML) []template.HTML {
	if len(records) == 0 {
		return []template.HTML{placeholder}
	}

	out := make([]template.HTML, 0, len(records))
	for _, record := range records {
		out = append(out, fn(record))
	}
	return out
}

// List clears c and fills it with the rendered records
func List[T any](c Container, records []T, fn FragmentFunc[T], placeholder template.HTML) {
	c.Replace(Fragments(records, fn, placeholder)...)
}

// Region is an in-memory Container. The content after any call depends only
// on the latest Replace.
type Region struct {
	mu        sync.RWMutex
	id        string
	fragments []template.HTML
}

func NewRegion(id string) *Region {
	return &Region{id: id}
}

func (r *Region) ID() string {
	return r.id
}

func (r *Region) Replace(fragments ...template.HTML) {
	next := make([]template.HTML, len(fragments))
	copy(next, fragments)

	r.mu.Lock()
	r.fragments = next
	r.mu.Unlock()
}

// Fragments returns a copy of the current content
func (r *Region) Fragments() []template.HTML {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]template.HTML, len(r.fragments))
	copy(out, r.fragments)
	return out
}

func (r *Region) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fragments)
}

// HTML concatenates the current fragments
func (r *Region) HTML() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	for _, f := range r.fragments {
		b.WriteString(string(f))
	}
	return b.String()
}
