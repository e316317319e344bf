package gallery

import (
	"sort"
	"strings"
	"sync"
)

// Document models the attribute surface of the embedding environment's
// document element. The gallery owns exactly one mutation against it: the
// writing-direction attribute the toggle flips. Hosts embedding the gallery
// can read the attributes back when composing the final page.
type Document struct {
	mu         sync.RWMutex
	attributes map[string]string
}

// NewDocument constructs an empty document.
func NewDocument() *Document {
	return &Document{attributes: make(map[string]string)}
}

// SetAttribute writes an attribute. Setting an empty value removes it, the
// way removeAttribute would.
func (d *Document) SetAttribute(name, value string) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.attributes == nil {
		d.attributes = make(map[string]string)
	}
	if value == "" {
		delete(d.attributes, name)
		return
	}
	d.attributes[name] = value
}

// Attribute reads an attribute.
func (d *Document) Attribute(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	value, ok := d.attributes[strings.TrimSpace(strings.ToLower(name))]
	return value, ok
}

// AttributeNames returns the set attribute names in sorted order.
func (d *Document) AttributeNames() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.attributes))
	for name := range d.attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
