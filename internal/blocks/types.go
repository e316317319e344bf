package blocks

import (
	"strings"

	"github.com/google/uuid"
)

// Instance captures one unit of structured editor content: an opaque client
// identifier, a block kind, the attribute map, and any nested child blocks.
// Instances are treated as read-only by validation; instructions never mutate
// them.
type Instance struct {
	ClientID    uuid.UUID
	Name        string
	Attributes  map[string]any
	InnerBlocks []*Instance
}

// NewInstance builds an instance with a fresh random client identifier, the
// way an editor session would mint one.
func NewInstance(name string, attributes map[string]any, inner ...*Instance) *Instance {
	return &Instance{
		ClientID:    uuid.New(),
		Name:        strings.TrimSpace(name),
		Attributes:  attributes,
		InnerBlocks: inner,
	}
}

// Kind returns the trimmed block kind discriminator.
func (i *Instance) Kind() string {
	if i == nil {
		return ""
	}
	return strings.TrimSpace(i.Name)
}

// HasDescendantOfKind walks the inner-block tree depth-first and reports
// whether any nested block matches the kind, at any depth.
func (i *Instance) HasDescendantOfKind(kind string) bool {
	if i == nil {
		return false
	}
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return false
	}
	for _, child := range i.InnerBlocks {
		if child == nil {
			continue
		}
		if strings.EqualFold(child.Kind(), kind) {
			return true
		}
		if child.HasDescendantOfKind(kind) {
			return true
		}
	}
	return false
}

// Descendants returns every nested block depth-first. The receiver itself is
// not included.
func (i *Instance) Descendants() []*Instance {
	if i == nil {
		return nil
	}
	var out []*Instance
	for _, child := range i.InnerBlocks {
		if child == nil {
			continue
		}
		out = append(out, child)
		out = append(out, child.Descendants()...)
	}
	return out
}
