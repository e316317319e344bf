package instructions

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-slug"

	"github.com/almanaclabs/yoastseo/internal/blocks"
	"github.com/almanaclabs/yoastseo/internal/logging"
	"github.com/almanaclabs/yoastseo/pkg/interfaces"
)

// Registry is an explicit instruction table built once at startup and passed
// by reference to whatever consumes it. There is no import-time registration:
// hosts construct a registry, register instructions, and hand it to the
// editor integration.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Instruction
	schemas map[string]map[string]any
	logger  interfaces.Logger
}

// NewRegistry constructs an empty registry. A nil logger is replaced with the
// no-op logger.
func NewRegistry(logger interfaces.Logger) *Registry {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Registry{
		entries: make(map[string]Instruction),
		schemas: make(map[string]map[string]any),
		logger:  logger,
	}
}

// Register adds an instruction under its canonical key. Registering a second
// instruction with the same key replaces the first.
func (r *Registry) Register(instruction Instruction) error {
	if instruction == nil {
		return wrapRegistrationError(ErrNilInstruction)
	}
	key := canonicalKey(instruction.Key())
	if key == "" {
		return wrapRegistrationError(ErrEmptyKey)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string]Instruction)
	}
	if _, exists := r.entries[key]; exists {
		r.logger.Debug("replacing instruction", "key", key)
	}
	r.entries[key] = instruction
	return nil
}

// RegisterSchema attaches an attribute schema to a block kind. Blocks of that
// kind validate their attributes against the schema before their instruction
// runs. A schema that normalizes to nothing is a no-op.
func (r *Registry) RegisterSchema(kind string, schema map[string]any) error {
	key := canonicalKey(kind)
	if key == "" {
		return wrapRegistrationError(ErrEmptyKey)
	}
	if blocks.NormalizeSchema(schema) == nil {
		return nil
	}
	if err := blocks.ValidateSchema(schema); err != nil {
		return wrapSchemaError(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.schemas == nil {
		r.schemas = make(map[string]map[string]any)
	}
	r.schemas[key] = schema
	return nil
}

func (r *Registry) schemaFor(kind string) (map[string]any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schema, ok := r.schemas[canonicalKey(kind)]
	return schema, ok
}

// Lookup resolves an instruction by key. Keys are canonicalized, so "Title"
// and "title" resolve the same entry.
func (r *Registry) Lookup(key string) (Instruction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	instruction, ok := r.entries[canonicalKey(key)]
	return instruction, ok
}

// Keys returns the registered canonical keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ValidateBlock dispatches a block to the instruction registered for its
// kind. Blocks whose kind has no instruction yield a single skipped result:
// unknown kinds are not validatable, which is distinct from valid.
func (r *Registry) ValidateBlock(subject *blocks.Instance, locale string) blocks.ValidationResult {
	kind := subject.Kind()
	if schema, ok := r.schemaFor(kind); ok {
		if err := blocks.ValidateAttributes(schema, subject.Attributes); err != nil {
			logging.WithValidationContext(r.logger, kind, kind, locale).
				Debug("block attributes failed schema validation", "error", err.Error())
			return blocks.Failure(subject, blocks.StatusInvalid, blocks.PresenceRequired, err.Error())
		}
	}

	instruction, ok := r.Lookup(kind)
	if !ok {
		return blocks.Skipped(subject)
	}
	result := instruction.Validate(subject, locale)
	if !result.OK() {
		logging.WithValidationContext(r.logger, subject.Kind(), instruction.Key(), locale).
			Debug("block failed validation", "status", string(result.Status))
	}
	return result
}

// ValidateTree validates the subject and every descendant depth-first,
// returning one result per block in traversal order.
func (r *Registry) ValidateTree(subject *blocks.Instance, locale string) []blocks.ValidationResult {
	if subject == nil {
		return nil
	}
	results := []blocks.ValidationResult{r.ValidateBlock(subject, locale)}
	for _, child := range subject.Descendants() {
		results = append(results, r.ValidateBlock(child, locale))
	}
	return results
}

// DefaultRegistry builds the standard instruction table with the title check
// registered under "title".
func DefaultRegistry(titleOpts TitleOptions, translator interfaces.Translator, logger interfaces.Logger) (*Registry, error) {
	registry := NewRegistry(logger)

	title, err := NewTitle(titleOpts, translator)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(title); err != nil {
		return nil, err
	}

	return registry, nil
}

// canonicalKey normalizes registry keys. Namespaced block kinds keep only the
// final segment ("yoast/title" -> "title") so instruction keys match the bare
// kind the editor reports. Slug normalization handles case and punctuation.
func canonicalKey(input string) string {
	candidate := strings.TrimSpace(input)
	if idx := strings.LastIndexByte(candidate, '/'); idx >= 0 {
		candidate = candidate[idx+1:]
	}
	if candidate == "" {
		return ""
	}
	normalized, err := slug.Normalize(candidate)
	if err != nil || normalized == "" {
		return strings.ToLower(candidate)
	}
	return normalized
}
