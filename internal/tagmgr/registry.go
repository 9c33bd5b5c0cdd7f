package tagmgr

import (
	"fmt"
	"sync"
	"time"
)

// Registry holds registered tags keyed by name and remembers registration order
type Registry struct {
	entries map[string]*RegistryEntry
	values  map[string]string
	order   []string
	sealed  bool
	mu      sync.RWMutex
}

// NewRegistry creates a new, empty tag registry
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
		values:  make(map[string]string),
	}
}

// Register adds a tag to the registry
func (r *Registry) Register(tag Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tag == nil {
		return &TagError{
			Type:    ErrorValidationFailed,
			Message: "cannot register nil tag",
		}
	}

	name := tag.Name()
	if r.sealed {
		return &TagError{
			Type:    ErrorRegistrySealed,
			Tag:     name,
			Domain:  tag.Domain(),
			Message: fmt.Sprintf("registry is sealed, cannot register %s", name),
		}
	}

	if name == "" {
		return &TagError{
			Type:    ErrorValidationFailed,
			Domain:  tag.Domain(),
			Message: "tag name cannot be empty",
		}
	}

	if _, exists := r.entries[name]; exists {
		return &TagError{
			Type:    ErrorDuplicateRegistration,
			Tag:     name,
			Domain:  tag.Domain(),
			Message: fmt.Sprintf("tag already registered: %s", name),
		}
	}

	if owner, exists := r.values[tag.Value()]; exists {
		return &TagError{
			Type:    ErrorDuplicateRegistration,
			Tag:     name,
			Domain:  tag.Domain(),
			Message: fmt.Sprintf("tag value %s already used by %s", tag.Value(), owner),
		}
	}

	r.entries[name] = &RegistryEntry{
		Tag:          tag,
		RegisteredAt: time.Now(),
		Position:     len(r.order),
	}
	r.values[tag.Value()] = name
	r.order = append(r.order, name)
	return nil
}

// Seal makes the registry read-only. Sealing twice is a no-op.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sealed = true
}

// Sealed reports whether Seal has been called
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sealed
}

// Get retrieves a tag by name
func (r *Registry) Get(name string) (Tag, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[name]
	if !exists {
		return nil, false
	}
	return entry.Tag, true
}

// Lookup resolves a tag by name, failing with ErrUnknownTag when absent
func (r *Registry) Lookup(name string) (Tag, error) {
	tag, exists := r.Get(name)
	if !exists {
		return nil, &TagError{
			Type:    ErrorUnknownTag,
			Tag:     name,
			Message: fmt.Sprintf("unknown tag: %s", name),
		}
	}
	return tag, nil
}

// All returns every registered tag grouped by domain in Domains order,
// and by registration order within a domain. Tags in a domain outside
// Domains come last.
func (r *Registry) All() []Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]Tag, 0, len(r.order))
	seen := make(map[Domain]bool, len(domainOrder))
	for _, d := range domainOrder {
		seen[d] = true
		tags = r.appendDomain(tags, d)
	}
	for _, name := range r.order {
		if tag := r.entries[name].Tag; !seen[tag.Domain()] {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ListByDomain returns the tags of one domain in registration order
func (r *Registry) ListByDomain(domain Domain) []Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.appendDomain(nil, domain)
}

func (r *Registry) appendDomain(tags []Tag, domain Domain) []Tag {
	for _, name := range r.order {
		if tag := r.entries[name].Tag; tag.Domain() == domain {
			tags = append(tags, tag)
		}
	}
	return tags
}

// GetEntry retrieves a copy of a registry entry by tag name
func (r *Registry) GetEntry(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[name]
	if !exists {
		return nil, false
	}

	entryCopy := *entry
	return &entryCopy, true
}

// Count returns the number of registered tags
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Stats returns registry statistics
func (r *Registry) Stats() RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := RegistryStats{
		TotalTags:       len(r.entries),
		Sealed:          r.sealed,
		DomainBreakdown: make(map[Domain]int),
	}
	for _, entry := range r.entries {
		stats.DomainBreakdown[entry.Tag.Domain()]++
	}
	return stats
}

// RegistryStats provides statistics about the registry
type RegistryStats struct {
	TotalTags       int            `json:"total_tags"`
	Sealed          bool           `json:"sealed"`
	DomainBreakdown map[Domain]int `json:"domain_breakdown"`
}
