package tagmgr

import (
	"fmt"
	"sync"
)

// Manager combines a registry with validation. It is the entry point the rest
// of the application uses.
type Manager struct {
	registry  *Registry
	validator *Validator
}

// NewManager creates a new tag manager with an empty registry
func NewManager() *Manager {
	return &Manager{
		registry:  NewRegistry(),
		validator: NewValidator(),
	}
}

// Register validates a tag and adds it to the registry
func (m *Manager) Register(tag Tag) error {
	if err := m.validator.ValidateDefinition(tag); err != nil {
		tagErr := &TagError{
			Type:    ErrorValidationFailed,
			Message: "tag validation failed",
			Cause:   err,
		}
		if tag != nil {
			tagErr.Tag = tag.Name()
			tagErr.Domain = tag.Domain()
		}
		return tagErr
	}

	return m.registry.Register(tag)
}

// RegisterAll registers tags in order, stopping at the first failure
func (m *Manager) RegisterAll(tags ...Tag) error {
	for _, tag := range tags {
		if err := m.Register(tag); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister registers a tag and panics on error (for static initialization)
func (m *Manager) MustRegister(tag Tag) {
	if err := m.Register(tag); err != nil {
		name := "<nil>"
		if tag != nil {
			name = tag.Name()
		}
		panic(fmt.Sprintf("failed to register tag %s: %v", name, err))
	}
}

// Seal freezes the registry
func (m *Manager) Seal() {
	m.registry.Seal()
}

// Get retrieves a tag by name
func (m *Manager) Get(name string) (Tag, bool) {
	return m.registry.Get(name)
}

// GetEntry retrieves a copy of the registry entry for a tag name
func (m *Manager) GetEntry(name string) (*RegistryEntry, bool) {
	return m.registry.GetEntry(name)
}

// Lookup resolves a tag by name, failing with ErrUnknownTag when absent
func (m *Manager) Lookup(name string) (Tag, error) {
	return m.registry.Lookup(name)
}

// Has reports whether tag is the registered tag with its name
func (m *Manager) Has(tag Tag) bool {
	if tag == nil {
		return false
	}
	registered, ok := m.registry.Get(tag.Name())
	return ok && registered == tag
}

// All returns every registered tag
func (m *Manager) All() []Tag {
	return m.registry.All()
}

// ListByDomain returns the tags of a single domain
func (m *Manager) ListByDomain(domain Domain) []Tag {
	return m.registry.ListByDomain(domain)
}

// Count returns the total number of registered tags
func (m *Manager) Count() int {
	return m.registry.Count()
}

// Validate checks a tag definition without registering it
func (m *Manager) Validate(tag Tag) error {
	return m.validator.ValidateDefinition(tag)
}

// ValidateTagName checks if a name is well formed without creating a tag
func (m *Manager) ValidateTagName(name string) error {
	return m.validator.ValidateName(name)
}

// Stats returns registry statistics
func (m *Manager) Stats() RegistryStats {
	return m.registry.Stats()
}

// Global manager instance
var (
	defaultManager     *Manager
	defaultManagerOnce sync.Once
)

// Default returns the default global manager
func Default() *Manager {
	defaultManagerOnce.Do(func() {
		defaultManager = NewManager()
	})
	return defaultManager
}
