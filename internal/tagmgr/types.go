package tagmgr

import (
	"errors"
	"time"
)

// Tag is a named, immutable dispatch key
type Tag interface {
	// Name returns the unique identifier for this tag
	Name() string

	// Value returns the string matched against incoming actions. It always
	// equals Name.
	Value() string

	// Domain returns the part of the application the tag belongs to
	Domain() Domain

	// Description returns human-readable documentation
	Description() string

	// Metadata returns additional tag information
	Metadata() map[string]interface{}
}

// TypedTag is the only Tag implementation. Its fields are unexported so a tag
// cannot be altered once defined.
type TypedTag struct {
	name        string
	domain      Domain
	description string
	metadata    map[string]interface{}
}

var _ Tag = (*TypedTag)(nil)

// TagConfig holds configuration for defining a new tag
type TagConfig struct {
	Name        string                 `json:"name"`
	Domain      Domain                 `json:"domain"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// Domain groups tags by the slice of application state they touch
type Domain string

const (
	DomainSession      Domain = "session"       // sign in/out, registration
	DomainSocket       Domain = "socket"        // real-time connection
	DomainBoards       Domain = "boards"        // the boards collection
	DomainCurrentBoard Domain = "current_board" // the board being viewed
	DomainLists        Domain = "lists"
	DomainCards        Domain = "cards"
)

var domainOrder = []Domain{
	DomainSession,
	DomainSocket,
	DomainBoards,
	DomainCurrentBoard,
	DomainLists,
	DomainCards,
}

// Domains returns every known domain in declaration order
func Domains() []Domain {
	out := make([]Domain, len(domainOrder))
	copy(out, domainOrder)
	return out
}

// ParseDomain converts a string into a Domain
func ParseDomain(s string) (Domain, error) {
	for _, d := range domainOrder {
		if string(d) == s {
			return d, nil
		}
	}
	return "", &TagError{
		Type:    ErrorInvalidDomain,
		Domain:  Domain(s),
		Message: "unknown domain: " + s,
	}
}

// RegistryEntry is a tag plus bookkeeping recorded at registration
type RegistryEntry struct {
	Tag          Tag       `json:"tag"`
	RegisteredAt time.Time `json:"registered_at"`
	Position     int       `json:"position"`
}

// TagError represents structured errors in the tag registry
type TagError struct {
	Type    ErrorType `json:"type"`
	Tag     string    `json:"tag"`
	Domain  Domain    `json:"domain"`
	Message string    `json:"message"`
	Cause   error     `json:"cause,omitempty"`
}

// ErrorType defines the kind of registry error
type ErrorType string

const (
	ErrorUnknownTag            ErrorType = "unknown_tag"
	ErrorDuplicateRegistration ErrorType = "duplicate_registration"
	ErrorValidationFailed      ErrorType = "validation_failed"
	ErrorInvalidDomain         ErrorType = "invalid_domain"
	ErrorRegistrySealed        ErrorType = "registry_sealed"
)

// ErrUnknownTag matches any TagError of type ErrorUnknownTag with errors.Is.
var ErrUnknownTag = errors.New("unknown tag")

// Error implements the error interface
func (e *TagError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *TagError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for this error's type
func (e *TagError) Is(target error) bool {
	return target == ErrUnknownTag && e.Type == ErrorUnknownTag
}

// Define creates a new typed tag. The value of the tag is its name.
func Define(config TagConfig) Tag {
	var metadata map[string]interface{}
	if len(config.Metadata) > 0 {
		metadata = copyMap(config.Metadata)
	}

	return &TypedTag{
		name:        config.Name,
		domain:      config.Domain,
		description: config.Description,
		metadata:    metadata,
	}
}

// Name returns the tag's unique identifier
func (t *TypedTag) Name() string {
	return t.name
}

// Value returns the dispatch value, which is the name
func (t *TypedTag) Value() string {
	return t.name
}

// Domain returns the owning domain
func (t *TypedTag) Domain() Domain {
	return t.domain
}

// Description returns human-readable documentation
func (t *TypedTag) Description() string {
	return t.description
}

// Metadata returns a copy of the tag's metadata
func (t *TypedTag) Metadata() map[string]interface{} {
	return copyMap(t.metadata)
}

// copyMap deep-copies metadata so neither the caller's config nor a returned
// map shares slices or maps with the tag.
func copyMap(m map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(m))
	for k, v := range m {
		result[k] = copyValue(v)
	}
	return result
}

func copyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case []string:
		return append([]string(nil), val...)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	case map[string]interface{}:
		return copyMap(val)
	case map[string]string:
		out := make(map[string]string, len(val))
		for k, s := range val {
			out[k] = s
		}
		return out
	default:
		return v
	}
}

// String returns the tag name for easy debugging
func (t *TypedTag) String() string {
	return t.name
}
