package tagmgr

import (
	"fmt"
	"regexp"
	"strings"
)

const maxNameLength = 100

// domainPrefixes lists the name prefixes each domain uses. A domain without
// an entry accepts any well-formed name.
var domainPrefixes = map[Domain][]string{
	DomainSocket:       {"SOCKET_"},
	DomainBoards:       {"BOARDS_"},
	DomainCurrentBoard: {"CURRENT_BOARD_"},
	DomainLists:        {"LISTS_"},
	DomainCards:        {"CARD_", "CURRENT_CARD_"},
}

// Validator checks tag definitions against the naming convention
type Validator struct {
	namePattern *regexp.Regexp
}

// NewValidator creates a new tag validator
func NewValidator() *Validator {
	// UPPER_SNAKE_CASE: SOCKET_CONNECTED, CURRENT_BOARD_EDIT_CARD
	return &Validator{
		namePattern: regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`),
	}
}

// ValidateDefinition validates a tag definition
func (v *Validator) ValidateDefinition(tag Tag) error {
	if tag == nil {
		return fmt.Errorf("tag cannot be nil")
	}

	if err := v.ValidateName(tag.Name()); err != nil {
		return fmt.Errorf("invalid tag name: %w", err)
	}

	if tag.Value() != tag.Name() {
		return fmt.Errorf("tag value %q must equal its name %q", tag.Value(), tag.Name())
	}

	if strings.TrimSpace(tag.Description()) == "" {
		return fmt.Errorf("tag description cannot be empty")
	}

	if _, err := ParseDomain(string(tag.Domain())); err != nil {
		return err
	}

	if err := v.validatePrefix(tag); err != nil {
		return fmt.Errorf("%s tag validation failed: %w", tag.Domain(), err)
	}

	return nil
}

// ValidateName checks if a tag name follows the naming convention
func (v *Validator) ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if len(name) > maxNameLength {
		return fmt.Errorf("name too long (max %d characters)", maxNameLength)
	}

	if !v.namePattern.MatchString(name) {
		return fmt.Errorf("name must be UPPER_SNAKE_CASE (uppercase, digits, single underscores)")
	}

	return nil
}

func (v *Validator) validatePrefix(tag Tag) error {
	prefixes, ok := domainPrefixes[tag.Domain()]
	if !ok {
		return nil
	}

	for _, prefix := range prefixes {
		if strings.HasPrefix(tag.Name(), prefix) {
			return nil
		}
	}
	return fmt.Errorf("name must start with one of %v", prefixes)
}
