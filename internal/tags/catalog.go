// Package tags is the catalog of every action tag the board application
// dispatches. Each domain lives in its own subpackage; this package wires them
// into a manager.
package tags

import (
	"fmt"
	"sync"

	"github.com/nfrund/pinboard/internal/tagmgr"
	"github.com/nfrund/pinboard/internal/tags/boards"
	"github.com/nfrund/pinboard/internal/tags/cards"
	"github.com/nfrund/pinboard/internal/tags/currentboard"
	"github.com/nfrund/pinboard/internal/tags/lists"
	"github.com/nfrund/pinboard/internal/tags/session"
	"github.com/nfrund/pinboard/internal/tags/socket"
)

// TagCount is the number of tags in the catalog. Changing it is a deliberate
// act that must go together with adding or removing a tag.
const TagCount = 32

// domainRegistrars is the single source of truth for which domains make up
// the catalog, in Domains order.
var domainRegistrars = []struct {
	domain   tagmgr.Domain
	tags     func() []tagmgr.Tag
	register func(*tagmgr.Manager) error
}{
	{tagmgr.DomainSession, session.Tags, session.RegisterTags},
	{tagmgr.DomainSocket, socket.Tags, socket.RegisterTags},
	{tagmgr.DomainBoards, boards.Tags, boards.RegisterTags},
	{tagmgr.DomainCurrentBoard, currentboard.Tags, currentboard.RegisterTags},
	{tagmgr.DomainLists, lists.Tags, lists.RegisterTags},
	{tagmgr.DomainCards, cards.Tags, cards.RegisterTags},
}

// All returns the full catalog grouped by domain
func All() []tagmgr.Tag {
	all := make([]tagmgr.Tag, 0, TagCount)
	for _, r := range domainRegistrars {
		all = append(all, r.tags()...)
	}
	return all
}

// Register adds the full catalog to m
func Register(m *tagmgr.Manager) error {
	for _, r := range domainRegistrars {
		if err := r.register(m); err != nil {
			return fmt.Errorf("failed to register %s tags: %w", r.domain, err)
		}
	}
	return nil
}

// NewManager returns a sealed manager holding the full catalog
func NewManager() (*tagmgr.Manager, error) {
	m := tagmgr.NewManager()
	if err := Register(m); err != nil {
		return nil, err
	}
	m.Seal()
	return m, nil
}

var defaultOnce sync.Once

// Default registers the catalog with tagmgr.Default on first use, seals it
// and returns it. It panics if the catalog is invalid, which can only happen
// through a programming error in one of the domain packages.
func Default() *tagmgr.Manager {
	defaultOnce.Do(func() {
		m := tagmgr.Default()
		if err := Register(m); err != nil {
			panic("failed to register board tags: " + err.Error())
		}
		m.Seal()
	})
	return tagmgr.Default()
}

// Lookup resolves a tag name against the default catalog
func Lookup(name string) (tagmgr.Tag, error) {
	return Default().Lookup(name)
}
