package tags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/pinboard/internal/tagmgr"
	"github.com/nfrund/pinboard/internal/tags"
	"github.com/nfrund/pinboard/internal/tags/boards"
	"github.com/nfrund/pinboard/internal/tags/cards"
	"github.com/nfrund/pinboard/internal/tags/currentboard"
	"github.com/nfrund/pinboard/internal/tags/lists"
	"github.com/nfrund/pinboard/internal/tags/session"
	"github.com/nfrund/pinboard/internal/tags/socket"
)

// expectedCatalog is the snapshot of every tag the application dispatches.
// Adding or removing a tag must update this list.
var expectedCatalog = map[tagmgr.Domain][]string{
	tagmgr.DomainSession: {
		"USER_SIGNED_IN",
		"CURRENT_USER",
		"USER_SIGNED_OUT",
		"SESSIONS_ERROR",
		"REGISTRATIONS_ERROR",
	},
	tagmgr.DomainSocket: {
		"SOCKET_CONNECTED",
	},
	tagmgr.DomainBoards: {
		"BOARDS_FETCHING",
		"BOARDS_SHOW_FORM",
		"BOARDS_RECEIVED",
		"BOARDS_SET_CURRENT_BOARD",
		"BOARDS_CREATE_ERROR",
		"BOARDS_RESET",
	},
	tagmgr.DomainCurrentBoard: {
		"CURRENT_BOARD_FETHING",
		"CURRENT_BOARD_CONNECTED_USERS",
		"CURRENT_BOARD_CONNECTED_TO_CHANNEL",
		"CURRENT_BOARD_RESET",
		"CURRENT_BOARD_LIST_CREATED",
		"CURRENT_BOARD_CARD_CREATED",
		"CURRENT_BOARD_SHOW_FORM",
		"CURRENT_BOARD_SHOW_USERS_FORM",
		"CURRENT_BOARD_MEMBER_ADDED",
		"CURRENT_BOARD_ADD_MEMBER_ERROR",
		"CURRENT_BOARD_EDIT_LIST",
		"CURRENT_BOARD_SHOW_CARD",
		"CURRENT_BOARD_EDIT_CARD",
	},
	tagmgr.DomainLists: {
		"LISTS_SHOW_FORM",
	},
	tagmgr.DomainCards: {
		"CARD_MOVE",
		"CURRENT_CARD_FETHING",
		"CURRENT_CARD_RESET",
		"CURRENT_CARD_SET",
		"CURRENT_CARD_EDIT",
		"CURRENT_CARD_SHOW_MEMBERS_SELECTOR",
	},
}

func TestCatalogSnapshot(t *testing.T) {
	m, err := tags.NewManager()
	require.NoError(t, err)

	assert.Equal(t, tags.TagCount, m.Count())
	assert.Len(t, tags.All(), tags.TagCount)

	total := 0
	for _, domain := range tagmgr.Domains() {
		var names []string
		for _, tag := range m.ListByDomain(domain) {
			names = append(names, tag.Name())
		}
		assert.Equal(t, expectedCatalog[domain], names, "domain %s", domain)
		total += len(names)
	}
	assert.Equal(t, tags.TagCount, total)
}

func TestCatalogInvariants(t *testing.T) {
	all := tags.All()

	t.Run("value equals name", func(t *testing.T) {
		for _, tag := range all {
			assert.Equal(t, tag.Name(), tag.Value())
		}
	})

	t.Run("values are pairwise distinct", func(t *testing.T) {
		seen := make(map[string]bool, len(all))
		for _, tag := range all {
			assert.False(t, seen[tag.Value()], "duplicate value %s", tag.Value())
			seen[tag.Value()] = true
		}
	})

	t.Run("every tag passes validation", func(t *testing.T) {
		v := tagmgr.NewValidator()
		for _, tag := range all {
			assert.NoError(t, v.ValidateDefinition(tag), tag.Name())
		}
	})

	t.Run("All matches registry order", func(t *testing.T) {
		m, err := tags.NewManager()
		require.NoError(t, err)
		assert.Equal(t, all, m.All())
		assert.Equal(t, m.All(), m.All())
	})
}

func TestCatalogManagerIsSealed(t *testing.T) {
	m, err := tags.NewManager()
	require.NoError(t, err)

	err = m.Register(tagmgr.Define(tagmgr.TagConfig{
		Name:        "CARD_ARCHIVE",
		Domain:      tagmgr.DomainCards,
		Description: "not part of the catalog",
	}))
	assert.Error(t, err)
	assert.Equal(t, tags.TagCount, m.Count())
}

func TestRegisterTwiceFails(t *testing.T) {
	m := tagmgr.NewManager()
	require.NoError(t, tags.Register(m))
	assert.Error(t, tags.Register(m))
}

func TestLookup(t *testing.T) {
	t.Run("known tag", func(t *testing.T) {
		tag, err := tags.Lookup("SOCKET_CONNECTED")
		require.NoError(t, err)
		assert.Equal(t, "SOCKET_CONNECTED", tag.Value())
		assert.Same(t, socket.Connected, tag)
	})

	t.Run("misspelled wire value is kept", func(t *testing.T) {
		tag, err := tags.Lookup("CURRENT_CARD_FETHING")
		require.NoError(t, err)
		assert.Same(t, cards.Fetching, tag)
	})

	t.Run("unknown tag", func(t *testing.T) {
		tag, err := tags.Lookup("NOT_A_TAG")
		assert.Nil(t, tag)
		assert.ErrorIs(t, err, tagmgr.ErrUnknownTag)
	})

	t.Run("default manager is shared", func(t *testing.T) {
		assert.Same(t, tags.Default(), tags.Default())
		assert.Same(t, tagmgr.Default(), tags.Default())
		assert.Equal(t, tags.TagCount, tags.Default().Count())
	})
}

func TestCatalogTagsCannotBeChangedThroughMetadata(t *testing.T) {
	tag, err := tags.Lookup("CARD_MOVE")
	require.NoError(t, err)

	fields, ok := tag.Metadata()["payload_fields"].([]string)
	require.True(t, ok)
	fields[0] = "overwritten"

	again, err := tags.Lookup("CARD_MOVE")
	require.NoError(t, err)
	assert.Equal(t, []string{"cardId", "listId", "position"}, again.Metadata()["payload_fields"])
}

func TestDomainRegisterTags(t *testing.T) {
	domains := []struct {
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

	for _, d := range domains {
		t.Run(string(d.domain), func(t *testing.T) {
			m := tagmgr.NewManager()
			require.NoError(t, d.register(m))

			assert.Equal(t, len(expectedCatalog[d.domain]), m.Count())
			assert.Equal(t, d.tags(), m.ListByDomain(d.domain))

			// A second registration of the same domain is a duplicate.
			assert.Error(t, d.register(m))
		})
	}
}
