package tagmgr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/pinboard/internal/tagmgr"
)

func TestManager(t *testing.T) {
	t.Run("Register validates before storing", func(t *testing.T) {
		m := tagmgr.NewManager()

		err := m.Register(newTag("card_move", tagmgr.DomainCards))
		require.Error(t, err)

		var tagErr *tagmgr.TagError
		require.True(t, errors.As(err, &tagErr))
		assert.Equal(t, tagmgr.ErrorValidationFailed, tagErr.Type)
		assert.NotNil(t, errors.Unwrap(err))
		assert.Zero(t, m.Count())
	})

	t.Run("Register rejects value that differs from name", func(t *testing.T) {
		m := tagmgr.NewManager()
		err := m.Register(mismatchedTag{newTag("CARD_MOVE", tagmgr.DomainCards)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must equal its name")
	})

	t.Run("RegisterAll stops at first failure", func(t *testing.T) {
		m := tagmgr.NewManager()
		err := m.RegisterAll(
			newTag("CARD_MOVE", tagmgr.DomainCards),
			newTag("CARD_MOVE", tagmgr.DomainCards),
			newTag("CURRENT_CARD_SET", tagmgr.DomainCards),
		)
		require.Error(t, err)
		assert.Equal(t, 1, m.Count())
	})

	t.Run("MustRegister panics on invalid tags", func(t *testing.T) {
		m := tagmgr.NewManager()
		assert.Panics(t, func() { m.MustRegister(newTag("nope", tagmgr.DomainCards)) })
		assert.NotPanics(t, func() { m.MustRegister(newTag("CARD_MOVE", tagmgr.DomainCards)) })
	})

	t.Run("Lookup and Has", func(t *testing.T) {
		m := tagmgr.NewManager()
		tag := newTag("SOCKET_CONNECTED", tagmgr.DomainSocket)
		m.MustRegister(tag)
		m.Seal()

		found, err := m.Lookup("SOCKET_CONNECTED")
		require.NoError(t, err)
		assert.Equal(t, "SOCKET_CONNECTED", found.Value())
		assert.True(t, m.Has(tag))

		// Same name, different definition.
		assert.False(t, m.Has(newTag("SOCKET_CONNECTED", tagmgr.DomainSocket)))
		assert.False(t, m.Has(nil))

		_, err = m.Lookup("NOT_A_TAG")
		assert.ErrorIs(t, err, tagmgr.ErrUnknownTag)
		assert.True(t, m.Stats().Sealed)
	})

	t.Run("ValidateTagName", func(t *testing.T) {
		m := tagmgr.NewManager()
		assert.NoError(t, m.ValidateTagName("BOARDS_RESET"))
		assert.Error(t, m.ValidateTagName("boards.reset"))
	})
}

func TestDefaultManager(t *testing.T) {
	assert.Same(t, tagmgr.Default(), tagmgr.Default(), "Default() should return the same instance")
}

func TestMustRegisterNilTag(t *testing.T) {
	m := tagmgr.NewManager()
	assert.PanicsWithValue(t,
		"failed to register tag <nil>: tag validation failed: tag cannot be nil",
		func() { m.MustRegister(nil) })
}
