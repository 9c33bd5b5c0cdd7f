package boards

import "github.com/nfrund/pinboard/internal/tagmgr"

// Tags for the collection of boards shown on the home page.

var (
	Fetching = tagmgr.Define(tagmgr.TagConfig{
		Name:        "BOARDS_FETCHING",
		Domain:      tagmgr.DomainBoards,
		Description: "The boards collection is being requested",
	})

	ShowForm = tagmgr.Define(tagmgr.TagConfig{
		Name:        "BOARDS_SHOW_FORM",
		Domain:      tagmgr.DomainBoards,
		Description: "Toggles the new board form",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"show"},
		},
	})

	// Received carries both owned and invited boards
	Received = tagmgr.Define(tagmgr.TagConfig{
		Name:        "BOARDS_RECEIVED",
		Domain:      tagmgr.DomainBoards,
		Description: "The boards collection arrived",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"ownedBoards", "invitedBoards"},
		},
	})

	SetCurrentBoard = tagmgr.Define(tagmgr.TagConfig{
		Name:        "BOARDS_SET_CURRENT_BOARD",
		Domain:      tagmgr.DomainBoards,
		Description: "Marks a board from the collection as the one being viewed",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"currentBoard"},
		},
	})

	CreateError = tagmgr.Define(tagmgr.TagConfig{
		Name:        "BOARDS_CREATE_ERROR",
		Domain:      tagmgr.DomainBoards,
		Description: "Creating a board failed",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"errors"},
		},
	})

	Reset = tagmgr.Define(tagmgr.TagConfig{
		Name:        "BOARDS_RESET",
		Domain:      tagmgr.DomainBoards,
		Description: "Clears the boards collection state",
	})
)

// Tags returns the boards tags in definition order
func Tags() []tagmgr.Tag {
	return []tagmgr.Tag{
		Fetching,
		ShowForm,
		Received,
		SetCurrentBoard,
		CreateError,
		Reset,
	}
}

// RegisterTags registers all boards tags with the manager
func RegisterTags(m *tagmgr.Manager) error {
	return m.RegisterAll(Tags()...)
}
