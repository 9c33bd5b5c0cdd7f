package currentboard

import "github.com/nfrund/pinboard/internal/tagmgr"

// Tags for the board currently open, including its channel presence.
// FETHING is misspelled on the wire and must stay that way.

var (
	Fetching = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_BOARD_FETHING",
		Domain:      tagmgr.DomainCurrentBoard,
		Description: "The current board is being requested",
	})

	ConnectedUsers = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_BOARD_CONNECTED_USERS",
		Domain:      tagmgr.DomainCurrentBoard,
		Description: "The set of users present on the board channel changed",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"users"},
		},
	})

	ConnectedToChannel = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_BOARD_CONNECTED_TO_CHANNEL",
		Domain:      tagmgr.DomainCurrentBoard,
		Description: "Joined the board's real-time channel",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"channel"},
		},
	})

	Reset = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_BOARD_RESET",
		Domain:      tagmgr.DomainCurrentBoard,
		Description: "Clears the current board state",
	})

	ListCreated = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_BOARD_LIST_CREATED",
		Domain:      tagmgr.DomainCurrentBoard,
		Description: "A list was added to the current board",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"list"},
		},
	})

	CardCreated = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_BOARD_CARD_CREATED",
		Domain:      tagmgr.DomainCurrentBoard,
		Description: "A card was added to one of the board's lists",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"card"},
		},
	})

	ShowForm = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_BOARD_SHOW_FORM",
		Domain:      tagmgr.DomainCurrentBoard,
		Description: "Toggles the new list form",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"show"},
		},
	})

	ShowUsersForm = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_BOARD_SHOW_USERS_FORM",
		Domain:      tagmgr.DomainCurrentBoard,
		Description: "Toggles the add member form",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"show"},
		},
	})

	MemberAdded = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_BOARD_MEMBER_ADDED",
		Domain:      tagmgr.DomainCurrentBoard,
		Description: "A user was added as a board member",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"user"},
		},
	})

	AddMemberError = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_BOARD_ADD_MEMBER_ERROR",
		Domain:      tagmgr.DomainCurrentBoard,
		Description: "Adding a board member failed",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"error"},
		},
	})

	EditList = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_BOARD_EDIT_LIST",
		Domain:      tagmgr.DomainCurrentBoard,
		Description: "Puts a list of the current board into edit mode",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"listId"},
		},
	})

	ShowCard = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_BOARD_SHOW_CARD",
		Domain:      tagmgr.DomainCurrentBoard,
		Description: "Opens a card of the current board",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"card"},
		},
	})

	EditCard = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_BOARD_EDIT_CARD",
		Domain:      tagmgr.DomainCurrentBoard,
		Description: "Puts a card of the current board into edit mode",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"cardId"},
		},
	})
)

// Tags returns the current board tags in definition order
func Tags() []tagmgr.Tag {
	return []tagmgr.Tag{
		Fetching,
		ConnectedUsers,
		ConnectedToChannel,
		Reset,
		ListCreated,
		CardCreated,
		ShowForm,
		ShowUsersForm,
		MemberAdded,
		AddMemberError,
		EditList,
		ShowCard,
		EditCard,
	}
}

// RegisterTags registers all current board tags with the manager
func RegisterTags(m *tagmgr.Manager) error {
	return m.RegisterAll(Tags()...)
}
