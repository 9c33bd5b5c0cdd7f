package cards

import "github.com/nfrund/pinboard/internal/tagmgr"

// Tags for moving cards and for the card detail view.
// FETHING is misspelled on the wire and must stay that way.

var (
	Move = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CARD_MOVE",
		Domain:      tagmgr.DomainCards,
		Description: "A card was dragged to a new list or position",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"cardId", "listId", "position"},
		},
	})

	Fetching = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_CARD_FETHING",
		Domain:      tagmgr.DomainCards,
		Description: "The opened card is being requested",
	})

	Reset = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_CARD_RESET",
		Domain:      tagmgr.DomainCards,
		Description: "Clears the opened card",
	})

	Set = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_CARD_SET",
		Domain:      tagmgr.DomainCards,
		Description: "The opened card arrived",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"card"},
		},
	})

	Edit = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_CARD_EDIT",
		Domain:      tagmgr.DomainCards,
		Description: "Toggles edit mode of the opened card",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"edit"},
		},
	})

	ShowMembersSelector = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_CARD_SHOW_MEMBERS_SELECTOR",
		Domain:      tagmgr.DomainCards,
		Description: "Toggles the member picker of the opened card",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"show"},
		},
	})
)

// Tags returns the card tags in definition order
func Tags() []tagmgr.Tag {
	return []tagmgr.Tag{
		Move,
		Fetching,
		Reset,
		Set,
		Edit,
		ShowMembersSelector,
	}
}

// RegisterTags registers all card tags with the manager
func RegisterTags(m *tagmgr.Manager) error {
	return m.RegisterAll(Tags()...)
}
