package lists

import "github.com/nfrund/pinboard/internal/tagmgr"

var (
	// ShowForm toggles the new card form of a list
	ShowForm = tagmgr.Define(tagmgr.TagConfig{
		Name:        "LISTS_SHOW_FORM",
		Domain:      tagmgr.DomainLists,
		Description: "Toggles the new card form of a list",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"listId"},
		},
	})
)

// Tags returns the list tags in definition order
func Tags() []tagmgr.Tag {
	return []tagmgr.Tag{ShowForm}
}

// RegisterTags registers all list tags with the manager
func RegisterTags(m *tagmgr.Manager) error {
	return m.RegisterAll(Tags()...)
}
