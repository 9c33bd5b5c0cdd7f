package socket

import "github.com/nfrund/pinboard/internal/tagmgr"

var (
	// Connected is dispatched once the real-time socket is open
	Connected = tagmgr.Define(tagmgr.TagConfig{
		Name:        "SOCKET_CONNECTED",
		Domain:      tagmgr.DomainSocket,
		Description: "The real-time socket finished connecting",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"socket", "channel"},
		},
	})
)

// Tags returns the socket tags in definition order
func Tags() []tagmgr.Tag {
	return []tagmgr.Tag{Connected}
}

// RegisterTags registers all socket tags with the manager
func RegisterTags(m *tagmgr.Manager) error {
	return m.RegisterAll(Tags()...)
}
