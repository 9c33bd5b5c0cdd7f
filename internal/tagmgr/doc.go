// Package tagmgr provides a compile-time safe registry of action tags used as
// dispatch keys by the board application's state layer.
//
// Tags are defined once as package-level values and registered with a
// Manager. After Seal the registry is read-only and may be shared freely
// between goroutines.
//
// Usage:
//
// Tags are defined by the package that owns their domain:
//
//	var Connected = tagmgr.Define(tagmgr.TagConfig{
//		Name:        "SOCKET_CONNECTED",
//		Domain:      tagmgr.DomainSocket,
//		Description: "The real-time socket finished connecting",
//	})
//
// and registered with a manager:
//
//	manager := tagmgr.NewManager()
//	manager.MustRegister(Connected)
//	manager.Seal()
//
// String-keyed input is resolved with Lookup, which fails with ErrUnknownTag
// for names outside the registry:
//
//	tag, err := manager.Lookup("SOCKET_CONNECTED")
//	if errors.Is(err, tagmgr.ErrUnknownTag) {
//		...
//	}
package tagmgr
