package session

import "github.com/nfrund/pinboard/internal/tagmgr"

// Session tags cover sign in, sign out and account registration.

var (
	// UserSignedIn is dispatched after the sign-in request succeeds
	UserSignedIn = tagmgr.Define(tagmgr.TagConfig{
		Name:        "USER_SIGNED_IN",
		Domain:      tagmgr.DomainSession,
		Description: "The user signed in and a session token was issued",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"currentUser"},
		},
	})

	// CurrentUser carries the user loaded for an existing session
	CurrentUser = tagmgr.Define(tagmgr.TagConfig{
		Name:        "CURRENT_USER",
		Domain:      tagmgr.DomainSession,
		Description: "The signed-in user was loaded for the current session",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"currentUser"},
		},
	})

	UserSignedOut = tagmgr.Define(tagmgr.TagConfig{
		Name:        "USER_SIGNED_OUT",
		Domain:      tagmgr.DomainSession,
		Description: "The user signed out and the session was cleared",
	})

	SessionsError = tagmgr.Define(tagmgr.TagConfig{
		Name:        "SESSIONS_ERROR",
		Domain:      tagmgr.DomainSession,
		Description: "Signing in failed",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"error"},
		},
	})

	RegistrationsError = tagmgr.Define(tagmgr.TagConfig{
		Name:        "REGISTRATIONS_ERROR",
		Domain:      tagmgr.DomainSession,
		Description: "Creating a new account failed",
		Metadata: map[string]interface{}{
			"payload_fields": []string{"errors"},
		},
	})
)

// Tags returns the session tags in definition order
func Tags() []tagmgr.Tag {
	return []tagmgr.Tag{
		UserSignedIn,
		CurrentUser,
		UserSignedOut,
		SessionsError,
		RegistrationsError,
	}
}

// RegisterTags registers all session tags with the manager
func RegisterTags(m *tagmgr.Manager) error {
	return m.RegisterAll(Tags()...)
}
