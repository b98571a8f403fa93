// Package constants holds values shared between configuration and infrastructure.
package constants

// Pub/Sub providers selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Document store providers selectable through store.provider.
const (
	StoreProviderFirestore = "firestore"
	StoreProviderMemory    = "memory"
)

// Identity providers selectable through identity.provider.
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderLocal    = "local"
)
