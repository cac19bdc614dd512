// Package constants holds domain-wide constant values shared across layers.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Document tree paths.
const (
	UsersPath    = "usuarios"
	RequestsPath = "compras"
)

// Attribute store collections.
const (
	InvoicesCollection = "notasFiscais"
	ProfilesCollection = "perfis"
)
