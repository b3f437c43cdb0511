// Package constants holds fixed identifiers shared across layers.
package constants

// Pub/Sub forwarder providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Durable store keys
const (
	GuestCartKey      = "guest_cart"
	UserKey           = "user"
	SessionCookiesKey = "session_cookies"
)

// GuestItemIDPrefix prefixes locally generated guest line IDs.
const GuestItemIDPrefix = "guest_"
