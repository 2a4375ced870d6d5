// Package constants holds configuration values shared across layers.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderInline delivers fanout in-process.
	PubSubProviderInline = "inline"
	// PubSubProviderLocal posts push envelopes to a local worker over HTTP.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Fanout kinds carried on FanoutEvent.Kind.
const (
	FanoutKindEventCreated = "event_created"
	FanoutKindEventUpdated = "event_updated"
)
