package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// DefaultBookingQueue is the RabbitMQ queue booking events are routed to when none is configured.
const DefaultBookingQueue = "booking.events"

// Pub/Sub message attributes
const (
	AttrEventID   = "event_id"
	AttrEventType = "event_type"
	AttrBookingID = "booking_id"
	AttrRequestID = "request_id"
)
