package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyAccountID = "account_id"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableBetaRequests = "beta_requests"
	TableCircles      = "circles"
	TableArtifacts    = "artifacts"
	TableFanFeedback  = "fan_feedback"
)
