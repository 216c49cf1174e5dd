package config

// Canonical environment variable names, shared by Load and tests.
const (
	EnvAppEnv   = "OUTFAST_APP_ENV"
	EnvPort     = "OUTFAST_APP_PORT"
	EnvLogLevel = "OUTFAST_LOG_LEVEL"

	EnvDBDSN  = "OUTFAST_DB_DSN"
	EnvDBHost = "OUTFAST_DB_HOST"
	EnvDBUser = "OUTFAST_DB_USER"
	EnvDBName = "OUTFAST_DB_NAME"

	EnvRedisURL  = "OUTFAST_REDIS_URL"
	EnvJWTSecret = "OUTFAST_JWT_SECRET"
	EnvJWTIssuer = "OUTFAST_JWT_ISSUER"

	EnvGCPProjectID    = "OUTFAST_GCP_PROJECT_ID"
	EnvPubSubQuotesTop = "OUTFAST_PUBSUB_QUOTES_TOPIC"
)
