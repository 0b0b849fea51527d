package config

const (
	// EnvPrefix is intentionally empty: every field names its full
	// KARTZY_-prefixed variable in its envconfig tag.
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)
