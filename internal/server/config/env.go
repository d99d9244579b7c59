package config

import "os"

// parseEnv overlays Config fields from environment variables. Only
// variables that are set (even if empty ones are ignored) take effect,
// so defaults and JSON values survive an unset environment.
func parseEnv(config *Config) {
	setIfPresent := func(key string, target *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*target = v
		}
	}

	setIfPresent("ADDRESS", &config.Address)
	setIfPresent("DATABASE_DSN", &config.DatabaseDSN)
	setIfPresent("JWT_SECRET", &config.SecretKey)
	setIfPresent("ADMIN_EMAIL", &config.AdminEmail)
	setIfPresent("ALLOWED_ORIGIN", &config.AllowedOrigin)
	setIfPresent("S3_ROOT_USER", &config.S3RootUser)
	setIfPresent("S3_ROOT_PASSWORD", &config.S3RootPassword)
	setIfPresent("S3_BUCKET", &config.S3Bucket)
	setIfPresent("S3_REGION", &config.S3Region)
	setIfPresent("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
}
