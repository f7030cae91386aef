package config

// Config holds runtime configuration for the elimination command.
// Command-line flags override these values.
type Config struct {
	Algorithm string
	Verbose   bool
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Algorithm: envOrDefault(envAlgorithm, defaultAlgorithm),
		Verbose:   boolEnvOrDefault(envVerbose, false),
		LogLevel:  envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat: envOrDefault(envLogFormat, defaultLogFormat),
	}
}
