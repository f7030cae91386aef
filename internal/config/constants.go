package config

const (
	envAlgorithm = "ELIMINATION_ALGORITHM"
	envVerbose   = "ELIMINATION_VERBOSE"
	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	defaultAlgorithm = "edmonds-karp"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)
