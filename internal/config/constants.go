package config

import "time"

const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "chainbot"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultCORSOrigin      = "*"
	DefaultRateLimit       = 1000
	DefaultRateLimitWindow = 5 * time.Minute
	DefaultMaxRequestBytes = 1 << 20
	DefaultShutdownTimeout = 10 * time.Second

	DefaultOpenAIModel = "gpt-4o-mini"

	DefaultDBMaxConns = 10

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)
