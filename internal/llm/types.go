package llm

import "time"

// Config holds the model identity, credentials and call limits for a Gateway.
type Config struct {
	APIKey            string
	ModelName         string
	Timeout           time.Duration // Per-call timeout; 0 means no extra deadline
	RequestsPerSecond float64       // 0 disables rate limiting
	JSONMode          bool          // Ask the model for application/json output
}
