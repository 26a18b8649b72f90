// internal/app/system/limits/limits.go
package limits

// Request body size limits.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxJSONBodySize is the cap applied to every JSON request body.
	// Matches the original deployment's express.json limit.
	MaxJSONBodySize = 10 << 20 // 10 MB
)
