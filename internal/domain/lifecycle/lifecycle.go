// Package lifecycle holds shared start/stop settings for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as pinging the database or
// shutting down the HTTP server.
const DefaultTimeout = 10 * time.Second
