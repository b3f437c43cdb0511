// Package lifecycle holds shared start/stop settings for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single lifecycle hook such as a connectivity check.
const DefaultTimeout = 10 * time.Second
