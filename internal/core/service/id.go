package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

// newID returns a random 12-hex-char identifier used as the Mongo _id for
// documents created at runtime.
func newID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%012x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
