package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a lock obtained from a Locker.
type UnlockFunc func(ctx context.Context) error

// Locker serialises read-modify-write edits of one project across
// goroutines or server replicas.
type Locker interface {
	// Lock blocks until the lock for key is held or ctx is done. The lock
	// expires after ttl even if never released.
	// The returned UnlockFunc MUST be called to release it.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
