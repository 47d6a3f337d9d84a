package ports

import "time"

// Clock supplies the current time. Injected so that reporting windows and
// adhesion timestamps are deterministic under test.
type Clock interface {
	Now() time.Time
}
