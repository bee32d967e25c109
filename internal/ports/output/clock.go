package output

import "time"

// Clock abstracts wall-clock reads so that time-derived status and the
// admission predicate stay deterministic under test.
type Clock interface {
	Now() time.Time
}
