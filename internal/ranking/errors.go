package ranking

import "errors"

// ErrCapacityExceeded is returned by AddScore when a user's new
// cumulative score would overflow the Score domain. The state is left
// unchanged: a State is only built out of its constituent trees after
// every one of them constructs successfully, so a failed AddScore never
// leaves a half-applied update behind.
var ErrCapacityExceeded = errors.New("ranking: score overflow")
