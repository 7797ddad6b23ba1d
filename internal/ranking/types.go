package ranking

// Score is a cumulative point total. It is unsigned, so a negative score
// is a type error rather than a validation error; an addition that would
// overflow fails with ErrCapacityExceeded instead of wrapping (see AddScore).
type Score = uint64

// UserID identifies a ranked user. Equality is by value.
type UserID = uint64

// Position is a 1-based competition rank: 1 is the highest score, tied
// users share a position, and the position after a tie of k users skips
// ahead by k.
type Position = uint32

// Entry is one row of a ranking result.
type Entry struct {
	UserID   UserID
	Score    Score
	Position Position
}
