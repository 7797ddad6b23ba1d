package ranking

import (
	"math"

	"github.com/scorestack/rankboard-server/internal/pom"
)

// unit is the sentinel payload stored in the inner (per-score) trees.
// Those trees are ordered sets of user-ids wearing a map's clothes; no
// per-entry payload is ever allocated for them.
type unit struct{}

var sentinel unit

// innerTree maps a user-id tied at some score to the sentinel unit.
type innerTree = *pom.Tree[UserID, unit]

// State is an immutable snapshot of the whole ranking: which users are
// tied at which score, and what score each user currently holds. Every
// method is a pure function — it reads the receiver and, for mutations,
// returns a new *State without touching the receiver's trees.
type State struct {
	scoreToUsers *pom.Tree[Score, innerTree]
	userToScore  *pom.Tree[UserID, Score]
}

// Empty returns the ranking state with no users.
func Empty() *State {
	return &State{
		scoreToUsers: pom.New[Score, innerTree](),
		userToScore:  pom.New[UserID, Score](),
	}
}

// AddScore credits earned points to user and returns the resulting
// state. earned may be zero: if the user already has an entry, this is
// a no-op that returns the receiver itself (idempotence of redundant,
// zero-valued updates); if the user is new, a zero-point first contact
// still registers them at score 0.
//
// Returns ErrCapacityExceeded if prior + earned would overflow Score; in
// that case the returned state is nil and s is untouched.
func (s *State) AddScore(user UserID, earned Score) (*State, error) {
	prev, hadPrev := s.userToScore.Get(user)
	if hadPrev && earned == 0 {
		return s, nil
	}

	base := Score(0)
	if hadPrev {
		base = prev
	}
	if base > math.MaxUint64-earned {
		return nil, ErrCapacityExceeded
	}
	newScore := base + earned

	outer := s.scoreToUsers
	if hadPrev {
		inner, _ := outer.Get(prev)
		inner = inner.Remove(user)
		if inner.TotalWeight() == 0 {
			outer = outer.Remove(prev)
		} else {
			outer = outer.Put(prev, inner.TotalWeight(), inner)
		}
	}

	inner, ok := outer.Get(newScore)
	if !ok {
		inner = pom.New[UserID, unit]()
	}
	inner = inner.Put(user, 1, sentinel)
	outer = outer.Put(newScore, inner.TotalWeight(), inner)

	users := s.userToScore.Put(user, 0, newScore)

	return &State{scoreToUsers: outer, userToScore: users}, nil
}

// FindUser returns the user's current score and competition rank.
func (s *State) FindUser(user UserID) (Entry, bool) {
	score, ok := s.userToScore.Get(user)
	if !ok {
		return Entry{}, false
	}
	higher, _ := s.scoreToUsers.RightWeight(score)
	return Entry{UserID: user, Score: score, Position: Position(higher) + 1}, true
}

// TopN returns up to maxUsers entries ordered by score descending, ties
// broken by ascending user-id, with competition-ranked positions. A
// non-positive maxUsers yields an empty list; a maxUsers beyond the
// population yields every user exactly once.
func (s *State) TopN(maxUsers int) []Entry {
	if maxUsers <= 0 {
		return nil
	}
	result := make([]Entry, 0, maxUsers)
	s.scoreToUsers.ForEachReverse(func(score Score, inner innerTree, _, _, outerRight pom.Weight) bool {
		position := Position(outerRight) + 1
		inner.ForEach(func(user UserID, _ unit, _, _, _ pom.Weight) bool {
			result = append(result, Entry{UserID: user, Score: score, Position: position})
			return len(result) < maxUsers
		})
		return len(result) < maxUsers
	})
	return result
}
