package pom

import "cmp"

// Tree is an immutable, weight-annotated ordered map from K to V. The
// zero value is not usable; construct one with New. Every mutating
// method returns a new *Tree and leaves the receiver untouched, so a
// *Tree can be read from many goroutines concurrently, including while
// other goroutines derive new trees from it.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Get returns the value bound to k, if any.
func (t *Tree[K, V]) Get(k K) (V, bool) {
	return get(t.root, k)
}

// Put returns a new tree in which k is bound to v with node weight w. A
// prior binding for k, if any, is discarded (replace, not merge).
func (t *Tree[K, V]) Put(k K, w Weight, v V) *Tree[K, V] {
	return &Tree[K, V]{root: put(t.root, k, w, v)}
}

// Remove returns a new tree without k. If k is absent, Remove may return
// the receiver itself.
func (t *Tree[K, V]) Remove(k K) *Tree[K, V] {
	newRoot := remove(t.root, k)
	if newRoot == t.root {
		return t
	}
	return &Tree[K, V]{root: newRoot}
}

// TotalWeight is the root's cached subtree weight, or 0 for an empty tree.
func (t *Tree[K, V]) TotalWeight() Weight {
	return weightOf(t.root)
}

// LeftWeight is the sum of node weights of every key strictly less than k.
func (t *Tree[K, V]) LeftWeight(k K) (Weight, bool) {
	return leftWeight(t.root, k)
}

// RightWeight is the sum of node weights of every key strictly greater than k.
func (t *Tree[K, V]) RightWeight(k K) (Weight, bool) {
	return rightWeight(t.root, k)
}

// NodeWeight returns the weight stored at k.
func (t *Tree[K, V]) NodeWeight(k K) (Weight, bool) {
	return nodeWeight(t.root, k)
}

// ForEach visits every entry in ascending key order until visit returns
// false or the tree is exhausted.
func (t *Tree[K, V]) ForEach(visit Visit[K, V]) {
	forEach(t.root, 0, 0, visit)
}

// ForEachReverse visits every entry in descending key order until visit
// returns false or the tree is exhausted.
func (t *Tree[K, V]) ForEachReverse(visit Visit[K, V]) {
	forEachReverse(t.root, 0, 0, visit)
}

// Height reports the AVL height of the tree; 0 for an empty tree. Mostly
// useful for tests asserting the balance invariant.
func (t *Tree[K, V]) Height() int {
	return int(heightOf(t.root))
}
