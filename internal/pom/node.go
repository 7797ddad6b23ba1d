// Package pom implements a persistent, weight-annotated, self-balancing
// ordered map (an AVL tree under the hood). Every mutation returns a new
// map that shares unchanged subtrees with the input, so a reference to an
// older map stays valid — and keeps observing the old contents — for as
// long as something holds it.
package pom

import "cmp"

// Weight is a node's own contribution to its subtree's accumulated weight.
// It is unsigned so that "negative node weight" is a type error, not a
// runtime check.
type Weight = uint64

// node is an immutable AVL tree node. Children are never mutated after a
// node is published by put/remove/rotate; callers only ever see a node
// once it is fully built.
type node[K cmp.Ordered, V any] struct {
	key    K
	val    V
	weight Weight

	left, right *node[K, V]

	height int8
	// subtreeWeight is weight + left.subtreeWeight + right.subtreeWeight,
	// recomputed whenever a node is (re)built.
	subtreeWeight Weight
}

func newLeaf[K cmp.Ordered, V any](key K, w Weight, val V) *node[K, V] {
	return &node[K, V]{key: key, val: val, weight: w, height: 1, subtreeWeight: w}
}

func heightOf[K cmp.Ordered, V any](n *node[K, V]) int8 {
	if n == nil {
		return 0
	}
	return n.height
}

func weightOf[K cmp.Ordered, V any](n *node[K, V]) Weight {
	if n == nil {
		return 0
	}
	return n.subtreeWeight
}

func max8(a, b int8) int8 {
	if a > b {
		return a
	}
	return b
}

// recompute refreshes n's cached height and subtree weight from its
// children. n must be a node that hasn't escaped to any caller yet.
func recompute[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	n.height = 1 + max8(heightOf(n.left), heightOf(n.right))
	n.subtreeWeight = n.weight + weightOf(n.left) + weightOf(n.right)
	return n
}

func balanceFactor[K cmp.Ordered, V any](n *node[K, V]) int {
	return int(heightOf(n.left)) - int(heightOf(n.right))
}

// clone copies n's key/weight/value into a fresh node with the given
// children, so that rebuilding an ancestor path never mutates a
// previously published node.
func clone[K cmp.Ordered, V any](n *node[K, V], left, right *node[K, V]) *node[K, V] {
	return &node[K, V]{key: n.key, val: n.val, weight: n.weight, left: left, right: right}
}
