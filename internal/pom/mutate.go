package pom

import "cmp"

// put returns a new subtree with k bound to (w, v). If k is already
// present, the prior binding is discarded and replaced in place — the
// tree shape doesn't change on a same-key replace, so no rebalance is
// needed on that path.
func put[K cmp.Ordered, V any](n *node[K, V], k K, w Weight, v V) *node[K, V] {
	if n == nil {
		return newLeaf(k, w, v)
	}
	switch cmp.Compare(k, n.key) {
	case -1:
		return rebalance(clone(n, put(n.left, k, w, v), n.right))
	case 1:
		return rebalance(clone(n, n.left, put(n.right, k, w, v)))
	default:
		return recompute(&node[K, V]{key: k, val: v, weight: w, left: n.left, right: n.right})
	}
}

// remove returns a new subtree without k. If k is absent, the input n is
// returned unchanged (identity preserved) so callers can cheaply detect
// a no-op removal.
func remove[K cmp.Ordered, V any](n *node[K, V], k K) *node[K, V] {
	if n == nil {
		return nil
	}
	switch cmp.Compare(k, n.key) {
	case -1:
		left := remove(n.left, k)
		if left == n.left {
			return n
		}
		return rebalance(clone(n, left, n.right))
	case 1:
		right := remove(n.right, k)
		if right == n.right {
			return n
		}
		return rebalance(clone(n, n.left, right))
	default:
		switch {
		case n.left == nil:
			return n.right
		case n.right == nil:
			return n.left
		case heightOf(n.left) > heightOf(n.right):
			// Taller subtree is the left one: lift its predecessor (max).
			pred, newLeft := extractMax(n.left)
			return rebalance(clone(pred, newLeft, n.right))
		default:
			// Tie goes to the right subtree: lift its successor (min).
			succ, newRight := extractMin(n.right)
			return rebalance(clone(succ, n.left, newRight))
		}
	}
}

// extractMin removes and returns the minimum-keyed node of n's subtree,
// along with the rebalanced remainder.
func extractMin[K cmp.Ordered, V any](n *node[K, V]) (*node[K, V], *node[K, V]) {
	if n.left == nil {
		return n, n.right
	}
	minNode, newLeft := extractMin(n.left)
	return minNode, rebalance(clone(n, newLeft, n.right))
}

// extractMax removes and returns the maximum-keyed node of n's subtree,
// along with the rebalanced remainder.
func extractMax[K cmp.Ordered, V any](n *node[K, V]) (*node[K, V], *node[K, V]) {
	if n.right == nil {
		return n, n.left
	}
	maxNode, newRight := extractMax(n.right)
	return maxNode, rebalance(clone(n, n.left, newRight))
}
