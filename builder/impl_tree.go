// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_tree.go: level-order tree fixtures.

package builder

// CompleteTree returns the level-order encoding of the complete binary tree
// holding 1..n. Non-positive n yields an empty encoding.
func CompleteTree(n int) []*int {
	out := make([]*int, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		v := i
		out = append(out, &v)
	}
	return out
}
