// Package sorting runs textbook comparison sorts while recording every
// comparison, swap, shift, split and merge as a step.Step.
//
// What
//
//   - Bubble:    compare adjacent pairs, swap when out of order.
//   - Selection: scan for the minimum of the unsorted suffix, swap it in.
//   - Insertion: lift a key, shift larger elements right, drop the key.
//   - Merge:     top-down split around mid=(left+right)/2, stable merge.
//   - Quick:     Lomuto partition with the last element as pivot.
//
// Every variant copies its input before sorting, so the caller's slice is
// never touched, and every step carries its own copy of the working array.
// Each trace ends with a single "complete" step whose array is the input
// sorted ascending.
//
// Step kinds per variant
//
//	Bubble     compare, swap, complete
//	Selection  select_min, compare, new_min, swap, complete
//	Insertion  select_key, compare, shift, insert, complete
//	Merge      divide, merge_start, merge_step, complete
//	Quick      select_pivot, compare, swap, pivot_place, complete
//
// Determinism
//
//	Traces are a pure function of the input. Merge prefers the left run on
//	ties (stable); Quick always pivots on the last element of the range.
//
// Usage
//
//	tr := sorting.Bubble([]int{5, 2, 4, 1})
//	last, _ := tr.Last()
//	fmt.Println(last.Array) // [1 2 4 5]
//
//	fn, ok := sorting.ByName("merge")
package sorting
