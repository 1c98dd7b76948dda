// Package recursion traces classic recursive functions with an explicit,
// inspectable call stack.
//
// What
//
//   - Factorial(n):  call, base_case | (recursive_call, <n-1>, return).
//   - Fibonacci(n):  like Factorial but recursing on n-1 then n-2, backed by
//     a memo table that lives only for one invocation. A memo hit records a
//     single memoized step and pushes no frame.
//   - Hanoi(n):      physically simulates three rods (A, B, C). One initial
//     step, then per call: call, move (n==1) or step1, <n-1>, step2 (move),
//     step3, <n-1>; return after the frame is popped. Exactly 2^n-1 disks
//     are moved.
//   - Reverse(text): peels the first character, reverses the rest, appends
//     the character. Works on runes.
//
// Frames
//
//	Every non-memoized call pushes a frame before its call step. Factorial,
//	Fibonacci and Reverse pop after their closing step, so that step still
//	shows its own frame; Hanoi pops first and then records return. In all
//	cases pushes equal pops once the trace completes.
//
// Rod snapshots
//
//	Every Hanoi step carries a deep copy of all three rods, bottom disk
//	first. Rods never refuse an illegal move: legality is a property of
//	the algorithm, checked by the tests, not enforced by the container.
package recursion
