// Package tree builds binary trees from level-order encodings and traces
// recursive depth-first traversals over them.
//
// What
//
//   - Build(values): breadth-first deserialization of a level-order slice
//     where nil marks an absent node. Absent slots create no node, and the
//     children that would have hung under them are never read.
//   - Inorder, Preorder, Postorder: walk the tree recursively while keeping
//     an explicit step.Frames call stack labelled "<order>(<value>)".
//
// Step sequence per node
//
//	Preorder   process, [go_left, <left>], [go_right, <right>], return
//	Inorder    visit, [go_left, <left>], process, [go_right, <right>], return
//	Postorder  visit, [go_left, <left>], [go_right, <right>], process, return
//
// go_left / go_right are recorded only when the child exists. The frame is
// pushed before the first step of a node and popped right before its return
// step, so every trace ends with an empty call stack. There is no complete
// terminator; an empty tree yields an empty trace.
//
// Complexity
//
//   - Time:   O(n) steps, each copying at most h frame labels.
//   - Memory: O(h) frames for a tree of height h.
package tree
