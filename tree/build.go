package tree

// Node is a binary tree node. Each node exclusively owns its children.
type Node struct {
	Value int
	Left  *Node
	Right *Node
}

// Build deserializes a level-order encoding into a tree and returns its
// root. A nil entry marks an absent node. Build returns nil when values is
// empty or its first entry is absent.
//
// Pending nodes wait in a FIFO queue and consume two slots each (left then
// right), which is the usual array-to-tree convention: slots under an
// absent node are not reserved.
func Build(values []*int) *Node {
	if len(values) == 0 || values[0] == nil {
		return nil
	}

	root := &Node{Value: *values[0]}
	queue := []*Node{root}
	i := 1

	for len(queue) > 0 && i < len(values) {
		node := queue[0]
		queue = queue[1:]

		if i < len(values) && values[i] != nil {
			node.Left = &Node{Value: *values[i]}
			queue = append(queue, node.Left)
		}
		i++

		if i < len(values) && values[i] != nil {
			node.Right = &Node{Value: *values[i]}
			queue = append(queue, node.Right)
		}
		i++
	}

	return root
}

// Size returns the number of nodes reachable from n.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Size() + n.Right.Size()
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Height(), n.Right.Height())
}

// Values returns node values in the given order without tracing.
func (n *Node) Values(o Order) []int {
	out := []int{}
	var walk func(*Node)
	walk = func(x *Node) {
		if x == nil {
			return
		}
		if o == OrderPre {
			out = append(out, x.Value)
		}
		walk(x.Left)
		if o == OrderIn {
			out = append(out, x.Value)
		}
		walk(x.Right)
		if o == OrderPost {
			out = append(out, x.Value)
		}
	}
	walk(n)
	return out
}
