package tree_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/step"
	"github.com/katalvlaran/algoviz/tree"
)

// lv builds a level-order slice; -1 stands for an absent node.
func lv(vals ...int) []*int {
	out := make([]*int, len(vals))
	for i, v := range vals {
		if v != -1 {
			out[i] = step.Int(v)
		}
	}
	return out
}

func TestBuild_Empty(t *testing.T) {
	assert.Nil(t, tree.Build(nil))
	assert.Nil(t, tree.Build(lv()))
	assert.Nil(t, tree.Build(lv(-1, 2, 3)))
}

func TestBuild_Complete(t *testing.T) {
	root := tree.Build(lv(1, 2, 3, 4, 5, 6, 7))
	require.NotNil(t, root)
	assert.Equal(t, 7, root.Size())
	assert.Equal(t, 3, root.Height())
	assert.Equal(t, []int{4, 2, 5, 1, 6, 3, 7}, root.Values(tree.OrderIn))
	assert.Equal(t, []int{1, 2, 4, 5, 3, 6, 7}, root.Values(tree.OrderPre))
	assert.Equal(t, []int{4, 5, 2, 6, 7, 3, 1}, root.Values(tree.OrderPost))
}

func TestBuild_AbsentMarkers(t *testing.T) {
	root := tree.Build(lv(1, -1, 2, 3))
	require.NotNil(t, root)
	assert.Nil(t, root.Left)
	require.NotNil(t, root.Right)
	require.NotNil(t, root.Right.Left)
	assert.Equal(t, 3, root.Right.Left.Value)
	assert.Equal(t, []int{1, 3, 2}, root.Values(tree.OrderIn))

	root = tree.Build(lv(1, 2, 3, -1, 4, -1, 5))
	assert.Equal(t, []int{2, 4, 1, 3, 5}, root.Values(tree.OrderIn))
	assert.Equal(t, 5, root.Size())
}

func TestBuild_TrailingSlotsIgnored(t *testing.T) {
	// 2 is absent, so the slots that would be its children belong to 3.
	root := tree.Build(lv(1, -1, 3, 4, 5))
	assert.Equal(t, []int{1, 4, 3, 5}, root.Values(tree.OrderIn))
}

func TestInorder_SmallTraceShape(t *testing.T) {
	tr := tree.Inorder(tree.Build(lv(1, 2, 3)))
	assert.Equal(t, []step.Kind{
		step.KindVisit, step.KindGoLeft,
		step.KindVisit, step.KindProcess, step.KindReturn,
		step.KindProcess, step.KindGoRight,
		step.KindVisit, step.KindProcess, step.KindReturn,
		step.KindReturn,
	}, tr.Kinds())

	assert.Equal(t, []string{"inorder(1)", "inorder(2)"}, tr[2].CallStack)
	assert.Equal(t, []string{"inorder(1)"}, tr[4].CallStack)
	last, _ := tr.Last()
	assert.Empty(t, last.CallStack)
	assert.Equal(t, 1, *last.Node)
}

func TestPreorder_LeafOnly(t *testing.T) {
	tr := tree.Preorder(tree.Build(lv(9)))
	assert.Equal(t, []step.Kind{step.KindProcess, step.KindReturn}, tr.Kinds())
	assert.Equal(t, []string{"preorder(9)"}, tr[0].CallStack)
}

func TestPostorder_LeafOnly(t *testing.T) {
	tr := tree.Postorder(tree.Build(lv(9)))
	assert.Equal(t, []step.Kind{step.KindVisit, step.KindProcess, step.KindReturn}, tr.Kinds())
}

func TestTraversal_EmptyTree(t *testing.T) {
	for _, name := range []string{"inorder", "preorder", "postorder"} {
		fn, ok := tree.ByName(name)
		require.True(t, ok)
		assert.Empty(t, fn(nil), name)
	}
	_, ok := tree.ByName("levelorder")
	assert.False(t, ok)
}

func TestTraversal_Properties(t *testing.T) {
	shapes := [][]*int{
		lv(1, 2, 3, 4, 5, 6, 7),
		lv(1, -1, 2, -1, 3, -1, 4),
		lv(5, 3, 8, 1, 4, 7, 9, -1, 2),
		lv(1, 2, -1, 3, -1, 4),
	}
	orders := map[tree.Order]tree.Func{
		tree.OrderIn:   tree.Inorder,
		tree.OrderPre:  tree.Preorder,
		tree.OrderPost: tree.Postorder,
	}

	for i, shape := range shapes {
		root := tree.Build(shape)
		for order, fn := range orders {
			name := fmt.Sprintf("%s/%d", order, i)
			tr := fn(root)

			processed := []int{}
			for _, s := range tr.Filter(step.KindProcess) {
				processed = append(processed, *s.Node)
			}
			assert.Equal(t, root.Values(order), processed, name)
			assert.Equal(t, root.Size(), tr.Count(step.KindReturn), name)

			// Frame depth: depth+1 while inside a node, depth after its return.
			for _, s := range tr {
				want := *s.Depth + 1
				if s.Kind == step.KindReturn {
					want = *s.Depth
				}
				assert.Len(t, s.CallStack, want, "%s: %s on %d", name, s.Kind, *s.Node)
			}

			last, ok := tr.Last()
			require.True(t, ok)
			assert.Equal(t, step.KindReturn, last.Kind, name)
			assert.Empty(t, last.CallStack, name)
		}
	}
}

func TestTraversal_DescentOnlyToExistingChildren(t *testing.T) {
	root := tree.Build(lv(1, -1, 2))
	tr := tree.Preorder(root)
	assert.Zero(t, tr.Count(step.KindGoLeft))
	require.Equal(t, 1, tr.Count(step.KindGoRight))
	assert.Equal(t, 2, *tr.Filter(step.KindGoRight)[0].NextNode)
}

func TestTraversal_CallStackSnapshotsDoNotAlias(t *testing.T) {
	tr := tree.Inorder(tree.Build(lv(1, 2, 3)))
	tr[0].CallStack[0] = "mutated"
	assert.Equal(t, "inorder(1)", tr[1].CallStack[0])
}
