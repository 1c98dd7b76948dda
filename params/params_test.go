package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/graph"
	"github.com/katalvlaran/algoviz/input"
	"github.com/katalvlaran/algoviz/params"
)

var limits = config.Default().Limits

func build(t *testing.T, f engine.Family, variant string, m map[string]string) (engine.Request, error) {
	t.Helper()
	return params.Build(f, variant, params.Map(m), limits)
}

func TestBuild_Defaults(t *testing.T) {
	req, err := build(t, engine.Sorting, "bubble", nil)
	require.NoError(t, err)
	assert.Equal(t, []int{64, 34, 25, 12, 22, 11, 90}, req.Ints)

	req, err = build(t, engine.Tree, "inorder", nil)
	require.NoError(t, err)
	assert.Len(t, req.Tree, 7)

	req, err = build(t, engine.Recursion, "factorial", nil)
	require.NoError(t, err)
	assert.Equal(t, 5, req.N)

	req, err = build(t, engine.Recursion, "tower", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, req.N)

	req, err = build(t, engine.Recursion, "reverse", nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", req.Text)

	req, err = build(t, engine.Graph, "bfs", nil)
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}, {U: 2, V: 3}}, req.Edges)
	assert.Zero(t, req.Start)
}

func TestBuild_ExplicitValues(t *testing.T) {
	req, err := build(t, engine.Sorting, "quick", map[string]string{"data": "3, 1,2"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, req.Ints)

	req, err = build(t, engine.Sorting, "merge", map[string]string{"data": ""})
	require.NoError(t, err)
	assert.Empty(t, req.Ints)

	req, err = build(t, engine.Tree, "preorder", map[string]string{"tree": "1,null,2"})
	require.NoError(t, err)
	require.Len(t, req.Tree, 3)
	assert.Nil(t, req.Tree[1])

	req, err = build(t, engine.Graph, "dfs", map[string]string{"edges": "0-1", "start": "1"})
	require.NoError(t, err)
	assert.Equal(t, 1, req.Start)

	req, err = build(t, engine.Recursion, "reverse", map[string]string{"text": ""})
	require.NoError(t, err)
	assert.Empty(t, req.Text)
}

func TestBuild_UnknownBeforeInput(t *testing.T) {
	_, err := build(t, engine.Sorting, "bogo", map[string]string{"data": "x"})
	assert.ErrorIs(t, err, engine.ErrUnknownAlgorithm)

	_, err = build(t, engine.Family("matrix"), "bfs", nil)
	assert.ErrorIs(t, err, engine.ErrUnknownAlgorithm)
}

func TestBuild_InvalidInput(t *testing.T) {
	cases := []struct {
		family  engine.Family
		variant string
		m       map[string]string
	}{
		{engine.Sorting, "bubble", map[string]string{"data": "1,a"}},
		{engine.Tree, "inorder", map[string]string{"tree": "1,None"}},
		{engine.Recursion, "factorial", map[string]string{"n": "five"}},
		{engine.Recursion, "fibonacci", map[string]string{"n": "-1"}},
		{engine.Graph, "bfs", map[string]string{"edges": "0-1,2"}},
		{engine.Graph, "bfs", map[string]string{"start": ""}},
		{engine.Graph, "dfs", map[string]string{"generate": "hypercube"}},
		{engine.Graph, "dfs", map[string]string{"generate": "cycle", "nodes": "2"}},
		{engine.Sorting, "bubble", map[string]string{"generate": "zigzag"}},
		{engine.Tree, "inorder", map[string]string{"generate": "balanced"}},
	}
	for _, tc := range cases {
		_, err := build(t, tc.family, tc.variant, tc.m)
		assert.ErrorIs(t, err, input.ErrInvalidInput, "%s/%s %v", tc.family, tc.variant, tc.m)
		assert.NotErrorIs(t, err, params.ErrLimitExceeded, "%s/%s %v", tc.family, tc.variant, tc.m)
	}
}

func TestBuild_Limits(t *testing.T) {
	cases := []struct {
		family  engine.Family
		variant string
		m       map[string]string
	}{
		{engine.Recursion, "factorial", map[string]string{"n": "21"}},
		{engine.Recursion, "tower", map[string]string{"n": "11"}},
		{engine.Recursion, "reverse", map[string]string{"text": string(make([]byte, 65))}},
		{engine.Sorting, "bubble", map[string]string{"generate": "random", "size": "101"}},
		{engine.Tree, "inorder", map[string]string{"generate": "complete", "size": "101"}},
		{engine.Graph, "bfs", map[string]string{"generate": "complete", "nodes": "30"}},
	}
	for _, tc := range cases {
		_, err := build(t, tc.family, tc.variant, tc.m)
		assert.ErrorIs(t, err, params.ErrLimitExceeded, "%s/%s", tc.family, tc.variant)
		assert.ErrorIs(t, err, input.ErrInvalidInput, "%s/%s", tc.family, tc.variant)
	}

	tight := config.LimitsConfig{MaxElements: 3, MaxN: 1, MaxHanoiDisks: 1, MaxText: 1, MaxEdges: 1}
	_, err := params.Build(engine.Sorting, "bubble", params.Map(nil), tight)
	assert.ErrorIs(t, err, params.ErrLimitExceeded)
	_, err = params.Build(engine.Graph, "bfs", params.Map(nil), tight)
	assert.ErrorIs(t, err, params.ErrLimitExceeded)
	_, err = params.Build(engine.Tree, "inorder", params.Map(map[string]string{"tree": "1,2,3"}), tight)
	assert.NoError(t, err)
}

func TestBuild_Generators(t *testing.T) {
	req, err := build(t, engine.Sorting, "insertion", map[string]string{"generate": "descending", "size": "4"})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1}, req.Ints)

	a, err := build(t, engine.Sorting, "bubble", map[string]string{"generate": "random", "size": "8", "seed": "42"})
	require.NoError(t, err)
	b, err := build(t, engine.Sorting, "bubble", map[string]string{"generate": "random", "size": "8", "seed": "42"})
	require.NoError(t, err)
	assert.Len(t, a.Ints, 8)
	assert.Equal(t, a.Ints, b.Ints)

	req, err = build(t, engine.Tree, "postorder", map[string]string{"generate": "complete", "size": "5"})
	require.NoError(t, err)
	assert.Equal(t, "1,2,3,4,5", input.FormatLevelOrder(req.Tree))

	req, err = build(t, engine.Graph, "bfs", map[string]string{"generate": "path", "nodes": "3", "start": "2"})
	require.NoError(t, err)
	assert.Equal(t, "0-1,1-2", input.FormatEdges(req.Edges))
	assert.Equal(t, 2, req.Start)
}

func TestBuild_ResultRuns(t *testing.T) {
	req, err := build(t, engine.Graph, "dfs", map[string]string{"generate": "star", "nodes": "5"})
	require.NoError(t, err)
	res, err := engine.Run(req)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Steps.Count("visit"))
}

func TestBuild_GeneratorValueOptions(t *testing.T) {
	req, err := build(t, engine.Sorting, "bubble", map[string]string{
		"generate": "random", "size": "30", "seed": "7", "min": "-3", "max": "3",
	})
	require.NoError(t, err)
	require.Len(t, req.Ints, 30)
	for _, v := range req.Ints {
		assert.GreaterOrEqual(t, v, -3)
		assert.LessOrEqual(t, v, 3)
	}

	req, err = build(t, engine.Sorting, "selection", map[string]string{
		"generate": "few_unique", "size": "12", "seed": "7", "distinct": "1",
	})
	require.NoError(t, err)
	for _, v := range req.Ints {
		assert.Equal(t, req.Ints[0], v)
	}

	req, err = build(t, engine.Sorting, "merge", map[string]string{"generate": "random", "size": "5"})
	require.NoError(t, err)
	assert.Len(t, req.Ints, 5)

	for _, m := range []map[string]string{
		{"generate": "random", "min": "9", "max": "2"},
		{"generate": "random", "min": "low"},
		{"generate": "few_unique", "distinct": "0"},
	} {
		_, err := build(t, engine.Sorting, "bubble", m)
		assert.ErrorIs(t, err, input.ErrInvalidInput, "%v", m)
	}
}
