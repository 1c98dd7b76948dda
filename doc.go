// Package algoviz is an instrumented algorithm trace engine: it runs
// textbook algorithms and records every meaningful event (comparison,
// swap, recursive call, traversal move) as a step, so a client can replay
// the execution one frame at a time.
//
// What is inside?
//
//	step/             Step schema, Recorder and Frames (explicit call stack)
//	sorting/          bubble, selection, insertion, merge, quick
//	tree/             level-order tree construction, in/pre/post-order walks
//	recursion/        factorial, memoized fibonacci, Tower of Hanoi, reverse
//	graph/            undirected adjacency lists in edge-declaration order
//	bfs/, dfs/        traced breadth- and depth-first traversal
//	complexity/       Big-O descriptors per algorithm
//	engine/           (family, variant, input) → trace
//	input/            parsing of the compact textual inputs
//	builder/          deterministic and seeded input fixtures
//	params/           named parameters → engine requests, with size limits
//	config/, logging/ YAML/env configuration and slog setup
//	server/           gin HTTP API, websocket step stream, Prometheus metrics
//	cmd/algoviz       the CLI: serve, trace, list
//
// Quick start
//
//	res, err := engine.Run(engine.Request{
//		Family:  engine.Sorting,
//		Variant: "bubble",
//		Ints:    []int{5, 1, 4},
//	})
//	for _, s := range res.Steps {
//		fmt.Println(s.Kind, s.Array, s.Description)
//	}
//
// Every invocation owns its recorder and scratch state, so independent
// calls may run concurrently. Traces are plain values: mutating one step
// never affects another.
package algoviz
