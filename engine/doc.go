// Package engine is the single entry point that turns a typed request into
// a trace: it picks the algorithm by family and variant, runs it on a
// private copy of the input and pairs the trace with its complexity
// descriptor.
//
// Usage:
//
//	res, err := engine.Run(engine.Request{
//	    Family:  engine.Sorting,
//	    Variant: "bubble",
//	    Ints:    []int{5, 2, 4, 1},
//	})
//	if errors.Is(err, engine.ErrUnknownAlgorithm) {
//	    // reject the request
//	}
//
// Run is safe for concurrent use: every call owns its recorder, frames,
// memo table and rods. Payload fields that do not belong to the requested
// family are ignored.
package engine
