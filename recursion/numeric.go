package recursion

import (
	"fmt"

	"github.com/katalvlaran/algoviz/step"
)

// caller is the shared state of a traced recursive invocation.
type caller struct {
	frames step.Frames
	rec    *step.Recorder
}

func newCaller(opts []step.Option) *caller {
	return &caller{rec: step.NewRecorder(opts...)}
}

// emit stamps the call stack and depth onto s and records it.
func (c *caller) emit(s step.Step, depth int) {
	s.CallStack = c.frames.Snapshot()
	s.Depth = step.Int(depth)
	c.rec.Emit(s)
}

// Factorial traces the recursive definition n! = n * (n-1)!, with n <= 1
// as the base case returning 1.
func Factorial(n int, opts ...step.Option) step.Trace {
	c := newCaller(opts)
	c.factorial(n, 0)
	return c.rec.Finalize()
}

func (c *caller) factorial(n, depth int) int {
	c.frames.Push(fmt.Sprintf("factorial(%d)", n))
	c.emit(step.Step{
		Kind:        step.KindCall,
		N:           step.Int(n),
		Pseudocode:  fmt.Sprintf("factorial(%d)", n),
		Description: fmt.Sprintf("Calculating factorial of %d", n),
	}, depth)

	var result int
	if n <= 1 {
		result = 1
		c.emit(step.Step{
			Kind:        step.KindBaseCase,
			N:           step.Int(n),
			Result:      step.Int(result),
			Pseudocode:  "return 1",
			Description: fmt.Sprintf("Base case: factorial(%d) = 1", n),
		}, depth)
	} else {
		c.emit(step.Step{
			Kind:        step.KindRecursiveCall,
			N:           step.Int(n),
			Pseudocode:  fmt.Sprintf("return %d * factorial(%d)", n, n-1),
			Description: fmt.Sprintf("Recursive call: %d * factorial(%d)", n, n-1),
		}, depth)

		sub := c.factorial(n-1, depth+1)
		result = n * sub
		c.emit(step.Step{
			Kind:        step.KindReturn,
			N:           step.Int(n),
			Result:      step.Int(result),
			Pseudocode:  fmt.Sprintf("return %d * %d = %d", n, sub, result),
			Description: fmt.Sprintf("Returning: %d * %d = %d", n, sub, result),
		}, depth)
	}

	c.frames.Pop()
	return result
}

// Fibonacci traces memoized fib(n) = fib(n-1) + fib(n-2), with fib(n) = n
// for n <= 1. The memo table is created here and discarded on return.
func Fibonacci(n int, opts ...step.Option) step.Trace {
	c := newCaller(opts)
	memo := make(map[int]int)
	c.fibonacci(n, 0, memo)
	return c.rec.Finalize()
}

func (c *caller) fibonacci(n, depth int, memo map[int]int) int {
	if v, ok := memo[n]; ok {
		c.emit(step.Step{
			Kind:        step.KindMemoized,
			N:           step.Int(n),
			Result:      step.Int(v),
			Pseudocode:  fmt.Sprintf("return memo[%d] = %d", n, v),
			Description: fmt.Sprintf("Memoized: fib(%d) = %d", n, v),
		}, depth)
		return v
	}

	c.frames.Push(fmt.Sprintf("fib(%d)", n))
	c.emit(step.Step{
		Kind:        step.KindCall,
		N:           step.Int(n),
		Pseudocode:  fmt.Sprintf("fib(%d)", n),
		Description: fmt.Sprintf("Calculating fibonacci of %d", n),
	}, depth)

	var result int
	if n <= 1 {
		result = n
		c.emit(step.Step{
			Kind:        step.KindBaseCase,
			N:           step.Int(n),
			Result:      step.Int(result),
			Pseudocode:  fmt.Sprintf("return %d", n),
			Description: fmt.Sprintf("Base case: fib(%d) = %d", n, n),
		}, depth)
	} else {
		c.emit(step.Step{
			Kind:        step.KindRecursiveCall,
			N:           step.Int(n),
			Pseudocode:  fmt.Sprintf("return fib(%d) + fib(%d)", n-1, n-2),
			Description: fmt.Sprintf("Recursive call: fib(%d) + fib(%d)", n-1, n-2),
		}, depth)

		left := c.fibonacci(n-1, depth+1, memo)
		right := c.fibonacci(n-2, depth+1, memo)
		result = left + right
		c.emit(step.Step{
			Kind:        step.KindReturn,
			N:           step.Int(n),
			Result:      step.Int(result),
			Pseudocode:  fmt.Sprintf("return %d + %d = %d", left, right, result),
			Description: fmt.Sprintf("Returning: %d + %d = %d", left, right, result),
		}, depth)
	}

	memo[n] = result
	c.frames.Pop()
	return result
}
