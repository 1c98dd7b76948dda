package recursion

import (
	"fmt"

	"github.com/katalvlaran/algoviz/step"
)

// Reverse traces reverse(s) = reverse(s[1:]) + s[0], with strings of at
// most one character as the base case. Characters are runes, so
// multi-byte text reverses by character rather than by byte.
func Reverse(text string, opts ...step.Option) step.Trace {
	c := newCaller(opts)
	c.reverse([]rune(text), 0)
	return c.rec.Finalize()
}

func (c *caller) reverse(s []rune, depth int) string {
	str := string(s)
	c.frames.Push(fmt.Sprintf("reverse('%s')", str))
	c.emit(step.Step{
		Kind:        step.KindCall,
		Text:        step.Str(str),
		Pseudocode:  fmt.Sprintf("reverse('%s')", str),
		Description: fmt.Sprintf("Reversing string '%s'", str),
	}, depth)

	var result string
	if len(s) <= 1 {
		result = str
		c.emit(step.Step{
			Kind:        step.KindBaseCase,
			Text:        step.Str(str),
			TextResult:  step.Str(result),
			Pseudocode:  fmt.Sprintf("return '%s'", str),
			Description: fmt.Sprintf("Base case: '%s' is already reversed", str),
		}, depth)
	} else {
		first, rest := string(s[0]), string(s[1:])
		c.emit(step.Step{
			Kind:        step.KindRecursiveCall,
			Text:        step.Str(str),
			FirstChar:   step.Str(first),
			Rest:        step.Str(rest),
			Pseudocode:  fmt.Sprintf("return reverse('%s') + '%s'", rest, first),
			Description: fmt.Sprintf("Split: '%s' + reverse('%s')", first, rest),
		}, depth)

		reversed := c.reverse(s[1:], depth+1)
		result = reversed + first
		c.emit(step.Step{
			Kind:        step.KindReturn,
			Text:        step.Str(str),
			TextResult:  step.Str(result),
			Pseudocode:  fmt.Sprintf("return '%s' + '%s' = '%s'", reversed, first, result),
			Description: fmt.Sprintf("Returning: '%s' + '%s' = '%s'", reversed, first, result),
		}, depth)
	}

	c.frames.Pop()
	return result
}
