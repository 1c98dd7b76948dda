package recursion

import (
	"fmt"

	"github.com/katalvlaran/algoviz/step"
)

// Rod names.
const (
	RodA = "A"
	RodB = "B"
	RodC = "C"
)

// Rods is the physical state of the three Hanoi rods. Each pile lists
// disks bottom first; a larger integer is a bigger disk.
type Rods map[string][]int

// NewRods returns rods with disks n..1 stacked on A.
func NewRods(n int) Rods {
	a := make([]int, 0, max(n, 0))
	for d := n; d >= 1; d-- {
		a = append(a, d)
	}
	return Rods{RodA: a, RodB: {}, RodC: {}}
}

// Move transfers the top disk of src onto dst and returns it. It reports
// false when src is empty.
func (r Rods) Move(src, dst string) (int, bool) {
	pile := r[src]
	if len(pile) == 0 {
		return 0, false
	}
	disk := pile[len(pile)-1]
	r[src] = pile[:len(pile)-1]
	r[dst] = append(r[dst], disk)
	return disk, true
}

// Snapshot returns a deep copy of the rods.
func (r Rods) Snapshot() map[string][]int {
	out := make(map[string][]int, len(r))
	for name, pile := range r {
		out[name] = step.Ints(pile)
	}
	return out
}

// Hanoi traces the Tower of Hanoi for n disks moving from A to C via B.
func Hanoi(n int, opts ...step.Option) step.Trace {
	h := &hanoi{caller: newCaller(opts), rods: NewRods(n)}
	h.rec.Emit(step.Step{
		Kind:        step.KindInitial,
		RodStates:   h.rods.Snapshot(),
		Pseudocode:  "Initial setup",
		Description: fmt.Sprintf("Initial setup: %d disks on rod A", n),
	})
	if n >= 1 {
		h.solve(n, RodA, RodC, RodB, 0)
	}
	return h.rec.Finalize()
}

type hanoi struct {
	*caller
	rods Rods
}

func (h *hanoi) emit(s step.Step, depth int) {
	s.RodStates = h.rods.Snapshot()
	h.caller.emit(s, depth)
}

// move performs one physical transfer. It returns nil when src is empty,
// which the recursion never allows to happen.
func (h *hanoi) move(src, dst string) *int {
	disk, ok := h.rods.Move(src, dst)
	if !ok {
		return nil
	}
	return step.Int(disk)
}

func (h *hanoi) solve(n int, src, dst, aux string, depth int) {
	h.frames.Push(fmt.Sprintf("hanoi(%d, %s, %s, %s)", n, src, dst, aux))
	h.emit(step.Step{
		Kind:        step.KindCall,
		N:           step.Int(n),
		Source:      src,
		Destination: dst,
		Auxiliary:   aux,
		Pseudocode:  fmt.Sprintf("hanoi(%d, %s, %s, %s)", n, src, dst, aux),
		Description: fmt.Sprintf("Move %d disks from %s to %s using %s", n, src, dst, aux),
	}, depth)

	if n == 1 {
		disk := h.move(src, dst)
		h.emit(step.Step{
			Kind:        step.KindMove,
			Disk:        disk,
			Source:      src,
			Destination: dst,
			Pseudocode:  fmt.Sprintf("move disk %s from %s to %s", diskLabel(disk), src, dst),
			Description: fmt.Sprintf("Base case: Move disk %s from %s to %s", diskLabel(disk), src, dst),
		}, depth)
	} else {
		h.emit(step.Step{
			Kind:        step.KindStep1,
			N:           step.Int(n),
			Pseudocode:  fmt.Sprintf("hanoi(%d, %s, %s, %s)", n-1, src, aux, dst),
			Description: fmt.Sprintf("Step 1: Move %d disks from %s to %s", n-1, src, aux),
		}, depth)
		h.solve(n-1, src, aux, dst, depth+1)

		disk := h.move(src, dst)
		h.emit(step.Step{
			Kind:        step.KindStep2,
			Disk:        disk,
			Source:      src,
			Destination: dst,
			Pseudocode:  fmt.Sprintf("move disk %s from %s to %s", diskLabel(disk), src, dst),
			Description: fmt.Sprintf("Step 2: Move disk %s from %s to %s", diskLabel(disk), src, dst),
		}, depth)

		h.emit(step.Step{
			Kind:        step.KindStep3,
			N:           step.Int(n),
			Pseudocode:  fmt.Sprintf("hanoi(%d, %s, %s, %s)", n-1, aux, dst, src),
			Description: fmt.Sprintf("Step 3: Move %d disks from %s to %s", n-1, aux, dst),
		}, depth)
		h.solve(n-1, aux, dst, src, depth+1)
	}

	h.frames.Pop()
	h.emit(step.Step{
		Kind:        step.KindReturn,
		N:           step.Int(n),
		Pseudocode:  fmt.Sprintf("return from hanoi(%d)", n),
		Description: fmt.Sprintf("Completed moving %d disks", n),
	}, depth)
}

func diskLabel(d *int) string {
	if d == nil {
		return "none"
	}
	return fmt.Sprint(*d)
}
