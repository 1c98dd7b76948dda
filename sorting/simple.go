package sorting

import (
	"fmt"

	"github.com/katalvlaran/algoviz/step"
)

// Bubble traces bubble sort. For every pass i and inner index j in
// [0, n-i-2] it records a compare of (j, j+1), then a swap when the pair
// is out of order.
func Bubble(values []int, opts ...step.Option) step.Trace {
	s := newSorter(values, opts)
	n := len(s.arr)

	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			s.emit(step.Step{
				Kind:        step.KindCompare,
				Comparing:   []int{j, j + 1},
				Pseudocode:  "if arr[j] > arr[j+1]:",
				Description: fmt.Sprintf("Comparing %d and %d", s.arr[j], s.arr[j+1]),
			})
			if s.arr[j] > s.arr[j+1] {
				s.swap(j, j+1)
				s.emit(step.Step{
					Kind:        step.KindSwap,
					Swapped:     []int{j, j + 1},
					Pseudocode:  "swap(arr[j], arr[j+1])",
					Description: fmt.Sprintf("Swapped %d and %d", s.arr[j+1], s.arr[j]),
				})
			}
		}
	}

	return s.finish("Sorting complete!")
}

// Selection traces selection sort. Each position i announces its initial
// candidate, compares it against every later element, records new minima,
// and swaps only when the minimum moved.
func Selection(values []int, opts ...step.Option) step.Trace {
	s := newSorter(values, opts)
	n := len(s.arr)

	for i := 0; i < n; i++ {
		minIdx := i
		s.emit(step.Step{
			Kind:        step.KindSelectMin,
			CurrentMin:  step.Int(minIdx),
			Pseudocode:  fmt.Sprintf("min_idx = %d", i),
			Description: fmt.Sprintf("Finding minimum from position %d", i),
		})

		for j := i + 1; j < n; j++ {
			s.emit(step.Step{
				Kind:        step.KindCompare,
				Comparing:   []int{minIdx, j},
				CurrentMin:  step.Int(minIdx),
				Pseudocode:  "if arr[j] < arr[min_idx]:",
				Description: fmt.Sprintf("Comparing %d with current minimum %d", s.arr[j], s.arr[minIdx]),
			})
			if s.arr[j] < s.arr[minIdx] {
				minIdx = j
				s.emit(step.Step{
					Kind:        step.KindNewMin,
					CurrentMin:  step.Int(minIdx),
					Pseudocode:  fmt.Sprintf("min_idx = %d", j),
					Description: fmt.Sprintf("New minimum found: %d", s.arr[minIdx]),
				})
			}
		}

		if minIdx != i {
			s.swap(i, minIdx)
			s.emit(step.Step{
				Kind:        step.KindSwap,
				Swapped:     []int{i, minIdx},
				Pseudocode:  "swap(arr[i], arr[min_idx])",
				Description: fmt.Sprintf("Swapped %d with %d", s.arr[i], s.arr[minIdx]),
			})
		}
	}

	return s.finish("Sorting complete!")
}

// Insertion traces insertion sort. A compare step precedes every shift;
// the comparison that stops the scan is not recorded, the insert step
// that follows it is.
func Insertion(values []int, opts ...step.Option) step.Trace {
	s := newSorter(values, opts)

	for i := 1; i < len(s.arr); i++ {
		key := s.arr[i]
		s.emit(step.Step{
			Kind:        step.KindSelectKey,
			KeyIndex:    step.Int(i),
			KeyValue:    step.Int(key),
			Pseudocode:  fmt.Sprintf("key = arr[%d] = %d", i, key),
			Description: fmt.Sprintf("Inserting %d into sorted portion", key),
		})

		j := i - 1
		for j >= 0 && s.arr[j] > key {
			s.emit(step.Step{
				Kind:        step.KindCompare,
				Comparing:   []int{j, i},
				KeyValue:    step.Int(key),
				Pseudocode:  fmt.Sprintf("arr[%d] > key", j),
				Description: fmt.Sprintf("%d > %d, shifting right", s.arr[j], key),
			})
			s.arr[j+1] = s.arr[j]
			s.emit(step.Step{
				Kind:        step.KindShift,
				Shifted:     step.Int(j + 1),
				KeyValue:    step.Int(key),
				Pseudocode:  fmt.Sprintf("arr[%d] = arr[%d]", j+1, j),
				Description: fmt.Sprintf("Shifted %d to position %d", s.arr[j+1], j+1),
			})
			j--
		}

		s.arr[j+1] = key
		s.emit(step.Step{
			Kind:        step.KindInsert,
			Inserted:    step.Int(j + 1),
			KeyValue:    step.Int(key),
			Pseudocode:  fmt.Sprintf("arr[%d] = key", j+1),
			Description: fmt.Sprintf("Inserted %d at position %d", key, j+1),
		})
	}

	return s.finish("Sorting complete!")
}
