package sorting

import (
	"fmt"

	"github.com/katalvlaran/algoviz/step"
)

// Merge traces top-down merge sort. Every split of [left, right] records a
// divide step tagged with its recursion level; every merge records
// merge_start with both runs and one merge_step per placed element.
func Merge(values []int, opts ...step.Option) step.Trace {
	s := newSorter(values, opts)
	s.mergeSort(0, len(s.arr)-1, 0)
	return s.finish("Merge sort complete!")
}

func (s *sorter) mergeSort(left, right, level int) {
	if left >= right {
		return
	}
	mid := (left + right) / 2
	s.emit(step.Step{
		Kind:        step.KindDivide,
		Left:        step.Int(left),
		Right:       step.Int(right),
		Mid:         step.Int(mid),
		Level:       step.Int(level),
		Pseudocode:  fmt.Sprintf("divide: [%d...%d] and [%d...%d]", left, mid, mid+1, right),
		Description: fmt.Sprintf("Dividing array at position %d", mid),
	})

	s.mergeSort(left, mid, level+1)
	s.mergeSort(mid+1, right, level+1)
	s.merge(left, mid, right, level)
}

func (s *sorter) merge(left, mid, right, level int) {
	leftRun := step.Ints(s.arr[left : mid+1])
	rightRun := step.Ints(s.arr[mid+1 : right+1])

	s.emit(step.Step{
		Kind:          step.KindMergeStart,
		Left:          step.Int(left),
		Right:         step.Int(right),
		Mid:           step.Int(mid),
		Level:         step.Int(level),
		LeftSubarray:  step.Ints(leftRun),
		RightSubarray: step.Ints(rightRun),
		Pseudocode:    "merge(left_arr, right_arr)",
		Description:   fmt.Sprintf("Merging subarrays %v and %v", leftRun, rightRun),
	})

	i, j, k := 0, 0, left
	place := func(v int, prefix string) {
		s.arr[k] = v
		s.emit(step.Step{
			Kind:        step.KindMergeStep,
			MergedIndex: step.Int(k),
			Level:       step.Int(level),
			Pseudocode:  fmt.Sprintf("arr[%d] = %d", k, v),
			Description: fmt.Sprintf("%s %d at position %d", prefix, v, k),
		})
		k++
	}

	for i < len(leftRun) && j < len(rightRun) {
		// <= keeps equal elements in their original order.
		if leftRun[i] <= rightRun[j] {
			place(leftRun[i], "Placed")
			i++
		} else {
			place(rightRun[j], "Placed")
			j++
		}
	}
	for ; i < len(leftRun); i++ {
		place(leftRun[i], "Copied remaining")
	}
	for ; j < len(rightRun); j++ {
		place(rightRun[j], "Copied remaining")
	}
}

// Quick traces quicksort with Lomuto partitioning around the last element
// of each range. Recursion into both partitions increments the level tag.
func Quick(values []int, opts ...step.Option) step.Trace {
	s := newSorter(values, opts)
	s.quickSort(0, len(s.arr)-1, 0)
	return s.finish("Quick sort complete!")
}

func (s *sorter) quickSort(low, high, level int) {
	if low >= high {
		return
	}
	p := s.partition(low, high, level)
	s.quickSort(low, p-1, level+1)
	s.quickSort(p+1, high, level+1)
}

func (s *sorter) partition(low, high, level int) int {
	pivot := s.arr[high]
	s.emit(step.Step{
		Kind:        step.KindPivot,
		PivotIndex:  step.Int(high),
		PivotValue:  step.Int(pivot),
		Low:         step.Int(low),
		High:        step.Int(high),
		Level:       step.Int(level),
		Pseudocode:  fmt.Sprintf("pivot = arr[%d] = %d", high, pivot),
		Description: fmt.Sprintf("Selected pivot: %d", pivot),
	})

	i := low - 1
	for j := low; j < high; j++ {
		s.emit(step.Step{
			Kind:        step.KindCompare,
			Comparing:   []int{j, high},
			PivotValue:  step.Int(pivot),
			Level:       step.Int(level),
			Pseudocode:  fmt.Sprintf("if arr[%d] <= pivot:", j),
			Description: fmt.Sprintf("Comparing %d with pivot %d", s.arr[j], pivot),
		})
		if s.arr[j] <= pivot {
			i++
			if i != j {
				s.swap(i, j)
				s.emit(step.Step{
					Kind:        step.KindSwap,
					Swapped:     []int{i, j},
					PivotValue:  step.Int(pivot),
					Level:       step.Int(level),
					Pseudocode:  fmt.Sprintf("swap(arr[%d], arr[%d])", i, j),
					Description: fmt.Sprintf("Swapped %d and %d", s.arr[i], s.arr[j]),
				})
			}
		}
	}

	final := i + 1
	s.swap(final, high)
	s.emit(step.Step{
		Kind:            step.KindPivotPlace,
		PivotFinalIndex: step.Int(final),
		PivotValue:      step.Int(pivot),
		Level:           step.Int(level),
		Pseudocode:      fmt.Sprintf("place pivot at position %d", final),
		Description:     fmt.Sprintf("Placed pivot %d at final position %d", pivot, final),
	})
	return final
}
