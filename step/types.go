package step

// Kind tags the shape of a Step.
type Kind string

// Sorting kinds.
const (
	KindCompare    Kind = "compare"
	KindSwap       Kind = "swap"
	KindComplete   Kind = "complete"
	KindSelectMin  Kind = "select_min"
	KindNewMin     Kind = "new_min"
	KindSelectKey  Kind = "select_key"
	KindShift      Kind = "shift"
	KindInsert     Kind = "insert"
	KindDivide     Kind = "divide"
	KindMergeStart Kind = "merge_start"
	KindMergeStep  Kind = "merge_step"
	KindPivot      Kind = "select_pivot"
	KindPivotPlace Kind = "pivot_place"
)

// Tree traversal kinds.
const (
	KindVisit   Kind = "visit"
	KindProcess Kind = "process"
	KindGoLeft  Kind = "go_left"
	KindGoRight Kind = "go_right"
	KindReturn  Kind = "return"
)

// Recursion kinds. KindReturn is shared with tree traversals.
const (
	KindCall          Kind = "call"
	KindBaseCase      Kind = "base_case"
	KindRecursiveCall Kind = "recursive_call"
	KindMemoized      Kind = "memoized"
	KindInitial       Kind = "initial"
	KindMove          Kind = "move"
	KindStep1         Kind = "step1"
	KindStep2         Kind = "step2"
	KindStep3         Kind = "step3"
)

// Graph traversal kinds. KindVisit and KindComplete are shared.
const (
	KindInitialize Kind = "initialize"
	KindDequeue    Kind = "dequeue"
	KindEnqueue    Kind = "enqueue"
	KindPop        Kind = "pop"
	KindPush       Kind = "push"
)

// Step is one recorded event. Only the fields relevant to Kind are set;
// the rest stay nil and are omitted from JSON. Snapshot slices are sent
// whenever they are non-nil, empty ones as [] (see json.go).
//
// Optional integers are pointers because zero is a meaningful index,
// value and depth.
type Step struct {
	Kind        Kind   `json:"type"`
	Description string `json:"description"`
	Pseudocode  string `json:"pseudocode_line"`

	// Sorting payload.
	Array           []int `json:"array,omitempty"`
	Comparing       []int `json:"comparing,omitempty"`
	Swapped         []int `json:"swapped,omitempty"`
	CurrentMin      *int  `json:"current_min,omitempty"`
	KeyIndex        *int  `json:"key_index,omitempty"`
	KeyValue        *int  `json:"key_value,omitempty"`
	Shifted         *int  `json:"shifted,omitempty"`
	Inserted        *int  `json:"inserted,omitempty"`
	Left            *int  `json:"left,omitempty"`
	Right           *int  `json:"right,omitempty"`
	Mid             *int  `json:"mid,omitempty"`
	Level           *int  `json:"level,omitempty"`
	LeftSubarray    []int `json:"left_subarray,omitempty"`
	RightSubarray   []int `json:"right_subarray,omitempty"`
	MergedIndex     *int  `json:"merged_index,omitempty"`
	PivotIndex      *int  `json:"pivot_index,omitempty"`
	PivotValue      *int  `json:"pivot_value,omitempty"`
	Low             *int  `json:"low,omitempty"`
	High            *int  `json:"high,omitempty"`
	PivotFinalIndex *int  `json:"pivot_final_index,omitempty"`

	// Tree and recursion payload.
	Node      *int     `json:"node,omitempty"`
	NextNode  *int     `json:"next_node,omitempty"`
	CallStack []string `json:"call_stack,omitempty"`
	Depth     *int     `json:"depth,omitempty"`
	N         *int     `json:"n,omitempty"`
	Result    *int     `json:"result,omitempty"`

	// String reversal payload.
	Text       *string `json:"string,omitempty"`
	FirstChar  *string `json:"first_char,omitempty"`
	Rest       *string `json:"rest,omitempty"`
	TextResult *string `json:"-"` // sent as "result"

	// Tower of Hanoi payload.
	Disk        *int             `json:"disk,omitempty"`
	Source      string           `json:"source,omitempty"`
	Destination string           `json:"destination,omitempty"`
	Auxiliary   string           `json:"auxiliary,omitempty"`
	RodStates   map[string][]int `json:"rod_states,omitempty"`

	// Graph payload.
	Queue    []int `json:"queue,omitempty"`
	Stack    []int `json:"stack,omitempty"`
	Visited  []int `json:"visited,omitempty"`
	Current  *int  `json:"current,omitempty"`
	Neighbor *int  `json:"neighbor,omitempty"`
}

// Trace is the ordered sequence of steps produced by one invocation.
type Trace []Step

// Last returns the final step, or false for an empty trace.
func (t Trace) Last() (Step, bool) {
	if len(t) == 0 {
		return Step{}, false
	}
	return t[len(t)-1], true
}

// Count reports how many steps carry any of ks.
func (t Trace) Count(ks ...Kind) int {
	n := 0
	for i := range t {
		for _, k := range ks {
			if t[i].Kind == k {
				n++
				break
			}
		}
	}
	return n
}

// Filter returns the steps whose kind is any of ks, in trace order.
func (t Trace) Filter(ks ...Kind) Trace {
	out := Trace{}
	for i := range t {
		for _, k := range ks {
			if t[i].Kind == k {
				out = append(out, t[i])
				break
			}
		}
	}
	return out
}

// Kinds returns the kind sequence of t.
func (t Trace) Kinds() []Kind {
	out := make([]Kind, len(t))
	for i := range t {
		out[i] = t[i].Kind
	}
	return out
}

// Int returns a pointer to a copy of v, for optional payload fields.
func Int(v int) *int { return &v }

// Str returns a pointer to a copy of s.
func Str(s string) *string { return &s }

// Ints returns a fresh copy of src. The result is never nil, so an empty
// snapshot stays distinguishable from an absent one in Go code.
func Ints(src []int) []int {
	out := make([]int, len(src))
	copy(out, src)
	return out
}

// Strings returns a fresh, non-nil copy of src.
func Strings(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}
