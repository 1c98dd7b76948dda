package step

import (
	"bytes"
	"encoding/json"
)

// plain has Step's fields and tags but none of its methods.
type plain Step

// wireStep shadows the snapshot fields of Step with pointers, so that
// omitempty drops only nil snapshots, and carries both the numeric and the
// textual result under "result".
type wireStep struct {
	plain
	Array         *[]int    `json:"array,omitempty"`
	LeftSubarray  *[]int    `json:"left_subarray,omitempty"`
	RightSubarray *[]int    `json:"right_subarray,omitempty"`
	CallStack     *[]string `json:"call_stack,omitempty"`
	Queue         *[]int    `json:"queue,omitempty"`
	Stack         *[]int    `json:"stack,omitempty"`
	Visited       *[]int    `json:"visited,omitempty"`
	Result        any       `json:"result,omitempty"`
}

func present[T any](v []T) *[]T {
	if v == nil {
		return nil
	}
	return &v
}

// MarshalJSON implements json.Marshaler.
func (s Step) MarshalJSON() ([]byte, error) {
	w := wireStep{
		plain:         plain(s),
		Array:         present(s.Array),
		LeftSubarray:  present(s.LeftSubarray),
		RightSubarray: present(s.RightSubarray),
		CallStack:     present(s.CallStack),
		Queue:         present(s.Queue),
		Stack:         present(s.Stack),
		Visited:       present(s.Visited),
	}
	switch {
	case s.Result != nil:
		w.Result = *s.Result
	case s.TextResult != nil:
		w.Result = *s.TextResult
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler. A string "result" fills
// TextResult, a number fills Result.
func (s *Step) UnmarshalJSON(data []byte) error {
	var w struct {
		plain
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = Step(w.plain)

	raw := bytes.TrimSpace(w.Result)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		return nil
	case raw[0] == '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return err
		}
		s.TextResult = &text
	default:
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return err
		}
		s.Result = &n
	}
	return nil
}
