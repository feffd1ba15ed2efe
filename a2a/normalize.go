package a2a

import (
	"github.com/mitchellh/mapstructure"
)

// NormalizeTask coerces a loosely-typed message/send result into a Task. A
// result may arrive as an already-typed Task (stubbed transports, in-process
// exchanges) or as the generic map produced by JSON decoding; both shapes are
// accepted so callers downstream never deal with duals. The second return is
// false when the result is absent, undecodable, or not a task-kind payload.
func NormalizeTask(result any) (*Task, bool) {
	switch v := result.(type) {
	case nil:
		return nil, false
	case *Task:
		if v == nil {
			return nil, false
		}
		return v, v.Kind == KindTask
	case Task:
		return &v, v.Kind == KindTask
	}

	var task Task
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &task,
	})
	if err != nil {
		return nil, false
	}
	if err := decoder.Decode(result); err != nil {
		return nil, false
	}

	return &task, task.Kind == KindTask
}
