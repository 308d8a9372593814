package habitica

import (
	"encoding/json"
	"fmt"
)

// ParseTasks decodes the task list payload. A payload that is not a JSON
// array is an error; a single record that fails to decode is skipped and
// counted, so one bad task cannot poison the whole fetch.
func ParseTasks(raw json.RawMessage) ([]Task, int, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, 0, fmt.Errorf("failed to decode task list: %w", err)
	}

	tasks := make([]Task, 0, len(records))
	skipped := 0
	for _, rec := range records {
		var task Task
		if err := json.Unmarshal(rec, &task); err != nil {
			skipped++
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, skipped, nil
}

// ParseTags decodes the tag list payload.
func ParseTags(raw json.RawMessage) ([]Tag, error) {
	var tags []Tag
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tag list: %w", err)
	}
	return tags, nil
}
