package structs

import "encoding/json"

// Task is a post-deploy work item pushed onto the queue.
type Task struct {
	// Type routes the task to a registered handler (eg. "deploy.warmup").
	Type string `json:"type"`

	// Args is handler-specific JSON.
	Args json.RawMessage `json:"args"`
}
