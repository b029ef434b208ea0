package queue

import (
	"context"

	"github.com/tagalong/ramp/pkg/structs"
)

// Handler processes one queued task.
type Handler func(ctx context.Context, task *structs.Task) error

type Queue interface {
	// Register a handler for the given task type. Must be called before Run.
	Register(taskType string, h Handler) error

	// Run the queue & process tasks (via Register funcs). This should block until Close() is called.
	Run() error

	// Enqueue a task, returning the queue's id for it.
	Enqueue(ctx context.Context, task *structs.Task) (string, error)

	// Close & shutdown the queue.
	Close() error
}
