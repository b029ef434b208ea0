package queue

import (
	"context"
	"encoding/json"

	"github.com/tagalong/ramp/pkg/structs"
)

const (
	// TaskWarmup polls the deployed service's health endpoint until it
	// answers, absorbing the host's cold-start latency.
	TaskWarmup = "deploy.warmup"

	// TaskSeed writes the demo accounts.
	TaskSeed = "deploy.seed"
)

// WarmupArgs are the arguments for a TaskWarmup task.
type WarmupArgs struct {
	URL string `json:"url"`
}

// Warmup enqueues a warmup task for the service at the given base URL.
func Warmup(ctx context.Context, q Queue, url string) (string, error) {
	args, err := json.Marshal(&WarmupArgs{URL: url})
	if err != nil {
		return "", err
	}
	return q.Enqueue(ctx, &structs.Task{Type: TaskWarmup, Args: args})
}

// Seed enqueues a demo-data seed task.
func Seed(ctx context.Context, q Queue) (string, error) {
	return q.Enqueue(ctx, &structs.Task{Type: TaskSeed})
}
