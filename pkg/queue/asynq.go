package queue

import (
	"context"
	"sync"

	"github.com/hibiken/asynq"

	"github.com/tagalong/ramp/pkg/structs"
)

const (
	asyncDeployQueue = "ramp:deploy"
)

// Asynq is a ramp queue implementation backed by asynq (redis).
//
// The deploy command only ever uses the client half (Enqueue); the worker
// builds the server half lazily when Register is first called.
type Asynq struct {
	opts *Options

	cli *asynq.Client

	// if register is called we're intended to start a server
	lock sync.Mutex
	mux  *asynq.ServeMux
	srv  *asynq.Server
}

func NewAsynqQueue(opts *Options) (*Asynq, error) {
	cli := asynq.NewClient(asynq.RedisClientOpt{Addr: opts.URL, TLSConfig: opts.TLSConfig})
	return &Asynq{opts: opts, cli: cli}, nil
}

func (a *Asynq) Register(taskType string, h Handler) error {
	if a.mux == nil {
		a.buildServer()
	}
	a.mux.HandleFunc(taskType, func(ctx context.Context, t *asynq.Task) error {
		return h(ctx, &structs.Task{Type: t.Type(), Args: t.Payload()})
	})
	return nil
}

// Run processes tasks until Close is called.
func (a *Asynq) Run() error {
	if a.srv == nil {
		a.buildServer()
	}
	return a.srv.Run(a.mux)
}

func (a *Asynq) Enqueue(ctx context.Context, task *structs.Task) (string, error) {
	info, err := a.cli.EnqueueContext(ctx, asynq.NewTask(task.Type, task.Args), asynq.Queue(asyncDeployQueue))
	if err != nil {
		return "", err
	}
	return info.ID, nil
}

func (a *Asynq) Close() error {
	if a.srv != nil {
		a.srv.Stop()
		a.srv.Shutdown()
	}
	return a.cli.Close()
}

func (a *Asynq) buildServer() {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.mux != nil {
		return
	}
	a.mux = asynq.NewServeMux()
	a.srv = asynq.NewServer(
		asynq.RedisClientOpt{Addr: a.opts.URL, TLSConfig: a.opts.TLSConfig},
		asynq.Config{Queues: map[string]int{asyncDeployQueue: 1}},
	)
}
