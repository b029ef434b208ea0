package main

import (
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/tagalong/ramp/internal/utils"
	"github.com/tagalong/ramp/pkg/api/http/client"
	"github.com/tagalong/ramp/pkg/database"
	"github.com/tagalong/ramp/pkg/queue"
	"github.com/tagalong/ramp/pkg/structs"
)

const (
	docWorker = `Run the post-deploy task worker.

Handles warmup tasks (poll the deployed service's health endpoint until it
answers, tolerating cold-start latency) and demo seeding tasks.`
)

type optsWorker struct {
	optsGeneral
	optsDatabase
	optsQueue
}

func (c *optsWorker) Execute(args []string) error {
	c.setupLogging()

	tlsCfg, err := utils.TLSConfig(c.QueueTLSCaCert, c.QueueTLSCert, c.QueueTLSKey)
	if err != nil {
		return err
	}

	que, err := queue.NewAsynqQueue(&queue.Options{URL: c.queueURL(), TLSConfig: tlsCfg})
	if err != nil {
		return err
	}
	defer que.Close()

	db, err := database.NewPostgres(&database.Options{URL: c.databaseURL()})
	if err != nil {
		return err
	}
	defer db.Close()

	que.Register(queue.TaskWarmup, handleWarmup)
	que.Register(queue.TaskSeed, func(ctx context.Context, task *structs.Task) error {
		n, err := db.UpsertUsers(ctx, database.DemoUsers())
		if err != nil {
			return err
		}
		log.WithField("users", n).Info("demo accounts seeded")
		return nil
	})

	return que.Run()
}

func handleWarmup(ctx context.Context, task *structs.Task) error {
	wargs := &queue.WarmupArgs{}
	if err := json.Unmarshal(task.Args, wargs); err != nil {
		return err
	}

	cl, err := client.New(wargs.URL)
	if err != nil {
		return err
	}

	log.WithField("url", wargs.URL).Info("warming up instance")
	if err := cl.WaitReady(ctx); err != nil {
		return err
	}
	log.WithField("url", wargs.URL).Info("instance ready")
	return nil
}
