package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/tagalong/ramp/internal/utils"
	"github.com/tagalong/ramp/pkg/database"
	"github.com/tagalong/ramp/pkg/queue"
)

const (
	docSeed = `Seed demo accounts.

Writes the demo account set directly, or with --enqueue hands the work to a
running worker instead.`
)

type optsSeed struct {
	optsGeneral
	optsDatabase
	optsQueue

	Enqueue bool `long:"enqueue" description:"Enqueue a seed task rather than seeding inline"`
}

func (c *optsSeed) Execute(args []string) error {
	c.setupLogging()
	ctx := context.Background()

	if c.Enqueue {
		tlsCfg, err := utils.TLSConfig(c.QueueTLSCaCert, c.QueueTLSCert, c.QueueTLSKey)
		if err != nil {
			return err
		}
		que, err := queue.NewAsynqQueue(&queue.Options{URL: c.queueURL(), TLSConfig: tlsCfg})
		if err != nil {
			return err
		}
		defer que.Close()

		id, err := queue.Seed(ctx, que)
		if err != nil {
			return err
		}
		log.WithField("task_id", id).Info("seed task enqueued")
		return nil
	}

	db, err := database.NewPostgres(&database.Options{URL: c.databaseURL()})
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := db.UpsertUsers(ctx, database.DemoUsers())
	if err != nil {
		return err
	}
	log.WithField("users", n).Info("demo accounts seeded")
	return nil
}
