package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/tagalong/ramp/internal/utils"
	"github.com/tagalong/ramp/pkg/bootstrap"
	"github.com/tagalong/ramp/pkg/database"
	"github.com/tagalong/ramp/pkg/errors"
	"github.com/tagalong/ramp/pkg/queue"
)

const (
	docDeploy = `Run the deployment bootstrap pipeline.

Stages run strictly in order: install dependencies, collect static assets,
apply schema migrations, then (if ADMIN_EMAIL / ADMIN_PASSWORD / ADMIN_NAME
are set) provision the admin account. Any failure in the first three stages
aborts the run with a non-zero exit; the admin stage never does.`
)

type optsDeploy struct {
	optsGeneral
	optsDatabase
	optsQueue

	Config string `long:"config" env:"RAMP_CONFIG" description:"Path to pipeline YAML config"`

	Record bool `long:"record" env:"RAMP_RECORD" description:"Record the run in the deploy history table"`

	Warmup    bool   `long:"warmup" env:"RAMP_WARMUP" description:"Enqueue a warmup task after a successful deploy"`
	WarmupURL string `long:"warmup-url" env:"RAMP_WARMUP_URL" default:"http://localhost:8100" description:"Base URL the warmup task should poll"`
}

func (c *optsDeploy) Execute(args []string) error {
	c.setupLogging()

	cfg := bootstrap.DefaultConfig()
	if c.Config != "" {
		loaded, err := bootstrap.LoadConfig(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	dbOpts := &database.Options{URL: c.databaseURL()}
	db, err := database.NewPostgres(dbOpts)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	run := bootstrap.Default(cfg, dbOpts.URL, db).Run(ctx)

	for _, s := range run.Stages {
		log.WithFields(log.Fields{"stage": s.Stage, "status": s.Status, "message": s.Message}).Info("stage result")
	}

	if c.Record {
		// history is a nicety; never let it change the exit status
		if err := db.InsertRun(ctx, run); err != nil {
			log.WithError(err).Warn("could not record deploy run")
		}
	}

	if run.Failed() {
		return fmt.Errorf("%w: run %s", errors.ErrStageFailed, run.ID)
	}

	if c.Warmup {
		c.enqueueWarmup(ctx)
	}
	return nil
}

// enqueueWarmup pushes a warmup task onto the queue. The deploy has already
// succeeded by the time we get here, so failures are logged & dropped.
func (c *optsDeploy) enqueueWarmup(ctx context.Context) {
	tlsCfg, err := utils.TLSConfig(c.QueueTLSCaCert, c.QueueTLSCert, c.QueueTLSKey)
	if err != nil {
		log.WithError(err).Warn("could not build queue TLS config, skipping warmup")
		return
	}

	que, err := queue.NewAsynqQueue(&queue.Options{URL: c.queueURL(), TLSConfig: tlsCfg})
	if err != nil {
		log.WithError(err).Warn("could not reach queue, skipping warmup")
		return
	}
	defer que.Close()

	id, err := queue.Warmup(ctx, que, c.WarmupURL)
	if err != nil {
		log.WithError(err).Warn("could not enqueue warmup")
		return
	}
	log.WithField("task_id", id).Info("warmup enqueued")
}
