package bootstrap

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tagalong/ramp/internal/utils"
	"github.com/tagalong/ramp/pkg/database"
	"github.com/tagalong/ramp/pkg/structs"
)

// Pipeline executes bootstrap stages strictly in order.
//
// Required stages are strict-fail: the first error aborts the run and no
// later stage starts. The one suppressed stage (superuser provisioning) runs
// through a separate branch whose error is recorded but deliberately
// discarded; it can never fail the run. Keeping the two branches distinct
// keeps the asymmetry visible & testable.
type Pipeline struct {
	required   []Stage
	suppressed Stage
}

// New returns a Pipeline over the given stages. The suppressed stage may
// be nil.
func New(required []Stage, suppressed Stage) *Pipeline {
	return &Pipeline{required: required, suppressed: suppressed}
}

// Default builds the standard four stage pipeline: install dependencies,
// collect static assets, migrate the schema, then (optionally) provision
// the admin account.
func Default(cfg *Config, dbURL string, db database.Database) *Pipeline {
	return New(
		[]Stage{
			NewDepsStage(cfg.Install.Command, cfg.Install.Args...),
			NewStaticStage(cfg.Static.Sources, cfg.Static.Root),
			NewMigrateStage(cfg.Migrations.Dir, dbURL),
		},
		NewSuperuserStage(db, cfg.Admin.EmailVar, cfg.Admin.PasswordVar, cfg.Admin.NameVar),
	)
}

// Run executes the pipeline once and returns the run record.
//
// The run is COMPLETED iff every required stage passed; callers map that
// to the process exit status.
func (p *Pipeline) Run(ctx context.Context) *structs.Run {
	run := &structs.Run{
		ID:        utils.NewID(),
		Status:    structs.RUNNING,
		Stages:    []*structs.StageResult{},
		CreatedAt: time.Now().Unix(),
	}

	for _, s := range p.required {
		res := runStage(ctx, s)
		run.Stages = append(run.Stages, res)
		if res.Status == structs.ERRORED {
			// strict-fail: nothing after this may execute
			run.Status = structs.ERRORED
			run.UpdatedAt = time.Now().Unix()
			return run
		}
	}

	if p.suppressed != nil {
		run.Stages = append(run.Stages, runSuppressed(ctx, p.suppressed))
	}

	run.Status = structs.COMPLETED
	run.UpdatedAt = time.Now().Unix()
	return run
}

func runStage(ctx context.Context, s Stage) *structs.StageResult {
	res := &structs.StageResult{
		Stage:     s.Kind(),
		Status:    structs.RUNNING,
		StartedAt: time.Now().Unix(),
	}
	log.WithField("stage", s.Kind()).Info("stage starting")

	err := s.Run(ctx)
	res.FinishedAt = time.Now().Unix()
	if err != nil {
		res.Status = structs.ERRORED
		res.Message = err.Error()
		log.WithField("stage", s.Kind()).WithError(err).Error("stage failed")
		return res
	}

	res.Status = structs.COMPLETED
	log.WithField("stage", s.Kind()).Info("stage completed")
	return res
}

// runSuppressed runs a stage whose failure is swallowed. Any error is kept
// on the result as a SKIPPED outcome so operators can still see what
// happened, but it never propagates.
func runSuppressed(ctx context.Context, s Stage) *structs.StageResult {
	res := &structs.StageResult{
		Stage:     s.Kind(),
		Status:    structs.RUNNING,
		StartedAt: time.Now().Unix(),
	}
	log.WithField("stage", s.Kind()).Info("stage starting (failure suppressed)")

	err := s.Run(ctx)
	res.FinishedAt = time.Now().Unix()
	if err != nil {
		res.Status = structs.SKIPPED
		res.Message = err.Error()
		log.WithField("stage", s.Kind()).WithError(err).Warn("stage skipped")
		return res
	}

	res.Status = structs.COMPLETED
	log.WithField("stage", s.Kind()).Info("stage completed")
	return res
}
